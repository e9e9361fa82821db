package core

import "gramhaat-backend/internal/model"

// UserService is the listing-owner read surface.
type UserService interface {
	GetUserByID(id int64) (*model.User, error)
}
