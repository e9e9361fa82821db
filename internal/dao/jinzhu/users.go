package jinzhu

import (
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gorm.io/gorm"
)

var _ core.UserService = (*userServant)(nil)

type userServant struct {
	db *gorm.DB
}

func newUserService(db *gorm.DB) core.UserService {
	return &userServant{db: db}
}

func (s *userServant) GetUserByID(id int64) (*model.User, error) {
	return (&model.User{Model: &model.Model{ID: id}}).Get(s.db)
}
