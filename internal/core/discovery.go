package core

import (
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
)

// Discovery services per content type. Each pair shares the same engine
// underneath; the interfaces stay separate so a servant can be swapped per
// type without touching the others.

type PostService interface {
	DiscoverPosts(criteria *search.FilterCriteria, page search.PageRequest) ([]*model.PostFormatted, *search.PageResult, error)
	DiscoverPostsNearby(criteria *search.NearbyFilterCriteria, page search.PageRequest) ([]*model.PostFormatted, *search.PageResult, error)
	GetPostByID(id int64) (*model.PostFormatted, error)
}

type PostManageService interface {
	CreatePost(post *model.Post) (*model.Post, error)
	DeletePost(id int64) error
}

type AgriFieldService interface {
	DiscoverAgriFields(criteria *search.FilterCriteria, page search.PageRequest) ([]*model.AgriFieldFormatted, *search.PageResult, error)
	DiscoverAgriFieldsNearby(criteria *search.NearbyFilterCriteria, page search.PageRequest) ([]*model.AgriFieldFormatted, *search.PageResult, error)
}

type LocalCardService interface {
	DiscoverLocalCards(criteria *search.FilterCriteria, page search.PageRequest) ([]*model.LocalCardFormatted, *search.PageResult, error)
	DiscoverLocalCardsNearby(criteria *search.NearbyFilterCriteria, page search.PageRequest) ([]*model.LocalCardFormatted, *search.PageResult, error)
}
