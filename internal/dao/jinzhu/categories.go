package jinzhu

import (
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gorm.io/gorm"
)

var (
	_ core.CategoryService = (*categoryServant)(nil)
)

type categoryServant struct {
	db *gorm.DB
}

func newCategoryService(db *gorm.DB) core.CategoryService {
	return &categoryServant{
		db: db,
	}
}

func (s *categoryServant) Categories(parentID *int64) ([]*model.Category, error) {
	return (&model.Category{}).List(s.db, parentID)
}
