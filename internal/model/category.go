package model

import (
	"gorm.io/gorm"
)

type Category struct {
	ID        int64  `gorm:"primary_key" json:"id"`
	Name      string `json:"name"`
	LocalName string `json:"local_name"`
	ParentID  int64  `json:"parent_id"`
	SortOrder int    `json:"sort_order"`
	IsActive  int    `json:"is_active"`
}

func (c *Category) Table() string {
	return "category"
}

func (c *Category) Get(db *gorm.DB) (*Category, error) {
	var category Category
	err := db.Table(c.Table()).Where("id = ?", c.ID).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// List top level categories when parentID is nil, otherwise the children
// of the given category.
func (c *Category) List(db *gorm.DB, parentID *int64) ([]*Category, error) {
	var categories []*Category
	tx := db.Table(c.Table()).Where("is_active = ?", 1)
	if parentID != nil {
		tx = tx.Where("parent_id = ?", *parentID)
	} else {
		tx = tx.Where("parent_id = ?", 0)
	}
	err := tx.Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}
