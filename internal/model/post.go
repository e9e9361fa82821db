package model

import (
	"gorm.io/gorm"
)

type Post struct {
	*Model
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	UserID        int64       `json:"user_id"`
	CategoryID    int64       `json:"category_id"`
	SubCategoryID int64       `json:"sub_category_id"`
	DistrictID    int64       `json:"district_id"`
	TalukaID      int64       `json:"taluka_id"`
	VillageID     int64       `json:"village_id"`
	Price         float64     `json:"price"`
	IsFeatured    int         `json:"is_featured"`
	ViewCount     int64       `json:"view_count"`
	Status        ItemStatusT `json:"status"`
	Tags          string      `json:"tags"`
	Latitude      *float64    `json:"latitude"`
	Longitude     *float64    `json:"longitude"`
}

// PostRow is the raw fetch shape of post discovery: the post columns plus
// the joined reference names used for projection.
type PostRow struct {
	Post
	CategoryName      string `json:"category_name"`
	SubCategoryName   string `json:"sub_category_name"`
	UserNickname      string `json:"user_nickname"`
	DistrictName      string `json:"district_name"`
	DistrictLocalName string `json:"district_local_name"`
	TalukaName        string `json:"taluka_name"`
	TalukaLocalName   string `json:"taluka_local_name"`
	VillageName       string `json:"village_name"`
	VillageLocalName  string `json:"village_local_name"`
}

type PostFormatted struct {
	ID                int64       `json:"id"`
	CreatedOn         int64       `json:"created_on"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	UserID            int64       `json:"user_id"`
	UserNickname      string      `json:"user_nickname"`
	CategoryID        int64       `json:"category_id"`
	CategoryName      string      `json:"category_name"`
	SubCategoryID     int64       `json:"sub_category_id"`
	SubCategoryName   string      `json:"sub_category_name"`
	DistrictID        int64       `json:"district_id"`
	DistrictName      string      `json:"district_name"`
	DistrictLocalName string      `json:"district_local_name"`
	TalukaID          int64       `json:"taluka_id"`
	TalukaName        string      `json:"taluka_name"`
	VillageID         int64       `json:"village_id"`
	VillageName       string      `json:"village_name"`
	Price             float64     `json:"price"`
	IsFeatured        int         `json:"is_featured"`
	ViewCount         int64       `json:"view_count"`
	Status            ItemStatusT `json:"status"`
	Tags              []string    `json:"tags"`
	Latitude          *float64    `json:"latitude,omitempty"`
	Longitude         *float64    `json:"longitude,omitempty"`
	DistanceKm        *float64    `json:"distance_km,omitempty"`
}

func (p *Post) Table() string {
	return "post"
}

func (r *PostRow) Format() *PostFormatted {
	return &PostFormatted{
		ID:                r.ID,
		CreatedOn:         r.CreatedOn,
		Title:             r.Title,
		Description:       r.Description,
		UserID:            r.UserID,
		UserNickname:      r.UserNickname,
		CategoryID:        r.CategoryID,
		CategoryName:      r.CategoryName,
		SubCategoryID:     r.SubCategoryID,
		SubCategoryName:   r.SubCategoryName,
		DistrictID:        r.DistrictID,
		DistrictName:      r.DistrictName,
		DistrictLocalName: r.DistrictLocalName,
		TalukaID:          r.TalukaID,
		TalukaName:        r.TalukaName,
		VillageID:         r.VillageID,
		VillageName:       r.VillageName,
		Price:             r.Price,
		IsFeatured:        r.IsFeatured,
		ViewCount:         r.ViewCount,
		Status:            r.Status,
		Tags:              parseStringList("tags", r.Tags),
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
	}
}

func (p *Post) Create(db *gorm.DB) (*Post, error) {
	err := db.Create(p).Error
	return p, err
}

func (p *Post) Get(db *gorm.DB) (*Post, error) {
	var post Post
	if err := db.Table(p.Table()).Where("id = ? AND is_del = ?", p.ID, 0).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (p *Post) Delete(db *gorm.DB) error {
	return db.Table(p.Table()).Where("id = ? AND is_del = ?", p.ID, 0).Delete(&Post{}).Error
}
