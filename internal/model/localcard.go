package model

type LocalCard struct {
	*Model
	BusinessName  string      `json:"business_name"`
	OwnerName     string      `json:"owner_name"`
	Phone         string      `json:"phone"`
	UserID        int64       `json:"user_id"`
	CategoryID    int64       `json:"category_id"`
	SubCategoryID int64       `json:"sub_category_id"`
	DistrictID    int64       `json:"district_id"`
	TalukaID      int64       `json:"taluka_id"`
	VillageID     int64       `json:"village_id"`
	BusinessHours string      `json:"business_hours"`
	Services      string      `json:"services"`
	IsVerified    int         `json:"is_verified"`
	Status        ItemStatusT `json:"status"`
	Latitude      *float64    `json:"latitude"`
	Longitude     *float64    `json:"longitude"`
}

type LocalCardRow struct {
	LocalCard
	CategoryName      string `json:"category_name"`
	SubCategoryName   string `json:"sub_category_name"`
	DistrictName      string `json:"district_name"`
	DistrictLocalName string `json:"district_local_name"`
	TalukaName        string `json:"taluka_name"`
	TalukaLocalName   string `json:"taluka_local_name"`
	VillageName       string `json:"village_name"`
	VillageLocalName  string `json:"village_local_name"`
}

type LocalCardFormatted struct {
	ID                int64       `json:"id"`
	CreatedOn         int64       `json:"created_on"`
	BusinessName      string      `json:"business_name"`
	OwnerName         string      `json:"owner_name"`
	Phone             string      `json:"phone"`
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
	BusinessHours     string      `json:"business_hours"`
	Services          []string    `json:"services"`
	IsVerified        int         `json:"is_verified"`
	Status            ItemStatusT `json:"status"`
	DistanceKm        *float64    `json:"distance_km,omitempty"`
}

func (c *LocalCard) Table() string {
	return "local_card"
}

func (r *LocalCardRow) Format() *LocalCardFormatted {
	return &LocalCardFormatted{
		ID:                r.ID,
		CreatedOn:         r.CreatedOn,
		BusinessName:      r.BusinessName,
		OwnerName:         r.OwnerName,
		Phone:             r.Phone,
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
		BusinessHours:     r.BusinessHours,
		Services:          parseStringList("services", r.Services),
		IsVerified:        r.IsVerified,
		Status:            r.Status,
	}
}
