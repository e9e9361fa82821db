package model

type AgriField struct {
	*Model
	Title       string      `json:"title"`
	Description string      `json:"description"`
	UserID      int64       `json:"user_id"`
	CategoryID  int64       `json:"category_id"`
	CropType    string      `json:"crop_type"`
	AreaAcres   float64     `json:"area_acres"`
	Irrigated   int         `json:"irrigated"`
	DistrictID  int64       `json:"district_id"`
	TalukaID    int64       `json:"taluka_id"`
	VillageID   int64       `json:"village_id"`
	IsFeatured  int         `json:"is_featured"`
	Status      ItemStatusT `json:"status"`
	Latitude    *float64    `json:"latitude"`
	Longitude   *float64    `json:"longitude"`
}

type AgriFieldRow struct {
	AgriField
	CategoryName      string `json:"category_name"`
	UserNickname      string `json:"user_nickname"`
	DistrictName      string `json:"district_name"`
	DistrictLocalName string `json:"district_local_name"`
	TalukaName        string `json:"taluka_name"`
	TalukaLocalName   string `json:"taluka_local_name"`
	VillageName       string `json:"village_name"`
	VillageLocalName  string `json:"village_local_name"`
}

type AgriFieldFormatted struct {
	ID                int64       `json:"id"`
	CreatedOn         int64       `json:"created_on"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	UserID            int64       `json:"user_id"`
	UserNickname      string      `json:"user_nickname"`
	CategoryID        int64       `json:"category_id"`
	CategoryName      string      `json:"category_name"`
	CropType          string      `json:"crop_type"`
	AreaAcres         float64     `json:"area_acres"`
	Irrigated         int         `json:"irrigated"`
	DistrictID        int64       `json:"district_id"`
	DistrictName      string      `json:"district_name"`
	DistrictLocalName string      `json:"district_local_name"`
	TalukaID          int64       `json:"taluka_id"`
	TalukaName        string      `json:"taluka_name"`
	VillageID         int64       `json:"village_id"`
	VillageName       string      `json:"village_name"`
	IsFeatured        int         `json:"is_featured"`
	Status            ItemStatusT `json:"status"`
	DistanceKm        *float64    `json:"distance_km,omitempty"`
}

func (a *AgriField) Table() string {
	return "agri_field"
}

func (r *AgriFieldRow) Format() *AgriFieldFormatted {
	return &AgriFieldFormatted{
		ID:                r.ID,
		CreatedOn:         r.CreatedOn,
		Title:             r.Title,
		Description:       r.Description,
		UserID:            r.UserID,
		UserNickname:      r.UserNickname,
		CategoryID:        r.CategoryID,
		CategoryName:      r.CategoryName,
		CropType:          r.CropType,
		AreaAcres:         r.AreaAcres,
		Irrigated:         r.Irrigated,
		DistrictID:        r.DistrictID,
		DistrictName:      r.DistrictName,
		DistrictLocalName: r.DistrictLocalName,
		TalukaID:          r.TalukaID,
		TalukaName:        r.TalukaName,
		VillageID:         r.VillageID,
		VillageName:       r.VillageName,
		IsFeatured:        r.IsFeatured,
		Status:            r.Status,
	}
}
