package core

import (
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
)

// ReferenceResolver is the narrow read surface consumed by the location
// chain validator and the projection layer. It is the part worth caching.
type ReferenceResolver interface {
	search.LocationResolver

	ResolveCategory(id int64) (*model.Category, error)
}

type LocationService interface {
	ReferenceResolver

	Districts() ([]*model.District, error)
	TalukasByDistrict(districtID int64) ([]*model.Taluka, error)
	VillagesByTaluka(talukaID int64) ([]*model.Village, error)
}

type CategoryService interface {
	Categories(parentID *int64) ([]*model.Category, error)
}
