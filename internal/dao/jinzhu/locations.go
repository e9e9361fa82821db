package jinzhu

import (
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"gorm.io/gorm"
)

var (
	_ core.LocationService = (*locationServant)(nil)
	_ core.LocationService = (*locationService)(nil)
)

// locationServant is the raw store-backed resolver plus the directory
// reads. The resolver half usually runs behind the cache servant.
type locationServant struct {
	db *gorm.DB
}

// locationService pairs the possibly cached resolver with the raw
// directory reads so list endpoints never serve stale reference data.
type locationService struct {
	core.ReferenceResolver
	raw *locationServant
}

func newLocationServant(db *gorm.DB) *locationServant {
	return &locationServant{
		db: db,
	}
}

func newLocationService(raw *locationServant, rr core.ReferenceResolver) core.LocationService {
	return &locationService{
		ReferenceResolver: rr,
		raw:               raw,
	}
}

func (s *locationServant) District(id int64) (*search.LocationNode, error) {
	district, err := (&model.District{ID: id}).Get(s.db)
	if err != nil || district == nil {
		return nil, err
	}
	return &search.LocationNode{
		ID:        district.ID,
		Name:      district.Name,
		LocalName: district.LocalName,
		Active:    district.IsActive == 1,
	}, nil
}

func (s *locationServant) Taluka(id int64) (*search.LocationNode, error) {
	taluka, err := (&model.Taluka{ID: id}).Get(s.db)
	if err != nil || taluka == nil {
		return nil, err
	}
	return &search.LocationNode{
		ID:        taluka.ID,
		Name:      taluka.Name,
		LocalName: taluka.LocalName,
		ParentID:  taluka.DistrictID,
		Active:    taluka.IsActive == 1,
	}, nil
}

func (s *locationServant) Village(id int64) (*search.LocationNode, error) {
	village, err := (&model.Village{ID: id}).Get(s.db)
	if err != nil || village == nil {
		return nil, err
	}
	return &search.LocationNode{
		ID:        village.ID,
		Name:      village.Name,
		LocalName: village.LocalName,
		ParentID:  village.TalukaID,
		Active:    village.IsActive == 1,
	}, nil
}

func (s *locationServant) ResolveCategory(id int64) (*model.Category, error) {
	return (&model.Category{ID: id}).Get(s.db)
}

func (s *locationServant) Districts() ([]*model.District, error) {
	return (&model.District{}).List(s.db)
}

func (s *locationServant) TalukasByDistrict(districtID int64) ([]*model.Taluka, error) {
	return (&model.Taluka{}).ListByDistrict(s.db, districtID)
}

func (s *locationServant) VillagesByTaluka(talukaID int64) ([]*model.Village, error) {
	return (&model.Village{}).ListByTaluka(s.db, talukaID)
}

func (s *locationService) Districts() ([]*model.District, error) {
	return s.raw.Districts()
}

func (s *locationService) TalukasByDistrict(districtID int64) ([]*model.Taluka, error) {
	return s.raw.TalukasByDistrict(districtID)
}

func (s *locationService) VillagesByTaluka(talukaID int64) ([]*model.Village, error) {
	return s.raw.VillagesByTaluka(talukaID)
}
