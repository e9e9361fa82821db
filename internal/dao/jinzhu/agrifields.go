package jinzhu

import (
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/types"
	"gorm.io/gorm"
)

var (
	_ core.AgriFieldService = (*agriFieldServant)(nil)
)

// Agri fields carry no sub category and range over area instead of price.
var agriFieldDescriptor = &search.Descriptor{
	Name:  "agri_field",
	Table: "agri_field",

	CategoryColumn: "agri_field.category_id",
	DistrictColumn: "agri_field.district_id",
	TalukaColumn:   "agri_field.taluka_id",
	VillageColumn:  "agri_field.village_id",
	RangeColumn:    "agri_field.area_acres",
	FeaturedColumn: "agri_field.is_featured",
	TextColumns:    []string{"agri_field.title", "agri_field.description", "agri_field.crop_type"},
	BaseClauses: []search.Clause{
		{Expr: "agri_field.is_del = ?", Args: types.AnySlice{0}},
		{Expr: "agri_field.status = ?", Args: types.AnySlice{model.ItemStatusActive}},
	},
	SortColumns: map[search.SortKey]string{
		search.SortNewest:    "agri_field.created_on DESC, agri_field.id DESC",
		search.SortPriceAsc:  "agri_field.area_acres ASC, agri_field.created_on DESC",
		search.SortPriceDesc: "agri_field.area_acres DESC, agri_field.created_on DESC",
	},
	DefaultSort:     "agri_field.created_on DESC, agri_field.id DESC",
	LatitudeColumn:  "agri_field.latitude",
	LongitudeColumn: "agri_field.longitude",
}

type agriFieldServant struct {
	db *gorm.DB
}

func newAgriFieldService(db *gorm.DB) core.AgriFieldService {
	return &agriFieldServant{
		db: db,
	}
}

func (s *agriFieldServant) fieldQuery() *gorm.DB {
	return s.db.Table("agri_field").
		Joins("LEFT JOIN category ON category.id = agri_field.category_id").
		Joins("LEFT JOIN user ON user.id = agri_field.user_id").
		Joins("LEFT JOIN district ON district.id = agri_field.district_id").
		Joins("LEFT JOIN taluka ON taluka.id = agri_field.taluka_id").
		Joins("LEFT JOIN village ON village.id = agri_field.village_id").
		Select("agri_field.*",
			"category.name AS category_name",
			"user.nickname AS user_nickname",
			"district.name AS district_name",
			"district.local_name AS district_local_name",
			"taluka.name AS taluka_name",
			"taluka.local_name AS taluka_local_name",
			"village.name AS village_name",
			"village.local_name AS village_local_name")
}

func (s *agriFieldServant) DiscoverAgriFields(criteria *search.FilterCriteria, page search.PageRequest) ([]*model.AgriFieldFormatted, *search.PageResult, error) {
	pred, err := search.Compose(agriFieldDescriptor, criteria)
	if err != nil {
		return nil, nil, err
	}

	var rows []*model.AgriFieldRow
	res, err := search.Execute(s.fieldQuery(), pred, page, &rows)
	if err != nil {
		return nil, nil, err
	}

	fields := make([]*model.AgriFieldFormatted, 0, len(rows))
	for _, row := range rows {
		fields = append(fields, row.Format())
	}
	return fields, res, nil
}

func (s *agriFieldServant) DiscoverAgriFieldsNearby(criteria *search.NearbyFilterCriteria, page search.PageRequest) ([]*model.AgriFieldFormatted, *search.PageResult, error) {
	if err := criteria.Check(); err != nil {
		return nil, nil, err
	}
	pred, err := search.Compose(agriFieldDescriptor, &criteria.FilterCriteria)
	if err != nil {
		return nil, nil, err
	}
	origin := criteria.Origin()
	pred.And(search.BoundingClauses(agriFieldDescriptor, origin, criteria.RadiusKm)...)

	var rows []*model.AgriFieldRow
	if err = search.FetchCandidates(s.fieldQuery(), pred, nearbyCandidateLimit(), &rows); err != nil {
		return nil, nil, err
	}

	hits := search.RadiusFilter(origin, criteria.RadiusKm, len(rows),
		func(i int) (search.Coordinate, bool) {
			r := rows[i]
			if r.Latitude == nil || r.Longitude == nil {
				return search.Coordinate{}, false
			}
			return search.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}, true
		},
		func(i, j int) bool {
			return rows[i].CreatedOn > rows[j].CreatedOn
		})

	window, res, err := search.PageHits(hits, page)
	if err != nil {
		return nil, nil, err
	}

	fields := make([]*model.AgriFieldFormatted, 0, len(window))
	for _, hit := range window {
		item := rows[hit.Index].Format()
		distance := hit.DistanceKm
		item.DistanceKm = &distance
		fields = append(fields, item)
	}
	return fields, res, nil
}
