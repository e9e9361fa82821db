package jinzhu

import (
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/types"
	"gorm.io/gorm"
)

var (
	_ core.LocalCardService = (*localCardServant)(nil)
)

// Local cards have no range facet: min/max criteria simply compose to
// nothing for them.
var localCardDescriptor = &search.Descriptor{
	Name:  "local_card",
	Table: "local_card",

	CategoryColumn:    "local_card.category_id",
	SubCategoryColumn: "local_card.sub_category_id",
	DistrictColumn:    "local_card.district_id",
	TalukaColumn:      "local_card.taluka_id",
	VillageColumn:     "local_card.village_id",
	FeaturedColumn:    "local_card.is_verified",
	TextColumns:       []string{"local_card.business_name", "local_card.owner_name", "local_card.services"},
	BaseClauses: []search.Clause{
		{Expr: "local_card.is_del = ?", Args: types.AnySlice{0}},
		{Expr: "local_card.status = ?", Args: types.AnySlice{model.ItemStatusActive}},
	},
	SortColumns: map[search.SortKey]string{
		search.SortNewest: "local_card.created_on DESC, local_card.id DESC",
	},
	DefaultSort:     "local_card.created_on DESC, local_card.id DESC",
	LatitudeColumn:  "local_card.latitude",
	LongitudeColumn: "local_card.longitude",
}

type localCardServant struct {
	db *gorm.DB
}

func newLocalCardService(db *gorm.DB) core.LocalCardService {
	return &localCardServant{
		db: db,
	}
}

func (s *localCardServant) cardQuery() *gorm.DB {
	return s.db.Table("local_card").
		Joins("LEFT JOIN category ON category.id = local_card.category_id").
		Joins("LEFT JOIN category sub_category ON sub_category.id = local_card.sub_category_id").
		Joins("LEFT JOIN district ON district.id = local_card.district_id").
		Joins("LEFT JOIN taluka ON taluka.id = local_card.taluka_id").
		Joins("LEFT JOIN village ON village.id = local_card.village_id").
		Select("local_card.*",
			"category.name AS category_name",
			"sub_category.name AS sub_category_name",
			"district.name AS district_name",
			"district.local_name AS district_local_name",
			"taluka.name AS taluka_name",
			"taluka.local_name AS taluka_local_name",
			"village.name AS village_name",
			"village.local_name AS village_local_name")
}

func (s *localCardServant) DiscoverLocalCards(criteria *search.FilterCriteria, page search.PageRequest) ([]*model.LocalCardFormatted, *search.PageResult, error) {
	pred, err := search.Compose(localCardDescriptor, criteria)
	if err != nil {
		return nil, nil, err
	}

	var rows []*model.LocalCardRow
	res, err := search.Execute(s.cardQuery(), pred, page, &rows)
	if err != nil {
		return nil, nil, err
	}

	cards := make([]*model.LocalCardFormatted, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, row.Format())
	}
	return cards, res, nil
}

func (s *localCardServant) DiscoverLocalCardsNearby(criteria *search.NearbyFilterCriteria, page search.PageRequest) ([]*model.LocalCardFormatted, *search.PageResult, error) {
	if err := criteria.Check(); err != nil {
		return nil, nil, err
	}
	pred, err := search.Compose(localCardDescriptor, &criteria.FilterCriteria)
	if err != nil {
		return nil, nil, err
	}
	origin := criteria.Origin()
	pred.And(search.BoundingClauses(localCardDescriptor, origin, criteria.RadiusKm)...)

	var rows []*model.LocalCardRow
	if err = search.FetchCandidates(s.cardQuery(), pred, nearbyCandidateLimit(), &rows); err != nil {
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

	cards := make([]*model.LocalCardFormatted, 0, len(window))
	for _, hit := range window {
		item := rows[hit.Index].Format()
		distance := hit.DistanceKm
		item.DistanceKm = &distance
		cards = append(cards, item)
	}
	return cards, res, nil
}
