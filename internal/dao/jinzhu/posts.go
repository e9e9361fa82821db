package jinzhu

import (
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/types"
	"gorm.io/gorm"
)

var (
	_ core.PostService       = (*postServant)(nil)
	_ core.PostManageService = (*postManageServant)(nil)
)

var postDescriptor = &search.Descriptor{
	Name:  "post",
	Table: "post",

	CategoryColumn:    "post.category_id",
	SubCategoryColumn: "post.sub_category_id",
	DistrictColumn:    "post.district_id",
	TalukaColumn:      "post.taluka_id",
	VillageColumn:     "post.village_id",
	RangeColumn:       "post.price",
	FeaturedColumn:    "post.is_featured",
	TextColumns:       []string{"post.title", "post.description", "post.tags"},
	BaseClauses: []search.Clause{
		{Expr: "post.is_del = ?", Args: types.AnySlice{0}},
		{Expr: "post.status = ?", Args: types.AnySlice{model.ItemStatusActive}},
	},
	SortColumns: map[search.SortKey]string{
		search.SortNewest:    "post.created_on DESC, post.id DESC",
		search.SortPopular:   "post.view_count DESC, post.created_on DESC",
		search.SortPriceAsc:  "post.price ASC, post.created_on DESC",
		search.SortPriceDesc: "post.price DESC, post.created_on DESC",
	},
	DefaultSort:     "post.created_on DESC, post.id DESC",
	LatitudeColumn:  "post.latitude",
	LongitudeColumn: "post.longitude",
}

type postServant struct {
	db *gorm.DB
}

type postManageServant struct {
	db *gorm.DB
}

func newPostService(db *gorm.DB) core.PostService {
	return &postServant{
		db: db,
	}
}

func newPostManageService(db *gorm.DB) core.PostManageService {
	return &postManageServant{
		db: db,
	}
}

func (s *postServant) postQuery() *gorm.DB {
	return s.db.Table("post").
		Joins("LEFT JOIN category ON category.id = post.category_id").
		Joins("LEFT JOIN category sub_category ON sub_category.id = post.sub_category_id").
		Joins("LEFT JOIN user ON user.id = post.user_id").
		Joins("LEFT JOIN district ON district.id = post.district_id").
		Joins("LEFT JOIN taluka ON taluka.id = post.taluka_id").
		Joins("LEFT JOIN village ON village.id = post.village_id").
		Select("post.*",
			"category.name AS category_name",
			"sub_category.name AS sub_category_name",
			"user.nickname AS user_nickname",
			"district.name AS district_name",
			"district.local_name AS district_local_name",
			"taluka.name AS taluka_name",
			"taluka.local_name AS taluka_local_name",
			"village.name AS village_name",
			"village.local_name AS village_local_name")
}

func (s *postServant) DiscoverPosts(criteria *search.FilterCriteria, page search.PageRequest) ([]*model.PostFormatted, *search.PageResult, error) {
	pred, err := search.Compose(postDescriptor, criteria)
	if err != nil {
		return nil, nil, err
	}

	var rows []*model.PostRow
	res, err := search.Execute(s.postQuery(), pred, page, &rows)
	if err != nil {
		return nil, nil, err
	}

	posts := make([]*model.PostFormatted, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.Format())
	}
	return posts, res, nil
}

func (s *postServant) DiscoverPostsNearby(criteria *search.NearbyFilterCriteria, page search.PageRequest) ([]*model.PostFormatted, *search.PageResult, error) {
	if err := criteria.Check(); err != nil {
		return nil, nil, err
	}
	pred, err := search.Compose(postDescriptor, &criteria.FilterCriteria)
	if err != nil {
		return nil, nil, err
	}
	origin := criteria.Origin()
	pred.And(search.BoundingClauses(postDescriptor, origin, criteria.RadiusKm)...)

	var rows []*model.PostRow
	if err = search.FetchCandidates(s.postQuery(), pred, nearbyCandidateLimit(), &rows); err != nil {
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

	posts := make([]*model.PostFormatted, 0, len(window))
	for _, hit := range window {
		item := rows[hit.Index].Format()
		distance := hit.DistanceKm
		item.DistanceKm = &distance
		posts = append(posts, item)
	}
	return posts, res, nil
}

func (s *postServant) GetPostByID(id int64) (*model.PostFormatted, error) {
	var row model.PostRow
	err := s.postQuery().Where("post.id = ? AND post.is_del = ?", id, 0).First(&row).Error
	if err != nil {
		return nil, err
	}
	return row.Format(), nil
}

func (s *postManageServant) CreatePost(post *model.Post) (*model.Post, error) {
	return post.Create(s.db)
}

func (s *postManageServant) DeletePost(id int64) error {
	post := &model.Post{
		Model: &model.Model{
			ID: id,
		},
	}
	return post.Delete(s.db)
}
