package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/errcode"
	"gramhaat-backend/pkg/json"
	"gramhaat-backend/pkg/notify"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PostCreationReq struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	UserID        int64    `json:"user_id" binding:"required"`
	CategoryID    int64    `json:"category_id" binding:"required"`
	SubCategoryID int64    `json:"sub_category_id"`
	DistrictID    int64    `json:"district_id" binding:"required"`
	TalukaID      int64    `json:"taluka_id" binding:"required"`
	VillageID     int64    `json:"village_id" binding:"required"`
	Price         float64  `json:"price"`
	Tags          []string `json:"tags"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type PostDelReq struct {
	ID int64 `json:"id" binding:"required"`
}

func tagsFrom(originTags []string) []string {
	tags := make([]string, 0, len(originTags))
	for _, tag := range originTags {
		if tag = strings.TrimSpace(tag); len(tag) > 0 {
			tags = append(tags, tag)
		}
	}
	return tags
}

// GetPostList serves the faceted post discovery. Pure free text queries go
// through the item search engine; anything carrying facets runs through
// the predicate composer so the engine choice never changes the filter
// semantics.
func GetPostList(req *ItemFilterReq, page search.PageRequest) ([]*model.PostFormatted, *search.PageResult, *errcode.Error) {
	criteria := req.toCriteria()
	if xerr := validateLocationChain(criteria); xerr != nil {
		return nil, nil, xerr
	}

	if criteria.SearchTerm != "" && textOnly(criteria) {
		return searchPosts(criteria.SearchTerm, page)
	}

	posts, res, err := ds.DiscoverPosts(criteria, page)
	if err != nil {
		return nil, nil, searchError(err, errcode.GetPostsFailed)
	}
	return posts, res, nil
}

func GetPostListNearby(req *ItemNearbyReq, page search.PageRequest) ([]*model.PostFormatted, *search.PageResult, *errcode.Error) {
	if xerr := checkRadius(req.RadiusKm); xerr != nil {
		return nil, nil, xerr
	}
	criteria := req.toNearbyCriteria()
	if xerr := validateLocationChain(&criteria.FilterCriteria); xerr != nil {
		return nil, nil, xerr
	}

	posts, res, err := ds.DiscoverPostsNearby(criteria, page)
	if err != nil {
		return nil, nil, searchError(err, errcode.GetPostsFailed)
	}
	return posts, res, nil
}

func GetPost(id int64) (*model.PostFormatted, *errcode.Error) {
	post, err := ds.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NoExistPost
		}
		return nil, errcode.GetPostFailed
	}
	return post, nil
}

func CreatePost(param PostCreationReq) (*model.PostFormatted, *errcode.Error) {
	if _, err := ds.GetUserByID(param.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.InvalidParams.WithDetails("unknown user")
		}
		logrus.Errorf("ds.GetUserByID err: %v", err)
		return nil, errcode.CreatePostFailed
	}
	validator := search.NewChainValidator(ds)
	if _, err := validator.ValidateChain(&param.DistrictID, &param.TalukaID, &param.VillageID); err != nil {
		return nil, searchError(err, errcode.InvalidLocation)
	}
	if param.Latitude != nil || param.Longitude != nil {
		if param.Latitude == nil || param.Longitude == nil {
			return nil, errcode.InvalidCoordinate
		}
		coord := search.Coordinate{Latitude: *param.Latitude, Longitude: *param.Longitude}
		if err := coord.Check(); err != nil {
			return nil, errcode.InvalidCoordinate
		}
	}
	if category, err := ds.ResolveCategory(param.CategoryID); err != nil || category == nil {
		return nil, errcode.InvalidParams.WithDetails("unknown category")
	}

	tags, err := json.Marshal(tagsFrom(param.Tags))
	if err != nil {
		return nil, errcode.CreatePostFailed
	}

	post := &model.Post{
		Model:         &model.Model{},
		Title:         param.Title,
		Description:   param.Description,
		UserID:        param.UserID,
		CategoryID:    param.CategoryID,
		SubCategoryID: param.SubCategoryID,
		DistrictID:    param.DistrictID,
		TalukaID:      param.TalukaID,
		VillageID:     param.VillageID,
		Price:         param.Price,
		Status:        model.ItemStatusActive,
		Tags:          string(tags),
		Latitude:      param.Latitude,
		Longitude:     param.Longitude,
	}
	post, err = ds.CreatePost(post)
	if err != nil {
		logrus.Errorf("ds.CreatePost err: %v", err)
		return nil, errcode.CreatePostFailed
	}

	pushPostToSearch(post)
	onPostCreated(post)

	return GetPost(post.ID)
}

func DeletePost(req *PostDelReq) *errcode.Error {
	if _, xerr := GetPost(req.ID); xerr != nil {
		return xerr
	}
	if err := ds.DeletePost(req.ID); err != nil {
		logrus.Errorf("ds.DeletePost err: %v", err)
		return errcode.DeletePostFailed
	}
	deletePostFromSearch(req.ID)
	return nil
}

func searchPosts(query string, page search.PageRequest) ([]*model.PostFormatted, *search.PageResult, *errcode.Error) {
	offset, limit, err := page.Window()
	if err != nil {
		return nil, nil, errcode.InvalidPageRequest
	}
	resp, err := ts.Search(&core.QueryReq{Query: query, Type: core.SearchTypeDefault}, offset, limit)
	if err != nil {
		return nil, nil, searchError(err, errcode.GetPostsFailed)
	}
	res := &search.PageResult{
		Page:       page.Page,
		PageSize:   page.Size,
		TotalRows:  resp.Total,
		TotalPages: search.TotalPages(resp.Total, page.Size),
	}
	return resp.Items, res, nil
}

// textOnly reports whether a criteria set carries nothing but the free
// text term, i.e. whether the item search engine can serve it alone.
func textOnly(criteria *search.FilterCriteria) bool {
	return criteria.CategoryID == nil &&
		criteria.SubCategoryID == nil &&
		criteria.DistrictID == nil &&
		criteria.TalukaID == nil &&
		criteria.VillageID == nil &&
		criteria.MinValue == nil &&
		criteria.MaxValue == nil &&
		!criteria.FeaturedOnly
}

func pushPostToSearch(post *model.Post) {
	data := core.DocItems{{
		"id":          post.ID,
		"title":       post.Title,
		"description": post.Description,
		"category_id": post.CategoryID,
		"district_id": post.DistrictID,
		"taluka_id":   post.TalukaID,
		"village_id":  post.VillageID,
		"price":       post.Price,
		"is_featured": post.IsFeatured,
		"status":      post.Status,
		"tags":        tagsFrom(parseTags(post.Tags)),
		"created_on":  post.CreatedOn,
	}}
	if _, err := ts.AddDocuments(data, "id"); err != nil {
		logrus.Errorf("ts.AddDocuments err: %v", err)
	}
}

func deletePostFromSearch(id int64) {
	if err := ts.DeleteDocuments([]string{strconv.FormatInt(id, 10)}); err != nil {
		logrus.Errorf("ts.DeleteDocuments err: %v", err)
	}
}

func parseTags(raw string) (tags []string) {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil
	}
	return tags
}

func onPostCreated(post *model.Post) {
	if notifyGateway == nil {
		return
	}
	key, err := uuid.NewV4()
	if err != nil {
		logrus.Errorf("generate notify key err: %v", err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := notifyGateway.Notify(ctx, notify.PushNotifyRequest{
			Key:     key.String(),
			Event:   "post_created",
			OwnerID: post.UserID,
			Title:   "Your listing is live",
			Content: post.Title,
			Links:   "/v1/post?id=" + strconv.FormatInt(post.ID, 10),
		})
		if err != nil {
			logrus.Errorf("notifyGateway.Notify err: %v", err)
		}
	}()
}
