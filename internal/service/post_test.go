package service

import (
	"testing"

	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/errcode"
)

type fakeDataService struct {
	core.DataService

	districts map[int64]*search.LocationNode
	talukas   map[int64]*search.LocationNode
	villages  map[int64]*search.LocationNode

	discovered *search.FilterCriteria
	posts      []*model.PostFormatted
}

func (f *fakeDataService) District(id int64) (*search.LocationNode, error) {
	return f.districts[id], nil
}

func (f *fakeDataService) Taluka(id int64) (*search.LocationNode, error) {
	return f.talukas[id], nil
}

func (f *fakeDataService) Village(id int64) (*search.LocationNode, error) {
	return f.villages[id], nil
}

func (f *fakeDataService) DiscoverPosts(criteria *search.FilterCriteria, page search.PageRequest) ([]*model.PostFormatted, *search.PageResult, error) {
	f.discovered = criteria
	total := int64(len(f.posts))
	return f.posts, &search.PageResult{
		Page:       page.Page,
		PageSize:   page.Size,
		TotalRows:  total,
		TotalPages: search.TotalPages(total, page.Size),
	}, nil
}

type fakeItemSearchService struct {
	core.ItemSearchService

	queries []string
	posts   []*model.PostFormatted
}

func (f *fakeItemSearchService) Search(q *core.QueryReq, offset, limit int) (*core.QueryResp, error) {
	f.queries = append(f.queries, q.Query)
	return &core.QueryResp{Items: f.posts, Total: int64(len(f.posts))}, nil
}

type fakeSponsorService struct {
	next *model.SponsorFormatted
}

func (f *fakeSponsorService) NextSponsor(_ string) (*model.SponsorFormatted, error) {
	return f.next, nil
}

func newFakeDataService() *fakeDataService {
	return &fakeDataService{
		districts: map[int64]*search.LocationNode{
			1: {ID: 1, Name: "Pune", LocalName: "पुणे", Active: true},
		},
		talukas: map[int64]*search.LocationNode{
			10: {ID: 10, Name: "Haveli", ParentID: 1, Active: true},
			11: {ID: 11, Name: "Sinnar", ParentID: 2, Active: true},
		},
		villages: map[int64]*search.LocationNode{
			100: {ID: 100, Name: "Wagholi", ParentID: 10, Active: true},
		},
		posts: []*model.PostFormatted{{ID: 7, Title: "tractor"}},
	}
}

func i64(v int64) *int64 { return &v }

func TestGetPostListRejectsBrokenChain(t *testing.T) {
	fds := newFakeDataService()
	fts := &fakeItemSearchService{}
	ds, ts = fds, fts

	// taluka 11 belongs to district 2, not district 1
	req := &ItemFilterReq{DistrictID: i64(1), TalukaID: i64(11)}
	_, _, xerr := GetPostList(req, search.PageRequest{Page: 1, Size: 20})
	if xerr == nil {
		t.Fatal("want location error, got nil")
	}
	if xerr.Code() != errcode.InvalidLocation.Code() {
		t.Fatalf("want code %d got %d", errcode.InvalidLocation.Code(), xerr.Code())
	}
	if fds.discovered != nil {
		t.Fatal("no discovery query should run for a broken chain")
	}
}

func TestGetPostListRoutesTextOnlyToSearch(t *testing.T) {
	fds := newFakeDataService()
	fts := &fakeItemSearchService{posts: []*model.PostFormatted{{ID: 9, Title: "bullock cart"}}}
	ds, ts = fds, fts

	posts, res, xerr := GetPostList(&ItemFilterReq{Search: "cart"}, search.PageRequest{Page: 1, Size: 20})
	if xerr != nil {
		t.Fatalf("GetPostList err: %v", xerr)
	}
	if len(fts.queries) != 1 || fts.queries[0] != "cart" {
		t.Fatalf("want one search query %q, got %v", "cart", fts.queries)
	}
	if fds.discovered != nil {
		t.Fatal("text only query should not hit the store")
	}
	if len(posts) != 1 || posts[0].ID != 9 {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	if res.TotalRows != 1 {
		t.Fatalf("want TotalRows 1 got %d", res.TotalRows)
	}
}

func TestGetPostListFacetedUsesStore(t *testing.T) {
	fds := newFakeDataService()
	fts := &fakeItemSearchService{}
	ds, ts = fds, fts

	req := &ItemFilterReq{DistrictID: i64(1), Search: "tractor"}
	posts, _, xerr := GetPostList(req, search.PageRequest{Page: 1, Size: 20})
	if xerr != nil {
		t.Fatalf("GetPostList err: %v", xerr)
	}
	if len(fts.queries) != 0 {
		t.Fatalf("faceted query must not go to item search, got %v", fts.queries)
	}
	if fds.discovered == nil {
		t.Fatal("store discovery did not run")
	}
	if fds.discovered.SearchTerm != "tractor" {
		t.Fatalf("search term lost in composition: %+v", fds.discovered)
	}
	if len(posts) != 1 || posts[0].ID != 7 {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}

func TestNextSponsorNoActive(t *testing.T) {
	ss = &fakeSponsorService{}

	_, xerr := NextSponsor("home")
	if xerr == nil || xerr.Code() != errcode.NoActiveSponsor.Code() {
		t.Fatalf("want NoActiveSponsor, got %v", xerr)
	}
}

func TestNextSponsorPassesThrough(t *testing.T) {
	ss = &fakeSponsorService{next: &model.SponsorFormatted{ID: 3, Slot: "home", ImpressionID: "imp-1"}}

	sponsor, xerr := NextSponsor("home")
	if xerr != nil {
		t.Fatalf("NextSponsor err: %v", xerr)
	}
	if sponsor.ID != 3 || sponsor.ImpressionID == "" {
		t.Fatalf("unexpected sponsor: %+v", sponsor)
	}
}
