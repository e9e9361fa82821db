package cache

import (
	"context"
	"testing"
	"time"

	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"github.com/allegro/bigcache/v3"
)

type countingResolver struct {
	districtCalls int
	categoryCalls int
}

func (r *countingResolver) District(id int64) (*search.LocationNode, error) {
	r.districtCalls++
	if id == 404 {
		return nil, nil
	}
	return &search.LocationNode{ID: id, Name: "Pune", LocalName: "पुणे", Active: true}, nil
}

func (r *countingResolver) Taluka(id int64) (*search.LocationNode, error) {
	return &search.LocationNode{ID: id, ParentID: 1, Active: true}, nil
}

func (r *countingResolver) Village(id int64) (*search.LocationNode, error) {
	return &search.LocationNode{ID: id, ParentID: 10, Active: true}, nil
}

func (r *countingResolver) ResolveCategory(id int64) (*model.Category, error) {
	r.categoryCalls++
	return &model.Category{ID: id, Name: "Tractors", IsActive: 1}, nil
}

func newTestServant(t *testing.T) (*bigCacheResolverServant, *countingResolver) {
	t.Helper()
	c, err := bigcache.New(context.Background(), bigcache.DefaultConfig(time.Minute))
	if err != nil {
		t.Fatalf("initialize bigcache: %s", err)
	}
	res := &countingResolver{}
	return &bigCacheResolverServant{res: res, cache: c}, res
}

func TestDistrictServedFromCacheOnSecondHit(t *testing.T) {
	s, res := newTestServant(t)

	first, err := s.District(1)
	if err != nil {
		t.Fatalf("District: %s", err)
	}
	second, err := s.District(1)
	if err != nil {
		t.Fatalf("District: %s", err)
	}
	if res.districtCalls != 1 {
		t.Errorf("store resolver called %d times, want 1", res.districtCalls)
	}
	if *first != *second {
		t.Errorf("cached node %+v differs from stored node %+v", second, first)
	}
}

func TestUnknownDistrictNotCached(t *testing.T) {
	s, res := newTestServant(t)

	for i := 0; i < 2; i++ {
		node, err := s.District(404)
		if err != nil {
			t.Fatalf("District: %s", err)
		}
		if node != nil {
			t.Fatalf("unknown district resolved to %+v", node)
		}
	}
	if res.districtCalls != 2 {
		t.Errorf("negative result was cached, resolver called %d times, want 2", res.districtCalls)
	}
}

func TestResolveCategoryServedFromCache(t *testing.T) {
	s, res := newTestServant(t)

	if _, err := s.ResolveCategory(3); err != nil {
		t.Fatalf("ResolveCategory: %s", err)
	}
	category, err := s.ResolveCategory(3)
	if err != nil {
		t.Fatalf("ResolveCategory: %s", err)
	}
	if res.categoryCalls != 1 {
		t.Errorf("store resolver called %d times, want 1", res.categoryCalls)
	}
	if category.Name != "Tractors" {
		t.Errorf("cached category name = %q", category.Name)
	}
}
