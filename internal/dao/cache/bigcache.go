package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"gramhaat-backend/internal/conf"
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"github.com/Masterminds/semver/v3"
	"github.com/allegro/bigcache/v3"
	"github.com/sirupsen/logrus"
)

var (
	_ core.ReferenceResolver = (*bigCacheResolverServant)(nil)
	_ core.VersionInfo       = (*bigCacheResolverServant)(nil)
)

// bigCacheResolverServant caches location and category lookups in front of
// the store resolver. Reference rows change rarely, so a short expiry is
// enough and no invalidation hooks are needed: a toggled row shows up
// after at most ExpireInSecond.
type bigCacheResolverServant struct {
	res   core.ReferenceResolver
	cache *bigcache.BigCache
}

func NewBigCacheResolverService(res core.ReferenceResolver) (core.ReferenceResolver, core.VersionInfo) {
	config := bigcache.DefaultConfig(conf.BigCacheIndexSetting.ExpireInSecond)
	config.Shards = 64
	config.MaxEntriesInWindow = conf.BigCacheIndexSetting.MaxIndexSize
	config.HardMaxCacheSize = conf.BigCacheIndexSetting.HardMaxCacheMB
	config.Verbose = conf.BigCacheIndexSetting.Verbose

	c, err := bigcache.New(context.Background(), config)
	if err != nil {
		logrus.Fatalf("initialize bigcache failed: %s", err)
	}

	s := &bigCacheResolverServant{
		res:   res,
		cache: c,
	}
	return s, s
}

func (s *bigCacheResolverServant) District(id int64) (*search.LocationNode, error) {
	return s.node(search.TierDistrict, id, s.res.District)
}

func (s *bigCacheResolverServant) Taluka(id int64) (*search.LocationNode, error) {
	return s.node(search.TierTaluka, id, s.res.Taluka)
}

func (s *bigCacheResolverServant) Village(id int64) (*search.LocationNode, error) {
	return s.node(search.TierVillage, id, s.res.Village)
}

func (s *bigCacheResolverServant) node(tier search.Tier, id int64, fetch func(int64) (*search.LocationNode, error)) (*search.LocationNode, error) {
	key := fmt.Sprintf("location:%s:%d", tier, id)
	if data, err := s.cache.Get(key); err == nil {
		var node search.LocationNode
		if err = gob.NewDecoder(bytes.NewBuffer(data)).Decode(&node); err == nil {
			logrus.Debugf("bigCacheResolverServant.node get node from cache by key: %s", key)
			return &node, nil
		}
		logrus.Debugf("bigCacheResolverServant.node decode node by key: %s err: %v", key, err)
	}

	node, err := fetch(id)
	if err != nil || node == nil {
		return node, err
	}
	s.set(key, node)
	return node, nil
}

func (s *bigCacheResolverServant) ResolveCategory(id int64) (*model.Category, error) {
	key := fmt.Sprintf("category:%d", id)
	if data, err := s.cache.Get(key); err == nil {
		var category model.Category
		if err = gob.NewDecoder(bytes.NewBuffer(data)).Decode(&category); err == nil {
			logrus.Debugf("bigCacheResolverServant.ResolveCategory get category from cache by key: %s", key)
			return &category, nil
		}
		logrus.Debugf("bigCacheResolverServant.ResolveCategory decode category by key: %s err: %v", key, err)
	}

	category, err := s.res.ResolveCategory(id)
	if err != nil || category == nil {
		return category, err
	}
	s.set(key, category)
	return category, nil
}

func (s *bigCacheResolverServant) set(key string, value interface{}) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		logrus.Debugf("bigCacheResolverServant.set encode value by key: %s err: %v", key, err)
		return
	}
	if err := s.cache.Set(key, buf.Bytes()); err != nil {
		logrus.Debugf("bigCacheResolverServant.set set cache by key: %s err: %v", key, err)
	}
}

func (s *bigCacheResolverServant) Name() string {
	return "BigCacheResolver"
}

func (s *bigCacheResolverServant) Version() *semver.Version {
	return semver.MustParse("v0.2.0")
}
