package cache

import (
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"github.com/Masterminds/semver/v3"
)

var (
	_ core.ReferenceResolver = (*noneResolverServant)(nil)
	_ core.VersionInfo       = (*noneResolverServant)(nil)
)

type noneResolverServant struct {
	res core.ReferenceResolver
}

func NewNoneResolverService(res core.ReferenceResolver) (core.ReferenceResolver, core.VersionInfo) {
	s := &noneResolverServant{
		res: res,
	}
	return s, s
}

func (s *noneResolverServant) District(id int64) (*search.LocationNode, error) {
	return s.res.District(id)
}

func (s *noneResolverServant) Taluka(id int64) (*search.LocationNode, error) {
	return s.res.Taluka(id)
}

func (s *noneResolverServant) Village(id int64) (*search.LocationNode, error) {
	return s.res.Village(id)
}

func (s *noneResolverServant) ResolveCategory(id int64) (*model.Category, error) {
	return s.res.ResolveCategory(id)
}

func (s *noneResolverServant) Name() string {
	return "NoneResolver"
}

func (s *noneResolverServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}
