package search

import (
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/search"
	"github.com/Masterminds/semver/v3"
)

var (
	_ core.ItemSearchService = (*dbItemSearchServant)(nil)
	_ core.VersionInfo       = (*dbItemSearchServant)(nil)
)

// dbItemSearchServant serves free text queries straight from the store
// via the discovery engine's LIKE matching. It keeps no index of its own,
// so document updates are a no-op.
type dbItemSearchServant struct {
	ps core.PostService
}

func (s *dbItemSearchServant) Name() string {
	return "DB"
}

func (s *dbItemSearchServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}

func (s *dbItemSearchServant) IndexName() string {
	return "post"
}

func (s *dbItemSearchServant) AddDocuments(_ core.DocItems, _ ...string) (bool, error) {
	return true, nil
}

func (s *dbItemSearchServant) DeleteDocuments(_ []string) error {
	return nil
}

func (s *dbItemSearchServant) Search(q *core.QueryReq, offset, limit int) (*core.QueryResp, error) {
	if limit < 1 {
		limit = 1
	}
	page := search.PageRequest{
		Page: offset/limit + 1,
		Size: limit,
	}
	posts, res, err := s.ps.DiscoverPosts(&search.FilterCriteria{SearchTerm: q.Query}, page)
	if err != nil {
		return nil, err
	}
	return &core.QueryResp{
		Items: posts,
		Total: res.TotalRows,
	}, nil
}
