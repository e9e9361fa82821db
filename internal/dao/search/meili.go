package search

import (
	"fmt"

	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"gramhaat-backend/pkg/json"
	"github.com/Masterminds/semver/v3"
	"github.com/meilisearch/meilisearch-go"
	"github.com/sirupsen/logrus"
)

var (
	_ core.ItemSearchService = (*meiliItemSearchServant)(nil)
	_ core.VersionInfo       = (*meiliItemSearchServant)(nil)
)

type meiliItemSearchServant struct {
	client *meilisearch.Client
	index  *meilisearch.Index
}

func (s *meiliItemSearchServant) Name() string {
	return "Meili"
}

func (s *meiliItemSearchServant) Version() *semver.Version {
	return semver.MustParse("v0.2.0")
}

func (s *meiliItemSearchServant) IndexName() string {
	return s.index.UID
}

func (s *meiliItemSearchServant) AddDocuments(data core.DocItems, primaryKey ...string) (bool, error) {
	if len(data) == 0 {
		return true, nil
	}
	if _, err := s.index.AddDocuments(data, primaryKey...); err != nil {
		logrus.Errorf("meiliItemSearchServant.AddDocuments error: %s", err)
		return false, err
	}
	return true, nil
}

func (s *meiliItemSearchServant) DeleteDocuments(identifiers []string) error {
	task, err := s.index.DeleteDocuments(identifiers)
	if err != nil {
		logrus.Errorf("meiliItemSearchServant.DeleteDocuments error: %s", err)
		return err
	}
	logrus.Debugf("meiliItemSearchServant.DeleteDocuments task: (taskUID:%d, indexUID:%s, status:%s)", task.TaskUID, task.IndexUID, task.Status)
	return nil
}

func (s *meiliItemSearchServant) Search(q *core.QueryReq, offset, limit int) (resp *core.QueryResp, err error) {
	request := &meilisearch.SearchRequest{
		Offset: int64(offset),
		Limit:  int64(limit),
		Sort:   []string{"is_featured:desc", "created_on:desc"},
	}
	// only active listings are searchable
	request.Filter = fmt.Sprintf("status=%d", model.ItemStatusActive)

	res, err := s.index.Search(q.Query, request)
	if err != nil {
		logrus.Errorf("meiliItemSearchServant.Search query:%s error:%v", q.Query, err)
		return nil, err
	}

	logrus.Debugf("meiliItemSearchServant.Search query:%s resp Hits:%d NbHits:%d offset:%d limit:%d", q.Query, len(res.Hits), res.TotalHits, offset, limit)
	return s.postsFrom(res)
}

func (s *meiliItemSearchServant) postsFrom(resp *meilisearch.SearchResponse) (*core.QueryResp, error) {
	posts := make([]*model.PostFormatted, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		item := &model.PostFormatted{}
		raw, err := json.Marshal(hit)
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal(raw, item); err != nil {
			return nil, err
		}
		posts = append(posts, item)
	}

	return &core.QueryResp{
		Items: posts,
		Total: resp.TotalHits,
	}, nil
}
