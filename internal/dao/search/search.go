package search

import (
	"gramhaat-backend/internal/conf"
	"gramhaat-backend/internal/core"
	"github.com/meilisearch/meilisearch-go"
	"github.com/sirupsen/logrus"
)

func NewMeiliItemSearchService() (core.ItemSearchService, core.VersionInfo) {
	s := conf.MeiliSetting
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   s.Endpoint(),
		APIKey: s.ApiKey,
	})

	if _, err := client.Index(s.Index).FetchInfo(); err != nil {
		logrus.Debugf("create index because fetch index info error: %v", err)
		client.CreateIndex(&meilisearch.IndexConfig{
			Uid:        s.Index,
			PrimaryKey: "id",
		})
		searchableAttributes := []string{"title", "description", "tags"}
		sortableAttributes := []string{"is_featured", "created_on"}
		filterableAttributes := []string{"category_id", "district_id", "taluka_id", "village_id", "status"}

		index := client.Index(s.Index)
		index.UpdateSearchableAttributes(&searchableAttributes)
		index.UpdateSortableAttributes(&sortableAttributes)
		index.UpdateFilterableAttributes(&filterableAttributes)
	}

	mis := &meiliItemSearchServant{
		client: client,
		index:  client.Index(s.Index),
	}
	return mis, mis
}

func NewDBItemSearchService(ps core.PostService) (core.ItemSearchService, core.VersionInfo) {
	dis := &dbItemSearchServant{
		ps: ps,
	}
	return dis, dis
}

func NewBridgeItemSearchService(ts core.ItemSearchService) core.ItemSearchService {
	capacity := conf.ItemSearchSetting.MaxUpdateQPS
	if capacity < 10 {
		capacity = 10
	} else if capacity > 10000 {
		capacity = 10000
	}
	bis := &bridgeItemSearchServant{
		ts:               ts,
		updateDocsCh:     make(chan *documents, capacity),
		updateDocsTempCh: make(chan *documents, 100),
	}

	numWorker := conf.ItemSearchSetting.MinWorker
	if numWorker < 5 {
		numWorker = 5
	} else if numWorker > 1000 {
		numWorker = 1000
	}
	logrus.Debugf("use %d backend worker to update documents to search engine", numWorker)
	for ; numWorker > 0; numWorker-- {
		go bis.startUpdateDocs()
	}

	return bis
}
