package core

import (
	"github.com/Masterminds/semver/v3"
)

type SearchType string

const (
	SearchTypeDefault SearchType = "search"
)

type QueryReq struct {
	Query      string
	Visibility []string
	Type       SearchType
}

type QueryResp struct {
	Items []*PostFormatted
	Total int64
}

type DocItems []map[string]interface{}

// VersionInfo fetches the semantics versioning information of data service
type VersionInfo interface {
	Name() string
	Version() *semver.Version
}

// ItemSearchService searchable item service
type ItemSearchService interface {
	VersionInfo

	IndexName() string
	AddDocuments(data DocItems, primaryKey ...string) (bool, error)
	DeleteDocuments(identifiers []string) error
	Search(q *QueryReq, offset, limit int) (*QueryResp, error)
}
