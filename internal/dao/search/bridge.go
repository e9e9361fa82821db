package search

import (
	"gramhaat-backend/internal/core"
	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"
)

type documents struct {
	primaryKey  []string
	docItems    core.DocItems
	identifiers []string
}

// bridgeItemSearchServant decouples document updates from the request
// path: add/delete enqueue and return immediately, a worker pool drains
// the queue into the wrapped engine.
type bridgeItemSearchServant struct {
	ts               core.ItemSearchService
	updateDocsCh     chan *documents
	updateDocsTempCh chan *documents
}

func (s *bridgeItemSearchServant) Name() string {
	return s.ts.Name()
}

func (s *bridgeItemSearchServant) Version() *semver.Version {
	return s.ts.Version()
}

func (s *bridgeItemSearchServant) IndexName() string {
	return s.ts.IndexName()
}

func (s *bridgeItemSearchServant) AddDocuments(data core.DocItems, primaryKey ...string) (bool, error) {
	s.updateDocs(&documents{
		primaryKey: primaryKey,
		docItems:   data,
	})
	return true, nil
}

func (s *bridgeItemSearchServant) DeleteDocuments(identifiers []string) error {
	s.updateDocs(&documents{
		identifiers: identifiers,
	})
	return nil
}

func (s *bridgeItemSearchServant) Search(q *core.QueryReq, offset, limit int) (*core.QueryResp, error) {
	return s.ts.Search(q, offset, limit)
}

func (s *bridgeItemSearchServant) updateDocs(doc *documents) {
	select {
	case s.updateDocsCh <- doc:
		logrus.Debugln("bridgeItemSearchServant.updateDocs send documents by updateDocsCh chan")
	default:
		select {
		case s.updateDocsTempCh <- doc:
			logrus.Debugln("bridgeItemSearchServant.updateDocs send documents by updateDocsTempCh chan")
		default:
			go func(ch chan<- *documents, doc *documents) {
				ch <- doc
			}(s.updateDocsTempCh, doc)
		}
	}
}

func (s *bridgeItemSearchServant) startUpdateDocs() {
	for {
		select {
		case doc := <-s.updateDocsCh:
			s.handleUpdate(doc)
		case doc := <-s.updateDocsTempCh:
			s.handleUpdate(doc)
		}
	}
}

func (s *bridgeItemSearchServant) handleUpdate(doc *documents) {
	if len(doc.docItems) > 0 {
		if _, err := s.ts.AddDocuments(doc.docItems, doc.primaryKey...); err != nil {
			logrus.Errorf("bridgeItemSearchServant.handleUpdate add documents err: %v", err)
		}
	}
	if len(doc.identifiers) > 0 {
		if err := s.ts.DeleteDocuments(doc.identifiers); err != nil {
			logrus.Errorf("bridgeItemSearchServant.handleUpdate delete documents err: %v", err)
		}
	}
}
