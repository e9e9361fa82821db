package model

import (
	"time"

	"gramhaat-backend/pkg/json"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/plugin/soft_delete"
)

// Model public
type Model struct {
	ID         int64                 `gorm:"primary_key" json:"id"`
	CreatedOn  int64                 `json:"created_on"`
	ModifiedOn int64                 `json:"modified_on"`
	DeletedOn  int64                 `json:"deleted_on"`
	IsDel      soft_delete.DeletedAt `gorm:"softDelete:flag" json:"is_del"`
}

// ItemStatusT listing lifecycle, 0 pending review, 1 active, 2 closed
type ItemStatusT uint8

const (
	ItemStatusPending ItemStatusT = iota
	ItemStatusActive
	ItemStatusClosed
)

func (s ItemStatusT) String() string {
	switch s {
	case ItemStatusPending:
		return "pending"
	case ItemStatusActive:
		return "active"
	case ItemStatusClosed:
		return "closed"
	default:
		return "unknow"
	}
}

func (m *Model) BeforeCreate(tx *gorm.DB) (err error) {
	nowTime := time.Now().Unix()

	tx.Statement.SetColumn("created_on", nowTime)
	tx.Statement.SetColumn("modified_on", nowTime)
	return
}

func (m *Model) BeforeUpdate(tx *gorm.DB) (err error) {
	if !tx.Statement.Changed("modified_on") {
		tx.Statement.SetColumn("modified_on", time.Now().Unix())
	}

	return
}

// parseStringList decodes a serialized string list. Parse failures degrade
// to an empty list so one bad row never fails a whole page.
func parseStringList(field, raw string) []string {
	if raw == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logrus.Debugf("model: projection degraded, drop unparsable %s %q: %v", field, raw, err)
		return []string{}
	}
	return items
}
