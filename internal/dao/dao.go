package dao

import (
	"sync"

	"gramhaat-backend/internal/conf"
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/dao/jinzhu"
	"gramhaat-backend/internal/dao/search"
	"github.com/sirupsen/logrus"
)

var (
	ts core.ItemSearchService
	ds core.DataService
	ss core.SponsorService

	onceTs, onceDs, onceSs sync.Once
)

func DataService() core.DataService {
	onceDs.Do(func() {
		var v core.VersionInfo
		ds, v = jinzhu.NewDataService()
		logrus.Infof("use %s as data service with version %s", v.Name(), v.Version())
	})
	return ds
}

func ItemSearchService() core.ItemSearchService {
	onceTs.Do(func() {
		var v core.VersionInfo
		if conf.CfgIf("Meili") {
			ts, v = search.NewMeiliItemSearchService()
		} else {
			// default serve free text straight from the database
			ts, v = search.NewDBItemSearchService(DataService())
		}
		logrus.Infof("use %s as item search service by version %s", v.Name(), v.Version())

		ts = search.NewBridgeItemSearchService(ts)
	})
	return ts
}

func SponsorService() core.SponsorService {
	onceSs.Do(func() {
		var v core.VersionInfo
		ss, v = jinzhu.NewSponsorService()
		logrus.Infof("use %s as sponsor service by version %s", v.Name(), v.Version())
	})
	return ss
}
