package service

import (
	"gramhaat-backend/internal/conf"
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/dao"
	"gramhaat-backend/pkg/notify"
)

var (
	ds            core.DataService
	ts            core.ItemSearchService
	ss            core.SponsorService
	notifyGateway *notify.Gateway
)

func Initialize() {
	ds = dao.DataService()
	ts = dao.ItemSearchService()
	ss = dao.SponsorService()

	if conf.CfgIf("Notify") {
		notifyGateway = notify.New(conf.NotifySetting.Gateway, conf.NotifySetting.Secret)
	}
}
