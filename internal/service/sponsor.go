package service

import (
	"gramhaat-backend/internal/model"
	"gramhaat-backend/pkg/errcode"
	"github.com/sirupsen/logrus"
)

func NextSponsor(slot string) (*model.SponsorFormatted, *errcode.Error) {
	sponsor, err := ss.NextSponsor(slot)
	if err != nil {
		logrus.Errorf("ss.NextSponsor err: %v", err)
		return nil, errcode.GetSponsorFailed
	}
	if sponsor == nil {
		return nil, errcode.NoActiveSponsor
	}
	return sponsor, nil
}
