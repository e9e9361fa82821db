package service

import (
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/errcode"
)

func GetLocalCardList(req *ItemFilterReq, page search.PageRequest) ([]*model.LocalCardFormatted, *search.PageResult, *errcode.Error) {
	criteria := req.toCriteria()
	if xerr := validateLocationChain(criteria); xerr != nil {
		return nil, nil, xerr
	}

	cards, res, err := ds.DiscoverLocalCards(criteria, page)
	if err != nil {
		return nil, nil, searchError(err, errcode.GetLocalCardsFailed)
	}
	return cards, res, nil
}

func GetLocalCardListNearby(req *ItemNearbyReq, page search.PageRequest) ([]*model.LocalCardFormatted, *search.PageResult, *errcode.Error) {
	if xerr := checkRadius(req.RadiusKm); xerr != nil {
		return nil, nil, xerr
	}
	criteria := req.toNearbyCriteria()
	if xerr := validateLocationChain(&criteria.FilterCriteria); xerr != nil {
		return nil, nil, xerr
	}

	cards, res, err := ds.DiscoverLocalCardsNearby(criteria, page)
	if err != nil {
		return nil, nil, searchError(err, errcode.GetLocalCardsFailed)
	}
	return cards, res, nil
}
