package service

import (
	"gramhaat-backend/internal/model"
	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/errcode"
)

func GetAgriFieldList(req *ItemFilterReq, page search.PageRequest) ([]*model.AgriFieldFormatted, *search.PageResult, *errcode.Error) {
	criteria := req.toCriteria()
	if xerr := validateLocationChain(criteria); xerr != nil {
		return nil, nil, xerr
	}

	fields, res, err := ds.DiscoverAgriFields(criteria, page)
	if err != nil {
		return nil, nil, searchError(err, errcode.GetAgriFieldsFailed)
	}
	return fields, res, nil
}

func GetAgriFieldListNearby(req *ItemNearbyReq, page search.PageRequest) ([]*model.AgriFieldFormatted, *search.PageResult, *errcode.Error) {
	if xerr := checkRadius(req.RadiusKm); xerr != nil {
		return nil, nil, xerr
	}
	criteria := req.toNearbyCriteria()
	if xerr := validateLocationChain(&criteria.FilterCriteria); xerr != nil {
		return nil, nil, xerr
	}

	fields, res, err := ds.DiscoverAgriFieldsNearby(criteria, page)
	if err != nil {
		return nil, nil, searchError(err, errcode.GetAgriFieldsFailed)
	}
	return fields, res, nil
}
