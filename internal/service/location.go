package service

import (
	"gramhaat-backend/internal/model"
	"gramhaat-backend/pkg/errcode"
	"github.com/sirupsen/logrus"
)

func GetDistricts() ([]*model.District, *errcode.Error) {
	districts, err := ds.Districts()
	if err != nil {
		logrus.Errorf("ds.Districts err: %v", err)
		return nil, errcode.GetLocationsFailed
	}
	return districts, nil
}

func GetTalukas(districtID int64) ([]*model.Taluka, *errcode.Error) {
	talukas, err := ds.TalukasByDistrict(districtID)
	if err != nil {
		logrus.Errorf("ds.TalukasByDistrict err: %v", err)
		return nil, errcode.GetLocationsFailed
	}
	return talukas, nil
}

func GetVillages(talukaID int64) ([]*model.Village, *errcode.Error) {
	villages, err := ds.VillagesByTaluka(talukaID)
	if err != nil {
		logrus.Errorf("ds.VillagesByTaluka err: %v", err)
		return nil, errcode.GetLocationsFailed
	}
	return villages, nil
}

func GetCategories(parentID *int64) ([]*model.Category, *errcode.Error) {
	categories, err := ds.Categories(parentID)
	if err != nil {
		logrus.Errorf("ds.Categories err: %v", err)
		return nil, errcode.GetCategoriesFailed
	}
	return categories, nil
}
