package model

import (
	"gorm.io/gorm"
)

// The location hierarchy is reference data with three fixed tiers:
// District is the root, Taluka a child of District, Village a child of
// Taluka. Rows are toggled inactive rather than deleted.

type District struct {
	ID        int64  `gorm:"primary_key" json:"id"`
	Name      string `json:"name"`
	LocalName string `json:"local_name"`
	IsActive  int    `json:"is_active"`
}

type Taluka struct {
	ID         int64  `gorm:"primary_key" json:"id"`
	Name       string `json:"name"`
	LocalName  string `json:"local_name"`
	DistrictID int64  `json:"district_id"`
	IsActive   int    `json:"is_active"`
}

type Village struct {
	ID        int64  `gorm:"primary_key" json:"id"`
	Name      string `json:"name"`
	LocalName string `json:"local_name"`
	TalukaID  int64  `json:"taluka_id"`
	IsActive  int    `json:"is_active"`
}

func (d *District) Table() string {
	return "district"
}

func (t *Taluka) Table() string {
	return "taluka"
}

func (v *Village) Table() string {
	return "village"
}

func (d *District) Get(db *gorm.DB) (*District, error) {
	var district District
	err := db.Table(d.Table()).Where("id = ?", d.ID).First(&district).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &district, nil
}

func (d *District) List(db *gorm.DB) ([]*District, error) {
	var districts []*District
	err := db.Table(d.Table()).Where("is_active = ?", 1).Order("name ASC").Find(&districts).Error
	return districts, err
}

func (t *Taluka) Get(db *gorm.DB) (*Taluka, error) {
	var taluka Taluka
	err := db.Table(t.Table()).Where("id = ?", t.ID).First(&taluka).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &taluka, nil
}

func (t *Taluka) ListByDistrict(db *gorm.DB, districtID int64) ([]*Taluka, error) {
	var talukas []*Taluka
	err := db.Table(t.Table()).Where("district_id = ? AND is_active = ?", districtID, 1).Order("name ASC").Find(&talukas).Error
	return talukas, err
}

func (v *Village) Get(db *gorm.DB) (*Village, error) {
	var village Village
	err := db.Table(v.Table()).Where("id = ?", v.ID).First(&village).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &village, nil
}

func (v *Village) ListByTaluka(db *gorm.DB, talukaID int64) ([]*Village, error) {
	var villages []*Village
	err := db.Table(v.Table()).Where("taluka_id = ? AND is_active = ?", talukaID, 1).Order("name ASC").Find(&villages).Error
	return villages, err
}
