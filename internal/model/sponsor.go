package model

import (
	"gorm.io/gorm"
)

type Sponsor struct {
	*Model
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	TargetURL string `json:"target_url"`
	Slot      string `json:"slot"`
	StartOn   int64  `json:"start_on"`
	EndOn     int64  `json:"end_on"`
	IsActive  int    `json:"is_active"`
}

type SponsorFormatted struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	TargetURL    string `json:"target_url"`
	Slot         string `json:"slot"`
	ImpressionID string `json:"impression_id"`
}

func (s *Sponsor) Table() string {
	return "sponsor"
}

func (s *Sponsor) Format() *SponsorFormatted {
	return &SponsorFormatted{
		ID:        s.ID,
		Title:     s.Title,
		ImageURL:  s.ImageURL,
		TargetURL: s.TargetURL,
		Slot:      s.Slot,
	}
}

// ListActive sponsors of a slot whose display window covers now, in a
// stable id order so a shared rotation cursor maps onto the same sequence
// for every instance.
func (s *Sponsor) ListActive(db *gorm.DB, slot string, now int64) ([]*Sponsor, error) {
	var sponsors []*Sponsor
	err := db.Table(s.Table()).
		Where("slot = ? AND is_active = ? AND is_del = ?", slot, 1, 0).
		Where("start_on <= ? AND end_on >= ?", now, now).
		Order("id ASC").
		Find(&sponsors).Error
	return sponsors, err
}
