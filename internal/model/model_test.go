package model

import (
	"reflect"
	"testing"
)

func TestPostRowFormatParsesTags(t *testing.T) {
	row := &PostRow{
		Post: Post{
			Model: &Model{ID: 11, CreatedOn: 1700000000},
			Title: "Mini Tractor Parts",
			Tags:  `["tractor","spares"]`,
		},
		CategoryName: "Farm Equipment",
		DistrictName: "Pune",
	}

	got := row.Format()
	if got.ID != 11 || got.Title != "Mini Tractor Parts" || got.CategoryName != "Farm Equipment" {
		t.Errorf("formatted = %+v", got)
	}
	if !reflect.DeepEqual(got.Tags, []string{"tractor", "spares"}) {
		t.Errorf("tags = %v", got.Tags)
	}
}

func TestFormatDegradesOnBadSerializedFields(t *testing.T) {
	post := &PostRow{Post: Post{Model: &Model{ID: 1}, Tags: `{not json`}}
	if got := post.Format().Tags; len(got) != 0 {
		t.Errorf("unparsable tags = %v, want empty", got)
	}

	card := &LocalCardRow{LocalCard: LocalCard{Model: &Model{ID: 2}, Services: "plumbing, wiring"}}
	if got := card.Format().Services; len(got) != 0 {
		t.Errorf("unparsable services = %v, want empty", got)
	}

	empty := &LocalCardRow{LocalCard: LocalCard{Model: &Model{ID: 3}}}
	if got := empty.Format().Services; got == nil || len(got) != 0 {
		t.Errorf("empty services = %#v, want empty non-nil slice", got)
	}
}
