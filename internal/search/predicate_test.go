package search

import (
	"errors"
	"reflect"
	"testing"
)

func testDescriptor() *Descriptor {
	return &Descriptor{
		Name:              "post",
		Table:             "post",
		CategoryColumn:    "post.category_id",
		SubCategoryColumn: "post.sub_category_id",
		DistrictColumn:    "post.district_id",
		TalukaColumn:      "post.taluka_id",
		VillageColumn:     "post.village_id",
		RangeColumn:       "post.price",
		FeaturedColumn:    "post.is_featured",
		TextColumns:       []string{"post.title", "post.description"},
		BaseClauses: []Clause{
			{Expr: "post.is_del = ?", Args: []interface{}{0}},
			{Expr: "post.status = ?", Args: []interface{}{1}},
		},
		SortColumns: map[SortKey]string{
			SortNewest:    "post.created_on DESC",
			SortPopular:   "post.view_count DESC, post.created_on DESC",
			SortPriceAsc:  "post.price ASC",
			SortPriceDesc: "post.price DESC",
		},
		DefaultSort:     "post.created_on DESC",
		LatitudeColumn:  "post.latitude",
		LongitudeColumn: "post.longitude",
	}
}

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func TestComposeDeterminism(t *testing.T) {
	d := testDescriptor()
	f := &FilterCriteria{
		CategoryID:   i64(3),
		DistrictID:   i64(5),
		TalukaID:     i64(21),
		SearchTerm:   "tractor",
		MinValue:     f64(100),
		MaxValue:     f64(5000),
		FeaturedOnly: true,
		SortBy:       SortPriceAsc,
	}

	first, err := Compose(d, f)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	second, err := Compose(d, f)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two compositions of the same criteria differ:\n%+v\n%+v", first, second)
	}
}

func TestComposeSkipsAbsentFacets(t *testing.T) {
	d := testDescriptor()
	p, err := Compose(d, &FilterCriteria{})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got, want := len(p.Clauses), len(d.BaseClauses); got != want {
		t.Errorf("empty criteria produced %d clauses, want only the %d base clauses: %+v", got, want, p.Clauses)
	}
	if p.Order != d.DefaultSort {
		t.Errorf("order = %q, want default %q", p.Order, d.DefaultSort)
	}
}

func TestComposeFacetClauses(t *testing.T) {
	d := testDescriptor()
	p, err := Compose(d, &FilterCriteria{
		CategoryID: i64(7),
		DistrictID: i64(2),
		MinValue:   f64(50),
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	want := []Clause{
		{Expr: "post.is_del = ?", Args: []interface{}{0}},
		{Expr: "post.status = ?", Args: []interface{}{1}},
		{Expr: "post.category_id = ?", Args: []interface{}{int64(7)}},
		{Expr: "post.district_id = ?", Args: []interface{}{int64(2)}},
		{Expr: "post.price >= ?", Args: []interface{}{50.0}},
	}
	if !reflect.DeepEqual(p.Clauses, want) {
		t.Errorf("clauses:\n got %+v\nwant %+v", p.Clauses, want)
	}
}

func TestComposeTextClause(t *testing.T) {
	p, err := Compose(testDescriptor(), &FilterCriteria{SearchTerm: "Mini Tractor"})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	last := p.Clauses[len(p.Clauses)-1]
	wantExpr := "(LOWER(post.title) LIKE ? OR LOWER(post.description) LIKE ?)"
	if last.Expr != wantExpr {
		t.Errorf("text clause = %q, want %q", last.Expr, wantExpr)
	}
	wantArgs := []interface{}{"%mini tractor%", "%mini tractor%"}
	if !reflect.DeepEqual([]interface{}(last.Args), wantArgs) {
		t.Errorf("text args = %v, want %v", last.Args, wantArgs)
	}
}

func TestComposeRejectsInvertedRange(t *testing.T) {
	_, err := Compose(testDescriptor(), &FilterCriteria{
		MinValue: f64(500),
		MaxValue: f64(100),
	})
	var rangeErr *InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("err = %v, want InvalidRangeError", err)
	}
	if rangeErr.Min != 500 || rangeErr.Max != 100 {
		t.Errorf("range error carries %v..%v, want 500..100", rangeErr.Min, rangeErr.Max)
	}
}

func TestComposeSortAllowList(t *testing.T) {
	d := testDescriptor()
	for _, tc := range []struct {
		key  SortKey
		want string
	}{
		{SortNewest, "post.created_on DESC"},
		{SortPopular, "post.view_count DESC, post.created_on DESC"},
		{SortPriceAsc, "post.price ASC"},
		{SortPriceDesc, "post.price DESC"},
		{SortDistance, d.DefaultSort},
		{SortKey("DROP TABLE post"), d.DefaultSort},
		{SortKey(""), d.DefaultSort},
	} {
		p, err := Compose(d, &FilterCriteria{SortBy: tc.key})
		if err != nil {
			t.Fatalf("compose %q: %v", tc.key, err)
		}
		if p.Order != tc.want {
			t.Errorf("sort %q resolved to %q, want %q", tc.key, p.Order, tc.want)
		}
	}
}

func TestComposeRangelessDescriptor(t *testing.T) {
	d := testDescriptor()
	d.RangeColumn = ""

	// the range check still applies even when the type has no range column
	if _, err := Compose(d, &FilterCriteria{MinValue: f64(9), MaxValue: f64(1)}); err == nil {
		t.Error("inverted range accepted by rangeless descriptor")
	}

	p, err := Compose(d, &FilterCriteria{MinValue: f64(1), MaxValue: f64(9)})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got, want := len(p.Clauses), len(d.BaseClauses); got != want {
		t.Errorf("rangeless descriptor emitted %d clauses, want %d", got, want)
	}
}
