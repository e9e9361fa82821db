package search

import (
	"math"
	"testing"
)

type candidate struct {
	coord     *Coordinate
	createdOn int64
}

func radiusOver(origin Coordinate, radiusKm float64, cands []candidate) []RadiusHit {
	return RadiusFilter(origin, radiusKm, len(cands),
		func(i int) (Coordinate, bool) {
			if cands[i].coord == nil {
				return Coordinate{}, false
			}
			return *cands[i].coord, true
		},
		func(i, j int) bool { return cands[i].createdOn > cands[j].createdOn },
	)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Pune to Mumbai, roughly 120 km great-circle.
	pune := Coordinate{Latitude: 18.5204, Longitude: 73.8567}
	mumbai := Coordinate{Latitude: 19.0760, Longitude: 72.8777}

	d := HaversineKm(pune, mumbai)
	if d < 115 || d > 125 {
		t.Errorf("Pune-Mumbai distance = %.2f km, want ~120 km", d)
	}
	if got := HaversineKm(pune, pune); got > 1e-9 {
		t.Errorf("zero distance = %v, want 0", got)
	}
	if math.Abs(HaversineKm(pune, mumbai)-HaversineKm(mumbai, pune)) > 1e-9 {
		t.Error("distance is not symmetric")
	}
}

func TestRadiusFilterInvariant(t *testing.T) {
	origin := Coordinate{Latitude: 18.52, Longitude: 73.85}
	cands := []candidate{
		{coord: &Coordinate{Latitude: 18.53, Longitude: 73.86}, createdOn: 10}, // ~1.5 km
		{coord: &Coordinate{Latitude: 19.07, Longitude: 72.87}, createdOn: 20}, // ~120 km
		{coord: &Coordinate{Latitude: 18.60, Longitude: 73.90}, createdOn: 30}, // ~10 km
		{coord: nil, createdOn: 40},
	}

	hits := radiusOver(origin, 50, cands)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2: %+v", len(hits), hits)
	}
	for _, h := range hits {
		if h.DistanceKm > 50 {
			t.Errorf("hit %d at %.2f km exceeds the 50 km radius", h.Index, h.DistanceKm)
		}
		if cands[h.Index].coord == nil {
			t.Errorf("candidate %d without coordinate classified as within radius", h.Index)
		}
	}
	if hits[0].DistanceKm > hits[1].DistanceKm {
		t.Errorf("hits not ordered by distance: %+v", hits)
	}
}

func TestRadiusFilterTieBreakByRecency(t *testing.T) {
	origin := Coordinate{Latitude: 20, Longitude: 75}
	same := Coordinate{Latitude: 20.01, Longitude: 75}
	cands := []candidate{
		{coord: &same, createdOn: 100},
		{coord: &same, createdOn: 300},
		{coord: &same, createdOn: 200},
	}

	hits := radiusOver(origin, 5, cands)
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3", len(hits))
	}
	want := []int{1, 2, 0} // newest first at equal distance
	for i, h := range hits {
		if h.Index != want[i] {
			t.Fatalf("tie-break order = %v, want %v", hits, want)
		}
	}
}

func TestRadiusFilterEmpty(t *testing.T) {
	origin := Coordinate{Latitude: 0, Longitude: 0} // far from everything below
	cands := []candidate{
		{coord: &Coordinate{Latitude: 18.52, Longitude: 73.85}, createdOn: 1},
	}
	if hits := radiusOver(origin, 1, cands); len(hits) != 0 {
		t.Errorf("distant origin with 1 km radius returned hits: %+v", hits)
	}
}

func TestPageHits(t *testing.T) {
	hits := make([]RadiusHit, 45)
	for i := range hits {
		hits[i] = RadiusHit{Index: i, DistanceKm: float64(i)}
	}

	pageOne, res, err := PageHits(hits, PageRequest{Page: 1, Size: 20})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(pageOne) != 20 || res.TotalRows != 45 || res.TotalPages != 3 {
		t.Errorf("page 1: len=%d total=%d pages=%d, want 20/45/3", len(pageOne), res.TotalRows, res.TotalPages)
	}

	pageThree, res, err := PageHits(hits, PageRequest{Page: 3, Size: 20})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if len(pageThree) != 5 {
		t.Errorf("page 3 len = %d, want 5", len(pageThree))
	}

	empty, res, err := PageHits(nil, PageRequest{Page: 1, Size: 20})
	if err != nil {
		t.Fatalf("empty: %v", err)
	}
	if len(empty) != 0 || res.TotalRows != 0 || res.TotalPages != 0 {
		t.Errorf("empty page envelope = %+v, want zeroes", res)
	}

	if _, _, err := PageHits(hits, PageRequest{Page: 0, Size: 20}); err != ErrInvalidPageRequest {
		t.Errorf("page 0 err = %v, want ErrInvalidPageRequest", err)
	}
}

func TestBoundingClauses(t *testing.T) {
	d := testDescriptor()
	origin := Coordinate{Latitude: 18.52, Longitude: 73.85}

	clauses := BoundingClauses(d, origin, 25)
	if len(clauses) != 2 {
		t.Fatalf("got %d clauses, want 2", len(clauses))
	}
	latLo := clauses[0].Args[0].(float64)
	latHi := clauses[0].Args[1].(float64)
	if latLo >= origin.Latitude || latHi <= origin.Latitude {
		t.Errorf("latitude box [%v, %v] does not bracket the origin", latLo, latHi)
	}

	// the box must over-approximate: a point 20 km east stays inside
	east := Coordinate{Latitude: 18.52, Longitude: 74.04}
	lonLo := clauses[1].Args[0].(float64)
	lonHi := clauses[1].Args[1].(float64)
	if east.Longitude < lonLo || east.Longitude > lonHi {
		t.Errorf("longitude box [%v, %v] cuts off a point within radius", lonLo, lonHi)
	}

	d.LatitudeColumn = ""
	if got := BoundingClauses(d, origin, 25); got != nil {
		t.Errorf("descriptor without coordinates produced bounding clauses: %+v", got)
	}
}
