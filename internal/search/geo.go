package search

import (
	"math"
	"sort"
)

// Earth mean radius, kilometres.
const earthRadiusKm = 6371.0

// HaversineKm great-circle distance between two coordinates.
func HaversineKm(a, b Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

type RadiusHit struct {
	Index      int
	DistanceKm float64
}

// RadiusFilter classifies n candidates against origin/radiusKm. coordAt
// reports the candidate's coordinate; candidates without one are excluded
// outright since they cannot be classified. Hits come back ordered by
// distance ascending, equal distances broken by newerAt (recency first).
func RadiusFilter(origin Coordinate, radiusKm float64, n int, coordAt func(int) (Coordinate, bool), newerAt func(i, j int) bool) []RadiusHit {
	hits := make([]RadiusHit, 0, n)
	for i := 0; i < n; i++ {
		coord, ok := coordAt(i)
		if !ok {
			continue
		}
		d := HaversineKm(origin, coord)
		if d > radiusKm {
			continue
		}
		hits = append(hits, RadiusHit{Index: i, DistanceKm: d})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].DistanceKm != hits[j].DistanceKm {
			return hits[i].DistanceKm < hits[j].DistanceKm
		}
		return newerAt(hits[i].Index, hits[j].Index)
	})
	return hits
}

// PageHits windows an already radius-filtered hit list in memory, with the
// same envelope semantics as Execute.
func PageHits(hits []RadiusHit, page PageRequest) ([]RadiusHit, *PageResult, error) {
	offset, limit, err := page.Window()
	if err != nil {
		return nil, nil, err
	}
	total := int64(len(hits))
	res := &PageResult{
		Page:       page.Page,
		PageSize:   page.Size,
		TotalRows:  total,
		TotalPages: TotalPages(total, page.Size),
	}
	if offset >= len(hits) {
		return []RadiusHit{}, res, nil
	}
	end := offset + limit
	if end > len(hits) {
		end = len(hits)
	}
	return hits[offset:end], res, nil
}

// BoundingClauses augments a composed predicate with a latitude/longitude
// box around the origin so the radius test runs against a candidate set the
// store has already narrowed. The box over-approximates the circle; the
// haversine check stays authoritative.
func BoundingClauses(d *Descriptor, origin Coordinate, radiusKm float64) []Clause {
	if d.LatitudeColumn == "" || d.LongitudeColumn == "" {
		return nil
	}
	latDelta := radiusKm / 111.045
	lonDelta := latDelta
	if cos := math.Cos(origin.Latitude * math.Pi / 180); cos > 0.01 {
		lonDelta = latDelta / cos
	}
	return []Clause{
		{Expr: d.LatitudeColumn + " BETWEEN ? AND ?", Args: []interface{}{origin.Latitude - latDelta, origin.Latitude + latDelta}},
		{Expr: d.LongitudeColumn + " BETWEEN ? AND ?", Args: []interface{}{origin.Longitude - lonDelta, origin.Longitude + lonDelta}},
	}
}
