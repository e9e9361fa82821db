// Package search implements the faceted discovery engine shared by the
// post, agrifield and localcard surfaces: filter criteria composed into
// parameterized predicates, a count/fetch paginated executor, a
// great-circle radius filter and the location chain validator.
package search

// SortKey names one entry of the sort allow-list.
type SortKey string

const (
	SortNewest    SortKey = "NEWEST"
	SortPopular   SortKey = "POPULAR"
	SortPriceAsc  SortKey = "PRICE_ASC"
	SortPriceDesc SortKey = "PRICE_DESC"
	SortDistance  SortKey = "DISTANCE"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinate) Check() error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// FilterCriteria is one discovery request. Unset facets contribute no
// predicate clause at all, they are never passed down as wildcards.
type FilterCriteria struct {
	CategoryID    *int64
	SubCategoryID *int64
	DistrictID    *int64
	TalukaID      *int64
	VillageID     *int64
	SearchTerm    string
	MinValue      *float64
	MaxValue      *float64
	FeaturedOnly  bool
	SortBy        SortKey
}

// NearbyFilterCriteria adds a mandatory origin and radius. A radius is
// meaningless without both coordinates, so they are plain values here and
// checked together.
type NearbyFilterCriteria struct {
	FilterCriteria
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

func (c *NearbyFilterCriteria) Origin() Coordinate {
	return Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
}

func (c *NearbyFilterCriteria) Check() error {
	if c.RadiusKm <= 0 {
		return ErrInvalidCoordinate
	}
	return c.Origin().Check()
}
