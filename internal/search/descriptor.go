package search

// Descriptor maps one content type onto the generic engine: which columns
// back each facet, which columns free text matches against, and the sort
// allow-list. Columns are fully qualified ("post.category_id") because the
// discovery queries join reference tables for projection.
type Descriptor struct {
	Name  string
	Table string

	CategoryColumn    string
	SubCategoryColumn string

	DistrictColumn string
	TalukaColumn   string
	VillageColumn  string

	// RangeColumn backs the min/max facet (price or size depending on the
	// content type); empty when the type has no range facet.
	RangeColumn string

	// FeaturedColumn backs the featured-only flag; empty when unsupported.
	FeaturedColumn string

	TextColumns []string

	// BaseClauses always apply, e.g. soft-delete and active-status checks.
	BaseClauses []Clause

	SortColumns map[SortKey]string
	DefaultSort string

	LatitudeColumn  string
	LongitudeColumn string
}

// sortFor resolves a sort key against the allow-list. Unknown keys fall
// back to the default ordering so discovery endpoints stay permissive.
// SortDistance also falls back here: distance ordering happens after the
// fetch, in the radius filter.
func (d *Descriptor) sortFor(key SortKey) string {
	if order, ok := d.SortColumns[key]; ok {
		return order
	}
	return d.DefaultSort
}
