package search

import (
	"strings"

	"gramhaat-backend/pkg/types"
	"gorm.io/gorm"
)

// Clause is one AND-combined predicate fragment with its bound parameters.
// Values are always bound, never interpolated into Expr.
type Clause struct {
	Expr string
	Args types.AnySlice
}

// PredicateSet is the ordered clause list produced by Compose. Order
// matters: composing the same criteria twice must yield structurally equal
// sets so the count and fetch steps of the executor see the same predicate.
type PredicateSet struct {
	Clauses []Clause
	Order   string
}

func (p *PredicateSet) add(expr string, args ...interface{}) {
	p.Clauses = append(p.Clauses, Clause{Expr: expr, Args: args})
}

// And appends extra clauses, used to augment a composed predicate with the
// bounding-box narrowing of a radius search.
func (p *PredicateSet) And(clauses ...Clause) {
	p.Clauses = append(p.Clauses, clauses...)
}

func (p *PredicateSet) Apply(tx *gorm.DB) *gorm.DB {
	for _, c := range p.Clauses {
		tx = tx.Where(c.Expr, c.Args...)
	}
	return tx
}

func (p *PredicateSet) ApplyOrdered(tx *gorm.DB) *gorm.DB {
	tx = p.Apply(tx)
	if p.Order != "" {
		tx = tx.Order(p.Order)
	}
	return tx
}

// Compose builds the predicate for one criteria set. Each present facet
// contributes exactly one clause; absent facets contribute none beyond the
// descriptor's base clauses. Range checks fail here, before any query runs.
func Compose(d *Descriptor, f *FilterCriteria) (*PredicateSet, error) {
	if f.MinValue != nil && f.MaxValue != nil && *f.MinValue > *f.MaxValue {
		return nil, &InvalidRangeError{Min: *f.MinValue, Max: *f.MaxValue}
	}

	p := &PredicateSet{}
	p.And(d.BaseClauses...)

	if f.CategoryID != nil && d.CategoryColumn != "" {
		p.add(d.CategoryColumn+" = ?", *f.CategoryID)
	}
	if f.SubCategoryID != nil && d.SubCategoryColumn != "" {
		p.add(d.SubCategoryColumn+" = ?", *f.SubCategoryID)
	}
	if f.DistrictID != nil {
		p.add(d.DistrictColumn+" = ?", *f.DistrictID)
	}
	if f.TalukaID != nil {
		p.add(d.TalukaColumn+" = ?", *f.TalukaID)
	}
	if f.VillageID != nil {
		p.add(d.VillageColumn+" = ?", *f.VillageID)
	}
	if d.RangeColumn != "" {
		if f.MinValue != nil {
			p.add(d.RangeColumn+" >= ?", *f.MinValue)
		}
		if f.MaxValue != nil {
			p.add(d.RangeColumn+" <= ?", *f.MaxValue)
		}
	}
	if f.FeaturedOnly && d.FeaturedColumn != "" {
		p.add(d.FeaturedColumn+" = ?", 1)
	}
	if term := strings.TrimSpace(f.SearchTerm); term != "" && len(d.TextColumns) > 0 {
		exprs := make([]string, 0, len(d.TextColumns))
		args := make(types.AnySlice, 0, len(d.TextColumns))
		like := "%" + strings.ToLower(term) + "%"
		for _, col := range d.TextColumns {
			exprs = append(exprs, "LOWER("+col+") LIKE ?")
			args = append(args, like)
		}
		p.Clauses = append(p.Clauses, Clause{
			Expr: "(" + strings.Join(exprs, " OR ") + ")",
			Args: args,
		})
	}

	p.Order = d.sortFor(f.SortBy)
	return p, nil
}
