// Package display turns catalog lookups into the two lines shown on a
// reader's screen, applying the fallback label for unknown spools.
package display

import (
	"github.com/handiism/spoolid/internal/catalog"
	"github.com/handiism/spoolid/internal/model"
)

// DefaultFallback is shown on the first line when a spool is not in the catalog.
const DefaultFallback = "Unknown Material"

// Query is what a caller decoded from a tag: either a filament code or a
// material/variant pair. FilamentCode takes precedence when both are set.
type Query struct {
	FilamentCode string
	MaterialID   string
	VariantID    string
}

// CodeQuery returns a Query for a filament code.
func CodeQuery(code string) Query {
	return Query{FilamentCode: code}
}

// PairQuery returns a Query for a material/variant pair.
func PairQuery(materialID, variantID string) Query {
	return Query{MaterialID: materialID, VariantID: variantID}
}

// String renders the query as the user typed or the reader sent it.
func (q Query) String() string {
	if q.FilamentCode != "" {
		return q.FilamentCode
	}
	return q.MaterialID + "," + q.VariantID
}

// Result is a resolved query ready for display.
type Result struct {
	Query  Query
	Record model.Record
	Found  bool

	// Line1 is the material name, or the fallback label on a miss.
	Line1 string

	// Line2 is the color, or the raw query on a miss.
	Line2 string
}

// Resolve looks q up in cat and prepares the display lines.
//
// A miss is not an error: the result carries Found == false and the fallback
// label. An empty fallback uses DefaultFallback.
func Resolve(cat *catalog.Catalog, q Query, fallback string) Result {
	if fallback == "" {
		fallback = DefaultFallback
	}

	var (
		rec model.Record
		err error
	)
	if q.FilamentCode != "" {
		rec, err = cat.LookupByFilamentCode(q.FilamentCode)
	} else {
		rec, err = cat.LookupByMaterialAndVariant(q.MaterialID, q.VariantID)
	}

	if err != nil {
		return Result{Query: q, Line1: fallback, Line2: q.String()}
	}

	return Result{
		Query:  q,
		Record: rec,
		Found:  true,
		Line1:  rec.Name,
		Line2:  rec.Color,
	}
}
