package catalog

import (
	"errors"
	"fmt"
	"iter"

	"github.com/handiism/spoolid/internal/model"
)

// ErrNotFound is returned when no record matches a lookup.
//
// A miss is an expected outcome: unknown spools exist and the reference
// data is never complete. Callers render a fallback label instead of
// treating it as a failure.
var ErrNotFound = errors.New("material not found")

// ErrIndexOutOfRange is returned by RecordAt for an index outside [0, Count()).
var ErrIndexOutOfRange = errors.New("record index out of range")

// Catalog is an immutable, ordered collection of material records.
//
// Records keep the order in which their sources were concatenated by New.
// Lookups return the first matching record in that order, so when the same
// filament code is declared twice the earlier declaration wins. Curated
// entries are always concatenated ahead of generated ones, which makes
// hand-verified data take precedence.
//
// A Catalog has no write path and is safe for concurrent use.
//
// Example:
//
//	cat := catalog.Default()
//
//	rec, err := cat.LookupByFilamentCode("10101")
//	if errors.Is(err, catalog.ErrNotFound) {
//	    fmt.Println("Unknown Material")
//	    return
//	}
//	fmt.Println(rec.Label()) // "PLA Basic - Black"
type Catalog struct {
	records []model.Record

	// byCode maps a filament code to the position of its first declaration.
	byCode map[string]int
}

// New builds a Catalog from the given sources, concatenated in argument order.
//
// Nothing is sorted, merged or deduplicated. Duplicate filament codes and
// empty material ids are kept as declared. The sources are copied, so
// later changes to the caller's slices do not reach the catalog.
//
// Example:
//
//	cat := New(curatedRecords, generatedRecords)
func New(sources ...[]model.Record) *Catalog {
	n := 0
	for _, src := range sources {
		n += len(src)
	}

	records := make([]model.Record, 0, n)
	for _, src := range sources {
		records = append(records, src...)
	}

	byCode := make(map[string]int, len(records))
	for i, rec := range records {
		if _, seen := byCode[rec.FilamentCode]; !seen {
			byCode[rec.FilamentCode] = i
		}
	}

	return &Catalog{records: records, byCode: byCode}
}

// LookupByFilamentCode returns the first record whose FilamentCode equals
// code byte for byte.
//
// No normalization is applied: surrounding whitespace, a wrong length or an
// empty string simply fail to match.
//
// Returns ErrNotFound if no record carries the code.
func (c *Catalog) LookupByFilamentCode(code string) (model.Record, error) {
	if i, ok := c.byCode[code]; ok {
		return c.records[i], nil
	}
	return model.Record{}, fmt.Errorf("%w: filament code %q", ErrNotFound, code)
}

// LookupByMaterialAndVariant returns the first record matching both
// materialID and variantID exactly.
//
// This is the path used when a tag exposes its material and variant codes
// rather than the filament code. Records with an empty MaterialID only match
// an empty materialID. An empty variantID never matches: generated records
// may carry no variant, and a blank query must not resolve to one of them.
//
// Returns ErrNotFound if no record matches.
func (c *Catalog) LookupByMaterialAndVariant(materialID, variantID string) (model.Record, error) {
	if variantID == "" {
		return model.Record{}, fmt.Errorf("%w: empty variant", ErrNotFound)
	}
	for _, rec := range c.All() {
		if rec.MaterialID == materialID && rec.VariantID == variantID {
			return rec, nil
		}
	}
	return model.Record{}, fmt.Errorf("%w: material %q variant %q", ErrNotFound, materialID, variantID)
}

// Count returns the number of records. It never changes for a given Catalog.
func (c *Catalog) Count() int {
	return len(c.records)
}

// RecordAt returns the record at position i in declaration order.
//
// Returns ErrIndexOutOfRange if i is negative or not less than Count().
func (c *Catalog) RecordAt(i int) (model.Record, error) {
	if i < 0 || i >= len(c.records) {
		return model.Record{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.records))
	}
	return c.records[i], nil
}

// All returns a scan over the records in declaration order, yielding each
// position with its record. The sequence is finite and can be ranged over
// any number of times.
//
// Example:
//
//	for i, rec := range cat.All() {
//	    fmt.Printf("%3d %s %s\n", i, rec.FilamentCode, rec.Label())
//	}
func (c *Catalog) All() iter.Seq2[int, model.Record] {
	return func(yield func(int, model.Record) bool) {
		for i, rec := range c.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Family returns every record whose Name equals name, in declaration order.
// An unknown family yields an empty slice.
func (c *Catalog) Family(name string) []model.Record {
	var out []model.Record
	for _, rec := range c.All() {
		if rec.Name == name {
			out = append(out, rec)
		}
	}
	return out
}

// Families returns the distinct family names in order of first appearance.
func (c *Catalog) Families() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, rec := range c.All() {
		if _, ok := seen[rec.Name]; ok {
			continue
		}
		seen[rec.Name] = struct{}{}
		names = append(names, rec.Name)
	}
	return names
}
