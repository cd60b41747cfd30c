package rfidlib

import (
	"sort"

	"github.com/handiism/spoolid/internal/model"
	"github.com/handiism/spoolid/internal/rfidlib/dto"
)

// BuildEntries turns README rows into generated catalog records.
//
// Rows are keyed by filament code and the last row listing a code wins, so a
// README that lists a color twice resolves to its later entry. Callers that
// combine several sources pass the authoritative one last.
// For every code, a non-empty VariantID or MaterialID from the prior
// snapshot replaces what the README says, so ids that were verified once
// keep working after a refresh.
//
// The result is sorted by (Name, Color) so regenerated snapshots diff
// cleanly.
//
// Example:
//
//	prior, _ := catalog.DecodeGenerated(oldJSON)
//	records := BuildEntries(rows, prior)
func BuildEntries(rows []dto.ReadmeRow, prior []model.Record) []model.Record {
	priorByCode := make(map[string]model.Record, len(prior))
	for _, rec := range prior {
		if _, ok := priorByCode[rec.FilamentCode]; !ok {
			priorByCode[rec.FilamentCode] = rec
		}
	}

	index := make(map[string]int, len(rows))
	records := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		prev := priorByCode[row.FilamentCode]
		rec := row.ToRecord(prev.MaterialID)
		if prev.VariantID != "" {
			rec.VariantID = prev.VariantID
		}

		if i, dup := index[row.FilamentCode]; dup {
			records[i] = rec
			continue
		}
		index[row.FilamentCode] = len(records)
		records = append(records, rec)
	}

	SortRecords(records)
	return records
}

// SortRecords sorts records by (Name, Color) in place. The sort is stable,
// so equal keys keep their relative order.
func SortRecords(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}
		return records[i].Color < records[j].Color
	})
}
