package dto

import (
	"strings"

	"github.com/handiism/spoolid/internal/model"
)

// ReadmeRow is one filament row of the Bambu-Lab-RFID-Library README,
// together with the "####" material header it was listed under.
type ReadmeRow struct {
	Material     string
	Color        string
	FilamentCode string
	VariantID    string
}

// ToRecord converts the row to a model.Record.
//
// The README does not list family codes, so MaterialID is taken from the
// caller (usually a prior snapshot) and may be empty.
func (r *ReadmeRow) ToRecord(materialID string) model.Record {
	return model.Record{
		MaterialID:   materialID,
		VariantID:    strings.TrimSpace(r.VariantID),
		FilamentCode: r.FilamentCode,
		Name:         strings.TrimSpace(r.Material),
		Color:        strings.TrimSpace(r.Color),
	}
}
