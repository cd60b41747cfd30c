package display

import (
	"testing"

	"github.com/handiism/spoolid/internal/catalog"
	"github.com/handiism/spoolid/internal/model"
)

func TestResolve(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name      string
		query     Query
		fallback  string
		wantFound bool
		wantLine1 string
		wantLine2 string
	}{
		{"filament code", CodeQuery("10101"), "", true, "PLA Basic", "Black"},
		{"material and variant", PairQuery("GFH02", "G02-B0"), "", true, "PETG HF", "Blue"},
		{"code wins over pair", Query{FilamentCode: "40601", MaterialID: "GFH02", VariantID: "G02-B0"}, "", true, "ABS", "Azure"},
		{"unknown code", CodeQuery("99999"), "", false, DefaultFallback, "99999"},
		{"unknown pair", PairQuery("GFZ99", "Z99-Z9"), "", false, DefaultFallback, "GFZ99,Z99-Z9"},
		{"custom fallback", CodeQuery("00000"), "???", false, "???", "00000"},
		{"empty query", Query{}, "", false, DefaultFallback, ","},
		{"empty variant", PairQuery("GFA00", ""), "", false, DefaultFallback, "GFA00,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(cat, tt.query, tt.fallback)
			if got.Found != tt.wantFound {
				t.Errorf("Found = %v, want %v", got.Found, tt.wantFound)
			}
			if got.Line1 != tt.wantLine1 {
				t.Errorf("Line1 = %q, want %q", got.Line1, tt.wantLine1)
			}
			if got.Line2 != tt.wantLine2 {
				t.Errorf("Line2 = %q, want %q", got.Line2, tt.wantLine2)
			}
		})
	}
}

func TestResolve_MissKeepsZeroRecord(t *testing.T) {
	got := Resolve(catalog.New(), CodeQuery("10101"), "")
	if got.Found || got.Record != (model.Record{}) {
		t.Errorf("empty catalog resolved %+v", got)
	}
}
