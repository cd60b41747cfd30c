package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/handiism/spoolid/internal/model"
)

func TestLookupByFilamentCode(t *testing.T) {
	cat := Default()

	tests := []struct {
		code string
		want model.Record
	}{
		{
			code: "10101",
			want: model.Record{MaterialID: "GFA00", VariantID: "A00-K0", FilamentCode: "10101", Name: "PLA Basic", Color: "Black"},
		},
		{
			code: "40601",
			want: model.Record{MaterialID: "GFB00", VariantID: "B00-B4", FilamentCode: "40601", Name: "ABS", Color: "Azure"},
		},
		{
			code: "13103",
			want: model.Record{MaterialID: "", VariantID: "A07-D4", FilamentCode: "13103", Name: "PLA Marble", Color: "White Marble"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := cat.LookupByFilamentCode(tt.code)
			if err != nil {
				t.Fatalf("LookupByFilamentCode(%q) error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("LookupByFilamentCode(%q) = %+v, want %+v", tt.code, got, tt.want)
			}
		})
	}
}

func TestLookupByFilamentCode_NotFound(t *testing.T) {
	cat := Default()

	for _, code := range []string{"99999", "", "1010", "101010", " 10101", "10101 "} {
		t.Run(code, func(t *testing.T) {
			_, err := cat.LookupByFilamentCode(code)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("LookupByFilamentCode(%q) error = %v, want ErrNotFound", code, err)
			}
		})
	}
}

func TestLookupByMaterialAndVariant(t *testing.T) {
	cat := Default()

	got, err := cat.LookupByMaterialAndVariant("GFH02", "G02-B0")
	if err != nil {
		t.Fatalf("LookupByMaterialAndVariant error: %v", err)
	}
	if got.FilamentCode != "33600" || got.Name != "PETG HF" || got.Color != "Blue" {
		t.Errorf("LookupByMaterialAndVariant = %+v, want 33600 PETG HF Blue", got)
	}

	if _, err := cat.LookupByMaterialAndVariant("GFH02", "G02-Z9"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown variant: error = %v, want ErrNotFound", err)
	}
	if _, err := cat.LookupByMaterialAndVariant("", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty pair: error = %v, want ErrNotFound", err)
	}
	if _, err := cat.LookupByMaterialAndVariant("GFA00", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty variant: error = %v, want ErrNotFound", err)
	}
}

func TestLookupByMaterialAndVariant_BlankMaterialID(t *testing.T) {
	cat := New([]model.Record{
		{MaterialID: "", VariantID: "A00-B9", FilamentCode: "10601", Name: "PLA Basic", Color: "Blue"},
	})

	got, err := cat.LookupByMaterialAndVariant("", "A00-B9")
	if err != nil {
		t.Fatalf("blank material id with a variant should still match: %v", err)
	}
	if got.FilamentCode != "10601" {
		t.Errorf("got %+v, want 10601", got)
	}
}

// Generated records may lack a material id, and the ones listed here also
// lack a variant. They are reachable only by filament code; a refreshed
// snapshot that adds or removes blank variants must update this list.
func TestEveryGeneratedRecordShape(t *testing.T) {
	blankVariant := map[string]bool{
		// PC Transparent
		"60102": true,
		// PLA Silk+
		"13604": true, "13205": true, "13404": true, "13405": true, "13507": true,
		"13206": true, "13702": true, "13108": true, "13109": true, "13110": true,
		// TPU 95A HF
		"51100": true, "51101": true,
	}

	generated, err := DecodeGenerated(generatedJSON)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, rec := range generated {
		if !model.IsFilamentCode(rec.FilamentCode) {
			t.Errorf("generated record %+v has a malformed code", rec)
		}
		if rec.Name == "" || rec.Color == "" {
			t.Errorf("generated record %s has no name or color", rec.FilamentCode)
		}
		if rec.VariantID == "" {
			got = append(got, rec.FilamentCode)
		}
	}

	if len(got) != len(blankVariant) {
		t.Errorf("%d generated records have a blank variant, want %d: %v", len(got), len(blankVariant), got)
	}
	for _, code := range got {
		if !blankVariant[code] {
			t.Errorf("generated record %s unexpectedly has a blank variant", code)
		}
	}

	// However many such rows exist, a blank query reaches none of them.
	for _, q := range [][2]string{{"", ""}, {"GFA00", ""}} {
		if rec, err := Default().LookupByMaterialAndVariant(q[0], q[1]); !errors.Is(err, ErrNotFound) {
			t.Errorf("LookupByMaterialAndVariant(%q, %q) = %+v, %v; want ErrNotFound", q[0], q[1], rec, err)
		}
	}
}

func TestEveryRecordIsFoundByItsCode(t *testing.T) {
	cat := Default()

	for i, rec := range cat.All() {
		got, err := cat.LookupByFilamentCode(rec.FilamentCode)
		if err != nil {
			t.Errorf("record %d (%s): %v", i, rec.FilamentCode, err)
			continue
		}
		if got.FilamentCode != rec.FilamentCode {
			t.Errorf("record %d: lookup returned code %q, want %q", i, got.FilamentCode, rec.FilamentCode)
		}
	}
}

func TestEveryFilamentCodeIsFiveDigits(t *testing.T) {
	for i, rec := range Default().All() {
		if !model.IsFilamentCode(rec.FilamentCode) {
			t.Errorf("record %d has malformed filament code %q", i, rec.FilamentCode)
		}
	}
}

func TestFirstDeclaredWins(t *testing.T) {
	first := model.Record{MaterialID: "GFA00", VariantID: "A00-K0", FilamentCode: "10101", Name: "PLA Basic", Color: "Black"}
	second := model.Record{MaterialID: "", VariantID: "A00-K9", FilamentCode: "10101", Name: "PLA Basic", Color: "Charcoal"}

	cat := New([]model.Record{first}, []model.Record{second})

	got, err := cat.LookupByFilamentCode("10101")
	if err != nil {
		t.Fatalf("LookupByFilamentCode error: %v", err)
	}
	if got != first {
		t.Errorf("got %+v, want first declaration %+v", got, first)
	}
	if cat.Count() != 2 {
		t.Errorf("Count() = %d, want 2 (duplicates are kept)", cat.Count())
	}

	dupPair := New([]model.Record{first, {MaterialID: "GFA00", VariantID: "A00-K0", FilamentCode: "10199", Name: "PLA Basic", Color: "Other"}})
	got, err = dupPair.LookupByMaterialAndVariant("GFA00", "A00-K0")
	if err != nil {
		t.Fatalf("LookupByMaterialAndVariant error: %v", err)
	}
	if got != first {
		t.Errorf("pair lookup got %+v, want first declaration %+v", got, first)
	}
}

func TestCuratedWinsOverGenerated(t *testing.T) {
	generated, err := DecodeGenerated(generatedJSON)
	if err != nil {
		t.Fatalf("DecodeGenerated: %v", err)
	}

	// The generated snapshot repeats 10101 without a material id.
	var dup bool
	for _, rec := range generated {
		if rec.FilamentCode == "10101" {
			dup = true
			if rec.MaterialID != "" {
				t.Fatalf("generated 10101 has material id %q, expected blank", rec.MaterialID)
			}
		}
	}
	if !dup {
		t.Fatal("generated snapshot no longer repeats 10101")
	}

	got, err := Default().LookupByFilamentCode("10101")
	if err != nil {
		t.Fatalf("LookupByFilamentCode error: %v", err)
	}
	if got.MaterialID != "GFA00" {
		t.Errorf("MaterialID = %q, want curated %q", got.MaterialID, "GFA00")
	}

	// 10601 is A09-B4 in the curated table and a different variant in the snapshot.
	got, err = Default().LookupByFilamentCode("10601")
	if err != nil {
		t.Fatalf("LookupByFilamentCode error: %v", err)
	}
	if got.VariantID != "A09-B4" {
		t.Errorf("VariantID = %q, want curated %q", got.VariantID, "A09-B4")
	}
}

func TestCount(t *testing.T) {
	generated, err := DecodeGenerated(generatedJSON)
	if err != nil {
		t.Fatalf("DecodeGenerated: %v", err)
	}

	want := len(curated) + len(generated)
	if got := Default().Count(); got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}
	if len(curated) != 70 {
		t.Errorf("len(curated) = %d, want 70", len(curated))
	}
}

func TestRecordAt(t *testing.T) {
	cat := Default()

	first, err := cat.RecordAt(0)
	if err != nil {
		t.Fatalf("RecordAt(0) error: %v", err)
	}
	if first.FilamentCode != "10100" || first.Color != "Jade White" {
		t.Errorf("RecordAt(0) = %+v, want PLA Basic Jade White 10100", first)
	}

	lastCurated, err := cat.RecordAt(len(curated) - 1)
	if err != nil {
		t.Fatalf("RecordAt(last curated) error: %v", err)
	}
	if lastCurated != curated[len(curated)-1] {
		t.Errorf("RecordAt(%d) = %+v, want %+v", len(curated)-1, lastCurated, curated[len(curated)-1])
	}

	i := 0
	for idx, rec := range cat.All() {
		got, err := cat.RecordAt(idx)
		if err != nil || got != rec {
			t.Errorf("RecordAt(%d) = %+v, %v; want %+v", idx, got, err, rec)
		}
		i++
	}
	if i != cat.Count() {
		t.Errorf("All() yielded %d records, Count() = %d", i, cat.Count())
	}

	for _, idx := range []int{-1, cat.Count(), cat.Count() + 10} {
		if _, err := cat.RecordAt(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RecordAt(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestAll_Restartable(t *testing.T) {
	cat := New([]model.Record{{FilamentCode: "00001"}, {FilamentCode: "00002"}, {FilamentCode: "00003"}})

	var first []string
	for _, rec := range cat.All() {
		first = append(first, rec.FilamentCode)
		if len(first) == 2 {
			break
		}
	}
	if len(first) != 2 {
		t.Fatalf("early break yielded %d records, want 2", len(first))
	}

	var second []string
	for _, rec := range cat.All() {
		second = append(second, rec.FilamentCode)
	}
	if len(second) != 3 || second[0] != "00001" || second[2] != "00003" {
		t.Errorf("second scan = %v, want [00001 00002 00003]", second)
	}
}

func TestNew_CopiesSources(t *testing.T) {
	src := []model.Record{{FilamentCode: "12345", Name: "PLA Basic", Color: "Red"}}
	cat := New(src)
	src[0].Color = "Blue"

	got, err := cat.RecordAt(0)
	if err != nil {
		t.Fatalf("RecordAt(0) error: %v", err)
	}
	if got.Color != "Red" {
		t.Errorf("catalog saw caller mutation: Color = %q", got.Color)
	}
}

func TestFamilies(t *testing.T) {
	cat := Default()

	families := cat.Families()
	if len(families) == 0 || families[0] != "PLA Basic" {
		t.Fatalf("Families() = %v, want PLA Basic first", families)
	}

	seen := make(map[string]bool)
	for _, f := range families {
		if seen[f] {
			t.Errorf("Families() repeats %q", f)
		}
		seen[f] = true
	}

	lite := cat.Family("PLA Lite")
	if len(lite) != 8 {
		t.Errorf("Family(PLA Lite) has %d records, want 8", len(lite))
	}
	if len(lite) > 0 && lite[0].FilamentCode != "16100" {
		t.Errorf("Family(PLA Lite)[0] = %s, want 16100", lite[0].FilamentCode)
	}
	if got := cat.Family("Nylon Unicorn"); len(got) != 0 {
		t.Errorf("Family(unknown) = %v, want empty", got)
	}
}

func TestConcurrentReads(t *testing.T) {
	cat := Default()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := cat.LookupByFilamentCode("33600"); err != nil {
					t.Errorf("concurrent lookup: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "materials.json")
	data := `[
  {"material": "PLA Galaxy", "color": "Purple", "filamentCode": "13700", "variantId": "", "materialId": ""},
  {"material": "ABS", "color": "Not Azure", "filamentCode": "40601", "variantId": "B00-B4", "materialId": "GFB00"}
]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cat.Count() != len(curated)+2 {
		t.Errorf("Count() = %d, want %d", cat.Count(), len(curated)+2)
	}

	rec, err := cat.LookupByFilamentCode("13700")
	if err != nil || rec.Name != "PLA Galaxy" {
		t.Errorf("LookupByFilamentCode(13700) = %+v, %v", rec, err)
	}

	rec, err = cat.LookupByFilamentCode("40601")
	if err != nil || rec.Color != "Azure" {
		t.Errorf("curated 40601 should win, got %+v, %v", rec, err)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed file")
	}
}
