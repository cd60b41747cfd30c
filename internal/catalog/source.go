package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/handiism/spoolid/internal/model"
)

// generatedJSON is the snapshot written by the generator (spoolid generate)
// from the Bambu-Lab-RFID-Library reference data.
//
//go:embed generated/materials.json
var generatedJSON []byte

// Default returns the process-wide catalog: the curated table followed by
// the embedded generated snapshot. It is built on first use and shared by
// every caller afterwards.
//
// Default panics if the embedded snapshot is not valid JSON, which can only
// happen if a broken file was committed.
var Default = sync.OnceValue(func() *Catalog {
	generated, err := DecodeGenerated(generatedJSON)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded generated snapshot: %v", err))
	}
	return New(curated, generated)
})

// Curated returns a copy of the hand-verified records in declaration order.
func Curated() []model.Record {
	out := make([]model.Record, len(curated))
	copy(out, curated)
	return out
}

// Load builds a catalog from the curated table followed by the generated
// records stored in the materials.json file at path.
//
// Use it when a fresher snapshot than the embedded one is available on disk.
// The file is read once; the returned catalog does not follow later changes.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read generated entries: %w", err)
	}

	generated, err := DecodeGenerated(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return New(curated, generated), nil
}

// DecodeGenerated decodes a materials.json document into records, keeping
// the document order.
func DecodeGenerated(data []byte) ([]model.Record, error) {
	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
