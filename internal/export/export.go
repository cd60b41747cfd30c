package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/handiism/spoolid/internal/model"
)

// Format represents supported output formats for catalog records.
//
// Each format targets a different consumer:
//   - JSON: materials.json, read back by the catalog and the generator
//   - Snippet: C initializer rows included by the reader firmware
//   - YAML, TOML, CSV: for people and other tooling
type Format int

const (
	// FormatJSON writes the materials.json array.
	FormatJSON Format = iota

	// FormatSnippet writes one C initializer row per record.
	FormatSnippet

	// FormatYAML writes a YAML sequence of records.
	FormatYAML

	// FormatTOML writes an array of [[material]] tables.
	FormatTOML

	// FormatCSV writes a header row followed by one row per record.
	FormatCSV
)

// ParseFormat maps a format name ("json", "snippet", "yaml", "toml", "csv")
// to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "snippet", "h", "c":
		return FormatSnippet, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "csv":
		return FormatCSV, nil
	}
	return 0, fmt.Errorf("unknown export format %q", name)
}

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatSnippet:
		return "snippet"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FileName returns the conventional output file name for the format.
//
// Returns:
//   - "materials.json" for FormatJSON
//   - "materials_snippet.h" for FormatSnippet
//   - "materials.yaml", "materials.toml", "materials.csv" otherwise
func (f Format) FileName() string {
	switch f {
	case FormatSnippet:
		return "materials_snippet.h"
	case FormatYAML:
		return "materials.yaml"
	case FormatTOML:
		return "materials.toml"
	case FormatCSV:
		return "materials.csv"
	default:
		return "materials.json"
	}
}

// Exporter renders records in one Format.
//
// Example:
//
//	exporter := NewExporter(FormatSnippet)
//	data, err := exporter.Export(records)
//	os.WriteFile("generated/materials_snippet.h", data, 0644)
//
//	// Result:
//	// // Generated from Bambu-Lab-RFID-Library README.
//	// // materialId/variantId reused from prior data when available; otherwise blank.
//	//     {"", "A00-K0", "10101", "PLA Basic", "Black"},
type Exporter struct {
	format Format
}

// NewExporter creates a new Exporter for format.
func NewExporter(format Format) *Exporter {
	return &Exporter{format: format}
}

// Format returns the exporter's format.
func (e *Exporter) Format() Format {
	return e.format
}

// Export renders records in declaration order.
func (e *Exporter) Export(records []model.Record) ([]byte, error) {
	switch e.format {
	case FormatSnippet:
		return e.exportSnippet(records), nil
	case FormatYAML:
		return e.exportYAML(records)
	case FormatTOML:
		return e.exportTOML(records)
	case FormatCSV:
		return e.exportCSV(records)
	default:
		return e.exportJSON(records)
	}
}

// exportJSON writes a 2-space indented array. Non-ASCII and HTML
// characters are written as-is.
func (e *Exporter) exportJSON(records []model.Record) ([]byte, error) {
	if records == nil {
		records = []model.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportSnippet writes the rows the firmware pulls into its table with
// #include, one initializer per record:
//
//	    {"<materialId>", "<variantId>", "<code>", "<material>", "<color>"},
func (e *Exporter) exportSnippet(records []model.Record) []byte {
	var sb strings.Builder

	sb.WriteString("// Generated from Bambu-Lab-RFID-Library README.\n")
	sb.WriteString("// materialId/variantId reused from prior data when available; otherwise blank.\n")

	for _, r := range records {
		sb.WriteString(fmt.Sprintf("    {\"%s\", \"%s\", \"%s\", \"%s\", \"%s\"},\n",
			escapeC(r.MaterialID),
			escapeC(r.VariantID),
			escapeC(r.FilamentCode),
			escapeC(r.Name),
			escapeC(r.Color)))
	}

	return []byte(sb.String())
}

func (e *Exporter) exportYAML(records []model.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tomlDocument wraps the records, since a TOML document must be a table.
type tomlDocument struct {
	Materials []model.Record `toml:"material"`
}

func (e *Exporter) exportTOML(records []model.Record) ([]byte, error) {
	return toml.Marshal(tomlDocument{Materials: records})
}

func (e *Exporter) exportCSV(records []model.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"materialId", "variantId", "filamentCode", "material", "color"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write([]string{r.MaterialID, r.VariantID, r.FilamentCode, r.Name, r.Color}); err != nil {
			return nil, err
		}
	}
	w.Flush()

	return buf.Bytes(), w.Error()
}

// escapeC escapes backslashes and double quotes for a C string literal.
func escapeC(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
