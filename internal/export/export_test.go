package export

import (
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/handiism/spoolid/internal/catalog"
	"github.com/handiism/spoolid/internal/model"
)

func testRecords() []model.Record {
	return []model.Record{
		{MaterialID: "GFA00", VariantID: "A00-K0", FilamentCode: "10101", Name: "PLA Basic", Color: "Black"},
		{MaterialID: "", VariantID: "", FilamentCode: "13205", Name: "PLA Silk+", Color: "Candy \"Red\""},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"snippet", FormatSnippet},
		{"h", FormatSnippet},
		{"yml", FormatYAML},
		{"toml", FormatTOML},
		{" csv ", FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if err != nil {
				t.Fatalf("ParseFormat(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestFormat_FileName(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "materials.json"},
		{FormatSnippet, "materials_snippet.h"},
		{FormatYAML, "materials.yaml"},
		{FormatTOML, "materials.toml"},
		{FormatCSV, "materials.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.FileName(); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExporter_JSONReadableByCatalog(t *testing.T) {
	data, err := NewExporter(FormatJSON).Export(testRecords())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if !strings.Contains(string(data), `"filamentCode": "10101"`) {
		t.Errorf("JSON should use materials.json keys:\n%s", data)
	}

	back, err := catalog.DecodeGenerated(data)
	if err != nil {
		t.Fatalf("DecodeGenerated: %v", err)
	}
	if len(back) != 2 || back[1] != testRecords()[1] {
		t.Errorf("decoded %+v", back)
	}
}

func TestExporter_JSONEmpty(t *testing.T) {
	data, err := NewExporter(FormatJSON).Export(nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty export = %q, want []", data)
	}
}

func TestExporter_Snippet(t *testing.T) {
	data, err := NewExporter(FormatSnippet).Export(testRecords())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "// Generated from Bambu-Lab-RFID-Library") {
		t.Error("snippet should start with the generated header comment")
	}
	if !strings.Contains(content, `    {"GFA00", "A00-K0", "10101", "PLA Basic", "Black"},`+"\n") {
		t.Errorf("snippet missing curated row:\n%s", content)
	}
	if !strings.Contains(content, `{"", "", "13205", "PLA Silk+", "Candy \"Red\""},`) {
		t.Errorf("snippet should escape quotes and keep blank ids:\n%s", content)
	}
}

func TestExporter_YAML(t *testing.T) {
	data, err := NewExporter(FormatYAML).Export(testRecords())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var back []model.Record
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if len(back) != 2 || back[0] != testRecords()[0] {
		t.Errorf("decoded %+v", back)
	}
}

func TestExporter_TOML(t *testing.T) {
	data, err := NewExporter(FormatTOML).Export(testRecords())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(string(data), "[[material]]") {
		t.Errorf("TOML should use [[material]] tables:\n%s", data)
	}

	var back tomlDocument
	if err := toml.Unmarshal(data, &back); err != nil {
		t.Fatalf("toml.Unmarshal: %v", err)
	}
	if len(back.Materials) != 2 || back.Materials[1] != testRecords()[1] {
		t.Errorf("decoded %+v", back.Materials)
	}
}

func TestExporter_CSV(t *testing.T) {
	data, err := NewExporter(FormatCSV).Export(testRecords())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), data)
	}
	if lines[0] != "materialId,variantId,filamentCode,material,color" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "GFA00,A00-K0,10101,PLA Basic,Black" {
		t.Errorf("row = %q", lines[1])
	}
}
