// Package export renders catalog records in the formats consumed by the
// reader firmware and by other tooling.
//
// Supported formats:
//   - JSON (materials.json, also the catalog's own snapshot format)
//   - Snippet (C initializer rows, materials_snippet.h)
//   - YAML
//   - TOML
//   - CSV
//
//	format, err := export.ParseFormat("snippet")
//	data, err := export.NewExporter(format).Export(records)
package export
