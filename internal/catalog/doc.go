// Package catalog holds the material catalog used to identify Bambu Lab
// filament spools from the codes read off their RFID tags.
//
// The catalog is the concatenation of two sources:
//
//  1. Curated records, maintained by hand in this package
//  2. Generated records, produced by the generator from the
//     Bambu-Lab-RFID-Library and embedded as generated/materials.json
//
// Curated records always come first. Lookups return the first match in
// declaration order, so a code present in both sources resolves to the
// curated record.
//
// # Lookups
//
//	cat := catalog.Default()
//
//	rec, err := cat.LookupByFilamentCode("40601")
//	// rec.Name == "ABS", rec.Color == "Azure"
//
//	rec, err = cat.LookupByMaterialAndVariant("GFH02", "G02-B0")
//	// rec.FilamentCode == "33600"
//
// A miss returns ErrNotFound. It is a normal outcome; what to display for an
// unknown spool is the caller's decision.
//
// # Indexed Access
//
//	for i := 0; i < cat.Count(); i++ {
//	    rec, _ := cat.RecordAt(i)
//	    fmt.Println(rec.FilamentCode, rec.Label())
//	}
//
// RecordAt returns ErrIndexOutOfRange outside [0, Count()).
//
// # Fresher Snapshots
//
// Load builds a catalog from the curated records and a materials.json on
// disk instead of the embedded snapshot:
//
//	cat, err := catalog.Load("generated/materials.json")
package catalog
