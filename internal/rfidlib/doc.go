// Package rfidlib reads the public Bambu-Lab-RFID-Library reference data
// and turns it into generated catalog records.
//
// # README Parsing
//
//	parser := rfidlib.NewParser()
//	rows, err := parser.ParseReadme(readme)
//	if errors.Is(err, rfidlib.ErrNoEntries) {
//	    // layout changed or wrong document
//	}
//
// # Building Entries
//
// BuildEntries deduplicates rows by filament code, carries over ids from a
// prior snapshot and sorts the result:
//
//	records := rfidlib.BuildEntries(rows, prior)
//
// The records are the "generated" half of the catalog and are always
// appended after the curated records.
package rfidlib
