// Package model defines the core data structures used throughout spoolid.
//
// # Record
//
// Record is one entry of the material catalog, as scraped from spool tags:
//
//	rec := model.Record{
//	    MaterialID:   "GFB00",
//	    VariantID:    "B00-B4",
//	    FilamentCode: "40601",
//	    Name:         "ABS",
//	    Color:        "Azure",
//	}
//	fmt.Println(rec.Label()) // "ABS - Azure"
//
// # Filament Codes
//
// Filament codes are five decimal digits stored as text. Use IsFilamentCode
// to check input before presenting it as a code:
//
//	model.IsFilamentCode("10101") // true
package model
