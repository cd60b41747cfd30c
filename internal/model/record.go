package model

// Record identifies one material/color combination as encoded on a
// Bambu Lab filament spool tag.
//
// Record is a value type and is never mutated once it is part of a catalog.
// Several records usually share a MaterialID and Name (a material family)
// and are told apart by VariantID, FilamentCode and Color.
//
// Example:
//
//	rec := Record{
//	    MaterialID:   "GFA00",
//	    VariantID:    "A00-K0",
//	    FilamentCode: "10101",
//	    Name:         "PLA Basic",
//	    Color:        "Black",
//	}
//	fmt.Println(rec.Label()) // "PLA Basic - Black"
type Record struct {
	// MaterialID is the family code, e.g. "GFA00".
	// Empty when the family code is unknown (common in generated entries).
	MaterialID string `json:"materialId" yaml:"materialId" toml:"materialId"`

	// VariantID is the variant code within the family, e.g. "A00-K0".
	VariantID string `json:"variantId" yaml:"variantId" toml:"variantId"`

	// FilamentCode is the 5-digit decimal code of the material+color.
	// Kept as text so leading zeros survive.
	FilamentCode string `json:"filamentCode" yaml:"filamentCode" toml:"filamentCode"`

	// Name is the display name of the material family, e.g. "PLA Basic".
	Name string `json:"material" yaml:"material" toml:"material"`

	// Color is the human readable color name.
	Color string `json:"color" yaml:"color" toml:"color"`
}

// FilamentCodeLength is the fixed length of a filament code.
const FilamentCodeLength = 5

// Label returns the one-line display form "<Name> - <Color>".
func (r Record) Label() string {
	return r.Name + " - " + r.Color
}

// HasMaterialID reports whether the family code is known.
func (r Record) HasMaterialID() bool {
	return r.MaterialID != ""
}

// IsFilamentCode reports whether s is exactly five ASCII decimal digits.
//
// Example:
//
//	IsFilamentCode("01234") // true
//	IsFilamentCode("1234")  // false
//	IsFilamentCode("1234a") // false
func IsFilamentCode(s string) bool {
	if len(s) != FilamentCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
