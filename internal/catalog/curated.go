package catalog

import "github.com/handiism/spoolid/internal/model"

// curated holds the hand-verified records. They are declared ahead of the
// generated snapshot so that a code listed in both resolves here.
var curated = []model.Record{
	// PLA Basic
	{MaterialID: "GFA00", VariantID: "A00-W1", FilamentCode: "10100", Name: "PLA Basic", Color: "Jade White"},
	{MaterialID: "GFA00", VariantID: "A00-P0", FilamentCode: "10201", Name: "PLA Basic", Color: "Beige"},
	{MaterialID: "GFA00", VariantID: "A00-D2", FilamentCode: "10104", Name: "PLA Basic", Color: "Light Gray"},
	{MaterialID: "GFA00", VariantID: "A00-Y0", FilamentCode: "10400", Name: "PLA Basic", Color: "Yellow"},
	{MaterialID: "GFA00", VariantID: "A00-Y2", FilamentCode: "10402", Name: "PLA Basic", Color: "Sunflower Yellow"},
	{MaterialID: "GFA00", VariantID: "A00-A1", FilamentCode: "10301", Name: "PLA Basic", Color: "Pumpkin Orange"},
	{MaterialID: "GFA00", VariantID: "A00-A0", FilamentCode: "10300", Name: "PLA Basic", Color: "Orange"},
	{MaterialID: "GFA00", VariantID: "A00-Y4", FilamentCode: "10401", Name: "PLA Basic", Color: "Gold"},
	{MaterialID: "GFA00", VariantID: "A00-G3", FilamentCode: "10503", Name: "PLA Basic", Color: "Bright Green"},
	{MaterialID: "GFA00", VariantID: "A00-G1", FilamentCode: "10501", Name: "PLA Basic", Color: "Bambu Green"},
	{MaterialID: "GFA00", VariantID: "A00-G2", FilamentCode: "10502", Name: "PLA Basic", Color: "Mistletoe Green"},
	{MaterialID: "GFA00", VariantID: "A00-P6", FilamentCode: "10202", Name: "PLA Basic", Color: "Magenta"},
	{MaterialID: "GFA00", VariantID: "A00-R0", FilamentCode: "10200", Name: "PLA Basic", Color: "Red"},
	{MaterialID: "GFA00", VariantID: "A00-R2", FilamentCode: "10205", Name: "PLA Basic", Color: "Maroon Red"},
	{MaterialID: "GFA00", VariantID: "A00-P5", FilamentCode: "10700", Name: "PLA Basic", Color: "Purple"},
	{MaterialID: "GFA00", VariantID: "A00-P2", FilamentCode: "10701", Name: "PLA Basic", Color: "Indigo Purple"},
	{MaterialID: "GFA00", VariantID: "A00-B8", FilamentCode: "10603", Name: "PLA Basic", Color: "Cyan"},
	{MaterialID: "GFA00", VariantID: "A00-B3", FilamentCode: "10604", Name: "PLA Basic", Color: "Cobalt Blue"},
	{MaterialID: "GFA09", VariantID: "A09-B4", FilamentCode: "10601", Name: "PLA Basic", Color: "Blue"},
	{MaterialID: "GFA00", VariantID: "A00-N0", FilamentCode: "10800", Name: "PLA Basic", Color: "Brown"},
	{MaterialID: "GFA00", VariantID: "A00-N1", FilamentCode: "10802", Name: "PLA Basic", Color: "Cocoa Brown"},
	{MaterialID: "GFA00", VariantID: "A00-Y3", FilamentCode: "10801", Name: "PLA Basic", Color: "Bronze"},
	{MaterialID: "GFA00", VariantID: "A00-D0", FilamentCode: "10103", Name: "PLA Basic", Color: "Gray"},
	{MaterialID: "GFA00", VariantID: "A00-D1", FilamentCode: "10102", Name: "PLA Basic", Color: "Silver"},
	{MaterialID: "GFA00", VariantID: "A00-B1", FilamentCode: "10602", Name: "PLA Basic", Color: "Blue Grey"},
	{MaterialID: "GFA00", VariantID: "A00-D3", FilamentCode: "10105", Name: "PLA Basic", Color: "Dark Gray"},
	{MaterialID: "GFA00", VariantID: "A00-K0", FilamentCode: "10101", Name: "PLA Basic", Color: "Black"},
	// PLA Lite
	{MaterialID: "GFA18", VariantID: "A18-K0", FilamentCode: "16100", Name: "PLA Lite", Color: "Black"},
	{MaterialID: "GFA18", VariantID: "A18-D0", FilamentCode: "16101", Name: "PLA Lite", Color: "Gray"},
	{MaterialID: "GFA18", VariantID: "A18-W0", FilamentCode: "16103", Name: "PLA Lite", Color: "White"},
	{MaterialID: "GFA18", VariantID: "A18-R0", FilamentCode: "16200", Name: "PLA Lite", Color: "Red"},
	{MaterialID: "GFA18", VariantID: "A18-Y0", FilamentCode: "16400", Name: "PLA Lite", Color: "Yellow"},
	{MaterialID: "GFA18", VariantID: "A18-B0", FilamentCode: "16600", Name: "PLA Lite", Color: "Cyan"},
	{MaterialID: "GFA18", VariantID: "A18-B1", FilamentCode: "16601", Name: "PLA Lite", Color: "Blue"},
	{MaterialID: "GFA18", VariantID: "A18-P0", FilamentCode: "16602", Name: "PLA Lite", Color: "Matte Beige"},
	// PLA Matte (subset)
	{MaterialID: "GFA01", VariantID: "A01-W2", FilamentCode: "11100", Name: "PLA Matte", Color: "Ivory White"},
	{MaterialID: "GFA01", VariantID: "A01-W3", FilamentCode: "11103", Name: "PLA Matte", Color: "Bone White"},
	{MaterialID: "GFA01", VariantID: "A01-Y2", FilamentCode: "11400", Name: "PLA Matte", Color: "Lemon Yellow"},
	{MaterialID: "GFA01", VariantID: "A01-A2", FilamentCode: "11300", Name: "PLA Matte", Color: "Mandarin Orange"},
	{MaterialID: "GFA01", VariantID: "A01-P3", FilamentCode: "11201", Name: "PLA Matte", Color: "Sakura Pink"},
	{MaterialID: "GFA01", VariantID: "A01-P4", FilamentCode: "11700", Name: "PLA Matte", Color: "Lilac Purple"},
	{MaterialID: "GFA01", VariantID: "A01-R1", FilamentCode: "11200", Name: "PLA Matte", Color: "Scarlet Red"},
	{MaterialID: "GFA01", VariantID: "A01-G7", FilamentCode: "11501", Name: "PLA Matte", Color: "Dark Green"},
	{MaterialID: "GFA01", VariantID: "A01-G1", FilamentCode: "11500", Name: "PLA Matte", Color: "Grass Green"},
	{MaterialID: "GFA01", VariantID: "A01-B4", FilamentCode: "11601", Name: "PLA Matte", Color: "Ice Blue"},
	{MaterialID: "GFA01", VariantID: "A01-B3", FilamentCode: "11600", Name: "PLA Matte", Color: "Marine Blue"},
	{MaterialID: "GFA01", VariantID: "A01-D3", FilamentCode: "11102", Name: "PLA Matte", Color: "Ash Gray"},
	{MaterialID: "GFA01", VariantID: "A01-D0", FilamentCode: "11104", Name: "PLA Matte", Color: "Nardo Gray"},
	{MaterialID: "GFA01", VariantID: "A01-K1", FilamentCode: "11101", Name: "PLA Matte", Color: "Charcoal"},
	// PLA Marble (subset)
	{MaterialID: "", VariantID: "A07-D4", FilamentCode: "13103", Name: "PLA Marble", Color: "White Marble"},
	// PLA Metal (subset)
	{MaterialID: "", VariantID: "A02-Y1", FilamentCode: "13400", Name: "PLA Metal", Color: "Iridium Gold Metallic"},
	// PETG HF (subset)
	{MaterialID: "GFH02", VariantID: "G02-K0", FilamentCode: "33102", Name: "PETG HF", Color: "Black"},
	{MaterialID: "GFH02", VariantID: "G02-W0", FilamentCode: "33100", Name: "PETG HF", Color: "White"},
	{MaterialID: "GFH02", VariantID: "G02-R0", FilamentCode: "33200", Name: "PETG HF", Color: "Red"},
	{MaterialID: "GFH02", VariantID: "G02-D0", FilamentCode: "33101", Name: "PETG HF", Color: "Gray"},
	{MaterialID: "GFH02", VariantID: "G02-D1", FilamentCode: "33103", Name: "PETG HF", Color: "Dark Gray"},
	{MaterialID: "GFH02", VariantID: "G02-Y0", FilamentCode: "33400", Name: "PETG HF", Color: "Yellow"},
	{MaterialID: "GFH02", VariantID: "G02-A0", FilamentCode: "33300", Name: "PETG HF", Color: "Orange"},
	{MaterialID: "GFH02", VariantID: "G02-G1", FilamentCode: "33501", Name: "PETG HF", Color: "Lime Green"},
	{MaterialID: "GFH02", VariantID: "G02-G0", FilamentCode: "33500", Name: "PETG HF", Color: "Green"},
	{MaterialID: "GFH02", VariantID: "G02-B1", FilamentCode: "33601", Name: "PETG HF", Color: "Lake Blue"},
	{MaterialID: "GFH02", VariantID: "G02-B0", FilamentCode: "33600", Name: "PETG HF", Color: "Blue"},
	// ABS (subset)
	{MaterialID: "GFB00", VariantID: "B00-D1", FilamentCode: "40102", Name: "ABS", Color: "Silver"},
	{MaterialID: "GFB00", VariantID: "B00-K0", FilamentCode: "40101", Name: "ABS", Color: "Black"},
	{MaterialID: "GFB00", VariantID: "B00-W0", FilamentCode: "40100", Name: "ABS", Color: "White"},
	{MaterialID: "GFB00", VariantID: "B00-G6", FilamentCode: "40500", Name: "ABS", Color: "Bambu Green"},
	{MaterialID: "GFB00", VariantID: "B00-Y1", FilamentCode: "40402", Name: "ABS", Color: "Tangerine Yellow"},
	{MaterialID: "GFB00", VariantID: "B00-A0", FilamentCode: "40300", Name: "ABS", Color: "Orange"},
	{MaterialID: "GFB00", VariantID: "B00-R0", FilamentCode: "40200", Name: "ABS", Color: "Red"},
	{MaterialID: "GFB00", VariantID: "B00-B4", FilamentCode: "40601", Name: "ABS", Color: "Azure"},
}
