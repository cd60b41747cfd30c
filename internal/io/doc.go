// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Atomic file writes
//   - Directory creation
//   - Image scaling and PNG encoding
//
// # File Operations
//
//	// Replace a snapshot without exposing a partial file
//	err := ioutils.WriteFile(ctx, "generated/materials.json", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("generated")
//
// # Image Processing
//
//	svc := ioutils.NewImageService()
//	scaled := svc.Scale(img, 4)
//	data, err := svc.EncodePNG(scaled)
package ioutils
