// Package config provides configuration management for spoolid.
//
// This package handles:
//   - Loading settings from JSON, YAML or TOML files through viper
//   - SPOOLID_* environment overrides
//   - Default configuration values
//   - Saving settings back to a file
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Fetches the Bambu-Lab-RFID-Library README
//	// Writes generated/materials.json and the firmware snippet
//	// Falls back to "Unknown Material" for unknown spools
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/spoolid.yaml")
//	if err != nil {
//	    // Missing or malformed file
//	}
//
//	// Searches ./spoolid.* and ~/.config/spoolid; defaults if none exists
//	settings, err = config.Load("")
//	if err != nil {
//	    // Malformed file
//	}
//
// # Environment
//
//	SPOOLID_SERIAL_PORT=/dev/ttyUSB0 SPOOLID_LOG_LEVEL=debug spoolid watch
//
// # Saving Settings
//
//	settings.SerialPort = "/dev/ttyACM0"
//	err := settings.Save("/path/to/spoolid.json")
package config
