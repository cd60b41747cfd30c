// Package reader consumes the console output of an RFID spool reader.
//
// The reader's firmware decodes the tag and prints what it found, one line
// per tag, on its serial console. This package opens that port and turns the
// printed lines into display queries; everything else the firmware prints
// (boot banners, debug output) is skipped.
//
// Recognised lines:
//
//	FILAMENT:10101
//	10101
//	MATERIAL:GFA00,A00-K0
//
// Example:
//
//	port, err := reader.Open("/dev/ttyUSB0", 115200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	queries := make(chan display.Query, 16)
//	go reader.Listen(ctx, port, queries)
//
//	for q := range queries {
//	    res := display.Resolve(catalog.Default(), q, display.DefaultFallback)
//	    fmt.Println(res.Line1, res.Line2)
//	}
package reader
