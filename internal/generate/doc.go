// Package generate refreshes the generated part of the material catalog.
//
// # Manager
//
// The Manager coordinates one generation run:
//
//  1. Fetch the Bambu-Lab-RFID-Library README and any extra sources
//  2. Parse the filament tables
//  3. Carry over ids from the prior materials.json
//  4. Sort by material and color
//  5. Write materials.json and the other configured formats
//
// # Basic Usage
//
//	manager := generate.NewManager(settings, logger, func(event generate.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d entries written to %v\n", len(result.Records), result.Files)
//
// # Concurrency
//
// Sources are fetched in parallel, at most settings.MaxConcurrentFetches at
// a time.
//
// # Retry Logic
//
// Failed fetches are retried with exponential backoff, configurable via
// settings.FetchMaxRetries, settings.FetchRetryCooldown and
// settings.FetchRetryExponent. Permanent HTTP errors are not retried.
package generate
