// Package http provides the HTTP client used to fetch reference data.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Non-200 responses, reported as *StatusError
//
// # Basic Usage
//
//	client := http.NewClient(30 * time.Second)
//
//	readme, err := client.GetString(ctx, readmeURL)
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) && statusErr.Temporary() {
//	    // worth retrying
//	}
package http
