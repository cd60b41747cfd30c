package rfidlib

import (
	"bufio"
	"errors"
	"regexp"
	"strings"

	"github.com/handiism/spoolid/internal/rfidlib/dto"
)

// ErrNoEntries is returned when a README yields no filament rows.
//
// This typically occurs when:
//   - The URL does not point at the library README
//   - The README layout changed and the tables no longer match
var ErrNoEntries = errors.New("no filament entries found in readme")

var (
	// headerRe matches "#### PLA Basic" material headers.
	headerRe = regexp.MustCompile(`^####\s+(.*)`)

	// rowRe matches "| Jade White | 10100 | A00-W1 | ..." table rows.
	rowRe = regexp.MustCompile(`^\|\s*(.*?)\s*\|\s*([0-9]{5})\s*\|\s*([A-Z0-9\-/]+)\s*\|`)
)

// Parser extracts filament rows from the Bambu-Lab-RFID-Library README.
//
// The README groups colors in markdown tables under "####" material
// headers:
//
//	#### PLA Basic
//	| Color      | Filament Code | Variant ID | Status |
//	| ---------- | ------------- | ---------- | ------ |
//	| Jade White | 10100         | A00-W1     | ✅     |
//
// Header and separator rows never match, because their second column is
// not a 5-digit code.
//
// Example usage:
//
//	parser := NewParser()
//
//	readme, _ := client.GetString(ctx, readmeURL)
//	rows, err := parser.ParseReadme(readme)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, row := range rows {
//	    fmt.Printf("%s %s - %s\n", row.FilamentCode, row.Material, row.Color)
//	}
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseReadme returns every filament row in document order.
//
// Rows that appear before any "####" header get an empty Material.
// A code listed twice is returned twice; deduplication is up to the caller.
//
// Returns ErrNoEntries if no row could be parsed.
func (p *Parser) ParseReadme(readme string) ([]dto.ReadmeRow, error) {
	var (
		rows     []dto.ReadmeRow
		material string
	)

	scanner := bufio.NewScanner(strings.NewReader(readme))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if m := headerRe.FindStringSubmatch(line); m != nil {
			material = strings.TrimSpace(m[1])
			continue
		}

		if m := rowRe.FindStringSubmatch(line); m != nil {
			rows = append(rows, dto.ReadmeRow{
				Material:     material,
				Color:        m[1],
				FilamentCode: m[2],
				VariantID:    m[3],
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrNoEntries
	}

	return rows, nil
}
