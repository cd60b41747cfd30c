package reader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	goserial "go.bug.st/serial.v1"

	"github.com/handiism/spoolid/internal/display"
	"github.com/handiism/spoolid/internal/model"
)

const (
	filamentPrefix = "FILAMENT:"
	materialPrefix = "MATERIAL:"
)

// ErrNotQuery is returned by ParseLine for lines that carry no tag data.
var ErrNotQuery = errors.New("line is not a tag query")

// Open opens a serial port and returns it as an io.ReadWriteCloser.
func Open(portName string, baudRate int) (io.ReadWriteCloser, error) {
	mode := &goserial.Mode{BaudRate: baudRate}
	port, err := goserial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}
	return port, nil
}

// ParseLine parses one line of reader output into a query.
//
// A filament code must be exactly 5 digits. A material line needs both ids,
// separated by a comma. Anything else yields ErrNotQuery.
func ParseLine(line string) (display.Query, error) {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, filamentPrefix):
		code := strings.TrimSpace(strings.TrimPrefix(line, filamentPrefix))
		if !model.IsFilamentCode(code) {
			return display.Query{}, fmt.Errorf("%w: bad filament code %q", ErrNotQuery, code)
		}
		return display.CodeQuery(code), nil

	case strings.HasPrefix(line, materialPrefix):
		materialID, variantID, ok := strings.Cut(strings.TrimPrefix(line, materialPrefix), ",")
		materialID = strings.TrimSpace(materialID)
		variantID = strings.TrimSpace(variantID)
		if !ok || materialID == "" || variantID == "" {
			return display.Query{}, fmt.Errorf("%w: bad material line %q", ErrNotQuery, line)
		}
		return display.PairQuery(materialID, variantID), nil

	case model.IsFilamentCode(line):
		return display.CodeQuery(line), nil
	}

	return display.Query{}, ErrNotQuery
}

// LineReader reads queries line by line from an io.Reader.
// ReadQuery blocks until the next query line, io.EOF or a read error.
type LineReader struct {
	s *bufio.Scanner
}

// NewLineReader wraps r in a LineReader.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{s: bufio.NewScanner(r)}
}

// ReadQuery returns the next query, skipping lines that are not queries.
func (r *LineReader) ReadQuery() (display.Query, error) {
	for r.s.Scan() {
		q, err := ParseLine(r.s.Text())
		if err != nil {
			continue
		}
		return q, nil
	}
	if err := r.s.Err(); err != nil {
		return display.Query{}, err
	}
	return display.Query{}, io.EOF
}

// Listen reads queries from r and sends them to ch until r is exhausted or
// ctx is cancelled. ch is closed when Listen returns.
//
// A read blocked on the port only notices cancellation once it returns;
// close the port to unblock it. io.EOF is not reported as an error.
func Listen(ctx context.Context, r io.Reader, ch chan<- display.Query) error {
	defer close(ch)

	lr := NewLineReader(r)
	for {
		q, err := lr.ReadQuery()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read serial: %w", err)
		}

		select {
		case ch <- q:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
