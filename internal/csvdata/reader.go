// Package csvdata reads numeric columns out of delimited text files.
package csvdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for csvdata package.
var (
	// ErrMissingColumn is returned when a record has fewer fields than the
	// requested column index.
	ErrMissingColumn = errors.New("csvdata: missing column")

	// ErrInvalidDelimiter is returned for delimiters encoding/csv cannot use.
	ErrInvalidDelimiter = errors.New("csvdata: invalid delimiter")
)

// CellError locates a field that could not be read as a number.
type CellError struct {
	Path   string
	Line   int
	Column int
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	if errors.Is(e.Err, ErrMissingColumn) {
		return fmt.Sprintf("%s:%d: column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %d: cannot parse %q: %v", e.Path, e.Line, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// Options controls how a file is split into records.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
	// HasHeader skips the first record.
	HasHeader bool
}

// Record is one data row with the line it started on.
type Record struct {
	Line   int
	Fields []string
}

// Table is the parsed content of one file.
type Table struct {
	Path    string
	Header  []string
	Records []Record
}

// ReadFile opens and parses path.
func ReadFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // data paths come from the chart config
	if err != nil {
		return nil, fmt.Errorf("csvdata: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Read(f, path, opts)
}

// Read parses delimited records from r. Rows may have differing field
// counts; columns are checked when they are read.
func Read(r io.Reader, path string, opts Options) (*Table, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}
	if !validDelim(delim) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDelimiter, delim)
	}

	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	t := &Table{Path: path}
	first := true
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvdata: %s: %w", path, err)
		}
		line, _ := cr.FieldPos(0)
		if first && opts.HasHeader {
			t.Header = fields
			first = false
			continue
		}
		first = false
		t.Records = append(t.Records, Record{Line: line, Fields: fields})
	}
	return t, nil
}

// Float parses field col of rec.
func (t *Table) Float(rec Record, col int) (float64, error) {
	if col < 0 || col >= len(rec.Fields) {
		return 0, &CellError{Path: t.Path, Line: rec.Line, Column: col, Err: ErrMissingColumn}
	}
	raw := strings.TrimSpace(rec.Fields[col])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &CellError{Path: t.Path, Line: rec.Line, Column: col, Value: raw, Err: err}
	}
	return v, nil
}

func validDelim(r rune) bool {
	return r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}

// ParseDelimiter turns a command line delimiter argument into a rune.
// It accepts exactly one character, or the escape "\t" for tab.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", ErrInvalidDelimiter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !validDelim(r) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
	}
	return r, nil
}
