// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides header handling and typed field parsing for
// delimited text tables with a declared column schema.
package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoHeader is returned when a table has no header line.
var ErrNoHeader = errors.New("table: no header")

// ColumnError is returned when a column required by a schema is absent
// from a table header.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("table: missing column %q", e.Column)
}

// FieldError is returned when a field cannot be parsed as the type
// declared for its column.
type FieldError struct {
	Column string
	Line   int
	Text   string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("table: line %d: column %q: invalid value %q: %v", e.Line, e.Column, e.Text, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// NewReader returns a csv.Reader splitting fields on the given
// separator. Quoting is handled leniently and every record must have
// as many fields as the header.
func NewReader(r io.Reader, comma rune) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	return cr
}

// Writer writes delimited records. A field is quoted only when it
// holds the separator, a double quote or a line break; surrounding
// spaces are written as they are.
type Writer struct {
	comma rune
	w     *bufio.Writer
}

// NewWriter returns a Writer separating fields with comma.
func NewWriter(w io.Writer, comma rune) *Writer {
	return &Writer{comma: comma, w: bufio.NewWriter(w)}
}

// Write writes a single record followed by a newline.
func (w *Writer) Write(record []string) error {
	for i, f := range record {
		if i > 0 {
			if _, err := w.w.WriteRune(w.comma); err != nil {
				return err
			}
		}
		if w.needsQuotes(f) {
			f = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		if _, err := w.w.WriteString(f); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }

func (w *Writer) needsQuotes(f string) bool {
	return strings.ContainsRune(f, w.comma) || strings.ContainsAny(f, "\"\r\n")
}

// Header maps column names to field positions.
type Header struct {
	names []string
	index map[string]int
}

// NewHeader returns a Header for the given column names. When a name
// is repeated the first occurrence wins.
func NewHeader(names []string) Header {
	h := Header{names: names, index: make(map[string]int, len(names))}
	for i, n := range names {
		if _, ok := h.index[n]; !ok {
			h.index[n] = i
		}
	}
	return h
}

// ReadHeader reads the first record of r as a Header.
func ReadHeader(r *csv.Reader) (Header, error) {
	rec, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return Header{}, ErrNoHeader
		}
		return Header{}, err
	}
	names := make([]string, len(rec))
	copy(names, rec)
	if len(names) != 0 {
		names[0] = strings.TrimPrefix(names[0], "\ufeff")
	}
	return NewHeader(names), nil
}

// Names returns the column names in file order.
func (h Header) Names() []string { return h.names }

// Index returns the position of the named column.
func (h Header) Index(name string) (int, error) {
	i, ok := h.index[name]
	if !ok {
		return -1, &ColumnError{Column: name}
	}
	return i, nil
}

// Indices returns the positions of the named columns in the order
// given. The first absent column is reported.
func (h Header) Indices(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, n := range names {
		var err error
		idx[i], err = h.Index(n)
		if err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Int is an integer field that may be null.
type Int struct {
	V     int64
	Valid bool
}

// String returns the decimal representation of v, or the empty
// string if v is null.
func (v Int) String() string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.V, 10)
}

// Float is a floating point field that may be null.
type Float struct {
	V     float64
	Valid bool
}

// String returns the shortest decimal representation of v, or the
// empty string if v is null.
func (v Float) String() string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.V, 'f', -1, 64)
}

// ParseInt parses text from the named column at the given line. Empty
// text is a null value.
func ParseInt(column string, line int, text string) (Int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Int{}, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Int{}, &FieldError{Column: column, Line: line, Text: text, Err: err}
	}
	return Int{V: v, Valid: true}, nil
}

// ParseFloat parses text from the named column at the given line.
// Empty text is a null value.
func ParseFloat(column string, line int, text string) (Float, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Float{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}, &FieldError{Column: column, Line: line, Text: text, Err: err}
	}
	return Float{V: v, Valid: true}, nil
}
