package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Header holds the column names written as the first CSV line.
var Header = []string{"time", "value"}

// Writer encodes records as CSV lines.
//
// Writer buffers through encoding/csv; call Flush after the last record.
type Writer struct {
	cw          *csv.Writer
	fields      [2]string
	wroteHeader bool
	count       int
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

func (w *Writer) writeHeader() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true

	if err := w.cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	return nil
}

// Write encodes a single record, writing the header first if needed.
func (w *Writer) Write(r Record) error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	w.fields[0] = r.Time.UTC().Format(time.RFC3339Nano)
	w.fields[1] = strconv.FormatInt(r.Value, 10)
	if err := w.cw.Write(w.fields[:]); err != nil {
		return fmt.Errorf("write record %d: %w", w.count, err)
	}
	w.count++

	return nil
}

// WriteAll encodes every record in order.
func (w *Writer) WriteAll(records []Record) error {
	for i := range records {
		if err := w.Write(records[i]); err != nil {
			return err
		}
	}

	return nil
}

// Flush writes any buffered data to the underlying writer.
//
// A Writer that never saw a record still emits the header, so an empty
// sequence encodes as a header-only file.
func (w *Writer) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.cw.Flush()

	if err := w.cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	return w.count
}

// Reader decodes records from CSV lines.
type Reader struct {
	cr         *csv.Reader
	readHeader bool
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	cr.ReuseRecord = true

	return &Reader{cr: cr}
}

func (r *Reader) checkHeader() error {
	if r.readHeader {
		return nil
	}
	r.readHeader = true

	fields, err := r.cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty stream", ErrInvalidHeader)
		}

		return r.wrapErr(ErrInvalidHeader, err)
	}

	for i, name := range Header {
		if fields[i] != name {
			return fmt.Errorf("%w: got %q", ErrInvalidHeader, fields)
		}
	}

	return nil
}

// wrapErr tags csv parse errors with kind and passes I/O errors from the
// underlying stream through unchanged.
func (r *Reader) wrapErr(kind error, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %w", kind, err)
	}

	return fmt.Errorf("read csv: %w", err)
}

// Read decodes the next record. It returns io.EOF after the last record.
func (r *Reader) Read() (Record, error) {
	if err := r.checkHeader(); err != nil {
		return Record{}, err
	}

	fields, err := r.cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}

		return Record{}, r.wrapErr(ErrInvalidRecord, err)
	}

	line, _ := r.cr.FieldPos(0)

	ts, err := time.Parse(time.RFC3339Nano, fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: line %d: %w", ErrInvalidRecord, line, err)
	}

	value, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: line %d: %w", ErrInvalidRecord, line, err)
	}

	return Record{Time: ts, Value: value}, nil
}

// ReadAll decodes every remaining record.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// Count decodes and discards every remaining record and returns how many were decoded.
func (r *Reader) Count() (int, error) {
	n := 0
	for {
		_, err := r.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}
