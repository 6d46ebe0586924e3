// Package ingest reads instruments from delimited text.
//
// Each row is symbol, sector, high, low, risk. Rows that cannot be turned into
// an Instrument are skipped and recorded on the Batch; the rest of the source
// is still read.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"volscan/internal/common"

	"github.com/rs/zerolog/log"
)

const fieldsPerRow = 5

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrMalformedRecord   = errors.New("malformed record")
)

// RecordError describes a skipped row.
type RecordError struct {
	Line  int    // 1-based line in the source
	Field string // Offending field, empty when the row itself is bad
	Err   error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: field %s: %v", e.Line, e.Field, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}

type Options struct {
	Comma  rune // Field delimiter, '\t' when zero
	Header bool // First row is a header and is discarded
	// Reject bare or unbalanced quotes as malformed rows instead of reading
	// them literally.
	StrictQuotes bool
}

// Batch is the outcome of one ingestion.
type Batch struct {
	Instruments []common.Instrument
	Skipped     []*RecordError
}

// Load opens and reads the file at path.
func Load(path string, opts Options) (Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return Batch{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	return Read(f, opts)
}

// Read parses every row from r. A read failure other than a malformed row
// returns ErrSourceUnavailable along with nothing parsed.
func Read(r io.Reader, opts Options) (Batch, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Comma
	if reader.Comma == 0 {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = !opts.StrictQuotes
	reader.ReuseRecord = true

	var batch Batch
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				batch.skip(&RecordError{Line: parseErr.StartLine, Err: parseErr.Err})
				continue
			}
			return Batch{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}

		line, _ := reader.FieldPos(0)
		// Only a row that was actually read can be the header.
		if first {
			first = false
			if opts.Header {
				continue
			}
		}

		inst, recErr := parseRecord(line, record)
		if recErr != nil {
			batch.skip(recErr)
			continue
		}
		batch.Instruments = append(batch.Instruments, inst)
	}

	log.Info().
		Int("instruments", len(batch.Instruments)).
		Int("skipped", len(batch.Skipped)).
		Msg("ingestion complete")
	return batch, nil
}

func (batch *Batch) skip(err *RecordError) {
	log.Warn().
		Int("line", err.Line).
		Str("field", err.Field).
		Err(err.Err).
		Msg("skipping malformed record")
	batch.Skipped = append(batch.Skipped, err)
}

func parseRecord(line int, record []string) (common.Instrument, *RecordError) {
	if len(record) < fieldsPerRow {
		return common.Instrument{}, &RecordError{
			Line: line,
			Err:  fmt.Errorf("expected %d fields, got %d", fieldsPerRow, len(record)),
		}
	}

	var values [3]float64
	for i, name := range []string{"high", "low", "risk"} {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[2+i]), 64)
		if err != nil {
			return common.Instrument{}, &RecordError{Line: line, Field: name, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return common.Instrument{}, &RecordError{
				Line:  line,
				Field: name,
				Err:   fmt.Errorf("%w: %q", common.ErrNonFinite, record[2+i]),
			}
		}
		values[i] = v
	}

	inst, err := common.NewInstrument(record[0], record[1], values[0], values[1], values[2])
	if err != nil {
		field := "symbol"
		if errors.Is(err, common.ErrNonPositiveLow) {
			field = "low"
		}
		return common.Instrument{}, &RecordError{Line: line, Field: field, Err: err}
	}
	return inst, nil
}
