// Package journal persists per-tick snapshots as zstd-compressed JSON lines.
// The stream is append-only and replayable, which is enough to check predictor
// accuracy against what the simulation actually did.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Record captures one simulation tick.
type Record struct {
	Tick        uint64             `json:"tick"`
	Time        time.Time          `json:"time"`
	Ships       []ShipRecord       `json:"ships"`
	Predictions []PredictionRecord `json:"predictions,omitempty"`
}

// ShipRecord is the kinematic state of one ship at the recorded tick.
type ShipRecord struct {
	ID       string  `json:"id"`
	Behavior string  `json:"behavior"`
	Faction  string  `json:"faction"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
}

// PredictionRecord is a forecast emitted during the recorded tick.
type PredictionRecord struct {
	ShipID         string         `json:"shipId"`
	Behavior       string         `json:"behavior"`
	EffectiveRange float64        `json:"effectiveRange"`
	Samples        []SampleRecord `json:"samples"`
}

type SampleRecord struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// Writer appends records to a compressed journal file. Safe for concurrent
// use; Append after Close is an error.
type Writer struct {
	mu       sync.Mutex
	file     *os.File
	zstd     *zstd.Encoder
	encoder  *json.Encoder
	closed   bool
	appended uint64
}

// NewWriter creates or truncates the journal at path.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("journal: create %s: %w", path, err)
	}
	compressor, err := zstd.NewWriter(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("journal: init compressor: %w", err)
	}
	return &Writer{
		file:    file,
		zstd:    compressor,
		encoder: json.NewEncoder(compressor),
	}, nil
}

// Append writes one record to the stream.
func (w *Writer) Append(record Record) error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New("journal: writer closed")
	}
	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("journal: append tick %d: %w", record.Tick, err)
	}
	w.appended++
	return nil
}

// Appended reports how many records have been written.
func (w *Writer) Appended() uint64 {
	if w == nil {
		return 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.appended
}

// Close flushes the compressor and the underlying file.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	var firstErr error
	if err := w.zstd.Close(); err != nil {
		firstErr = err
	}
	if err := w.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// ReadAll decodes every record from a journal file.
func ReadAll(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	defer file.Close()

	reader, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("journal: init decompressor: %w", err)
	}
	defer reader.Close()

	var records []Record
	decoder := json.NewDecoder(reader)
	for {
		var record Record
		if err := decoder.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, fmt.Errorf("journal: decode record %d: %w", len(records), err)
		}
		records = append(records, record)
	}
}
