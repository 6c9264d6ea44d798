package journal

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWriteAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zone.journal")
	writer, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	for tick := uint64(1); tick <= 3; tick++ {
		record := Record{
			Tick: tick,
			Time: time.Unix(int64(tick), 0).UTC(),
			Ships: []ShipRecord{
				{ID: "ship-a", Behavior: "direct", Faction: "neutral", X: float64(tick) * 10, VX: 100},
			},
			Predictions: []PredictionRecord{
				{
					ShipID:         "ship-a",
					Behavior:       "direct",
					EffectiveRange: 20,
					Samples:        []SampleRecord{{X: float64(tick) * 10, Confidence: 1}},
				},
			},
		}
		if err := writer.Append(record); err != nil {
			t.Fatalf("Append tick %d failed: %v", tick, err)
		}
	}
	if got := writer.Appended(); got != 3 {
		t.Fatalf("Appended = %d, want 3", got)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	records, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("read %d records, want 3", len(records))
	}
	if records[2].Tick != 3 || records[2].Ships[0].X != 30 {
		t.Fatalf("unexpected final record: %+v", records[2])
	}
	if records[0].Predictions[0].EffectiveRange != 20 {
		t.Fatalf("prediction lost in roundtrip: %+v", records[0].Predictions)
	}
}

func TestAppendAfterCloseFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zone.journal")
	writer, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Append(Record{Tick: 1}); err == nil {
		t.Fatal("Append succeeded after Close")
	}
}

func TestNilWriterIsInert(t *testing.T) {
	var writer *Writer
	if err := writer.Append(Record{}); err != nil {
		t.Fatalf("nil writer Append returned error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("nil writer Close returned error: %v", err)
	}
	if got := writer.Appended(); got != 0 {
		t.Fatalf("nil writer Appended = %d", got)
	}
}
