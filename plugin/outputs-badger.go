package plugin

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	At "github.com/marisol/aquanet/types"
)

type BadgerOutput struct {
	MU        sync.Mutex
	DB        *badger.DB
	BatchSize int
	Buffer    []*At.MetricSample
}

func NewBadgerOutput(path string, batchSize int) (*BadgerOutput, error) {
	opts := badger.DefaultOptions(path).
		WithCompression(options.ZSTD).
		WithNumVersionsToKeep(1)

	db, err := badger.Open(opts)
	if err != nil {
		slog.Error("BadgerOutput failed to open database", slog.Any("error", err))
		return nil, fmt.Errorf("database error: %w", err)
	}

	slog.Info("BadgerOutput opened",
		slog.String("path", path),
		slog.Int("batchSize", batchSize))

	return &BadgerOutput{
		DB:        db,
		BatchSize: batchSize,
		Buffer:    make([]*At.MetricSample, 0, batchSize),
	}, nil
}

// WriteSample queues up a batch of samples,
// when batchsize is reached, it calls Flush()
// which calls WriteBatch() with the new batch
func (bo *BadgerOutput) WriteSample(sample *At.MetricSample) error {
	bo.MU.Lock()
	defer bo.MU.Unlock()

	bo.Buffer = append(bo.Buffer, sample)
	if len(bo.Buffer) >= bo.BatchSize {
		return bo.flushLocked() // private Flush that does not lock
	}
	return nil
}

// WriteBatch performs the key/value creation to be stored
// and actually calls BadgerDB to write the data
func (bo *BadgerOutput) WriteBatch(samples []*At.MetricSample) error {
	wb := bo.DB.NewWriteBatch()
	defer wb.Cancel()

	for _, s := range samples {
		k := SampleKey(s)
		v := SampleEncode(s)
		if err := wb.Set(k, v); err != nil {
			slog.Error("BadgerOutput failed to set key in batch",
				slog.Any("error", err),
				slog.Float64("sampleTime", s.Time),
				slog.String("metric", s.Metric))
			return fmt.Errorf("write batch error: %w", err)
		}
	}

	if err := wb.Flush(); err != nil {
		slog.Error("BadgerOutput failed to flush batch", slog.Any("error", err))
		return fmt.Errorf("batch flush error: %w", err)
	}

	return nil
}

// Flush is the public method that blocks,
// it sends data to WriteBatch and then clears the buffer
func (bo *BadgerOutput) Flush() error {
	bo.MU.Lock()
	defer bo.MU.Unlock()

	if len(bo.Buffer) == 0 {
		return nil
	}

	err := bo.WriteBatch(bo.Buffer) // Delegate to WriteBatch
	bo.Buffer = bo.Buffer[:0]       // Clear but keep capacity
	return err
}

// flushLocked mimics Flush without locking, called by WriteSample
func (bo *BadgerOutput) flushLocked() error {
	err := bo.WriteBatch(bo.Buffer) // Delegate to WriteBatch
	bo.Buffer = bo.Buffer[:0]       // Clear but keep capacity
	return err
}

// Close returns a Flush error but still attempts to close
func (bo *BadgerOutput) Close() error {
	slog.Info("BadgerOutput closing, flushing buffer",
		slog.Int("bufferSize", len(bo.Buffer)))
	flushErr := bo.Flush()
	closeErr := bo.DB.Close()

	if flushErr != nil {
		slog.Error("BadgerOutput failed to flush on close", slog.Any("error", flushErr))
		return fmt.Errorf("flush failed, close may have failed: %v", flushErr)
	}

	if closeErr != nil {
		slog.Error("BadgerOutput failed to close database", slog.Any("error", closeErr))
		return fmt.Errorf("close failed: %v", closeErr)
	}

	slog.Info("BadgerOutput closed successfully")
	return nil
}

func (bo *BadgerOutput) Type() string { return "BadgerDB" }

// SampleKey creates a composite key
// simulation time + first eight letters of metric + first eight of scenario
func SampleKey(sample *At.MetricSample) []byte {
	key := make([]byte, 8+8+8)

	// Simulation seconds as milliseconds in a positive BigEndian
	// integer so keys sort chronologically in BadgerDB
	binary.BigEndian.PutUint64(key[0:8], uint64(sample.Time*1000))

	// Eight chars keeps extent_indirect and extent_direct apart
	copyTrunc(key[8:16], sample.Metric)
	copyTrunc(key[16:24], sample.Scenario)

	return key
}

func copyTrunc(dst []byte, s string) {
	b := []byte(s)
	n := len(b)
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst[:n], b[:n])
}

// SampleEncode serializes the metric sample struct for data storage
func SampleEncode(s *At.MetricSample) []byte {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	enc.Encode(s)
	return buf.Bytes()
}

// SampleDecode deserializes the metric sample data
func SampleDecode(data []byte) (*At.MetricSample, error) {
	var s At.MetricSample
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	err := dec.Decode(&s)
	return &s, err
}

// QueryRange retrieves samples within a simulation-time range
func (bo *BadgerOutput) QueryRange(start, end float64) ([]*At.MetricSample, error) {
	var samples []*At.MetricSample

	// db.View() callback
	// BadgerDB provides a transaction in which to get item.Value()
	err := bo.DB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()

			// item.Value() callback
			// BadgerDB passes bytes to the anon func
			err := item.Value(func(val []byte) error {
				sample, err := SampleDecode(val)
				if err != nil {
					slog.Error("BadgerOutput failed to decode sample", slog.Any("error", err))
					return fmt.Errorf("sample decode error: %w", err)
				}

				// Filter by simulation-time range
				if sample.Time >= start && sample.Time <= end {
					samples = append(samples, sample)
				}

				return nil
			})
			if err != nil {
				slog.Error("BadgerOutput callback failure", slog.Any("error", err))
				return fmt.Errorf("item data error: %w", err)
			}
		}
		return nil
	})

	slog.Info("BadgerOutput QueryRange successful", slog.Int("count", len(samples)))

	return samples, err
}
