// Package pkg provides utilities shared by hotedit commands.
package pkg

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// maxRecordSize guards against reading a corrupt length prefix.
const maxRecordSize = 64 << 20

// Journal is an append-only file of gob encoded records of type T. Records
// written by earlier processes stay readable: each record is framed with its
// length and encoded independently.
type Journal[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
}

type journalImpl[T any] struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	length uint64
}

// OpenJournal opens the journal at path, creating it and its directory if
// needed. Existing records are counted so Len reflects the whole file.
func OpenJournal[T any](path string) (Journal[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		slog.Error("failed to create journal directory", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// #nosec G304 - path is the configured output directory
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		slog.Error("failed to open journal", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	j := &journalImpl[T]{path: path, file: file}

	length, err := j.countRecords()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	j.length = length
	slog.Debug("opened journal", "path", path, "length", length)

	return j, nil
}

// Append implements Journal.
func (j *journalImpl[T]) Append(item T) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return fmt.Errorf("journal %s is closed", j.path)
	}

	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(item); err != nil {
		slog.Error("failed to encode record", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to encode record: %w", err)
	}

	frame := make([]byte, 4, 4+payload.Len())
	binary.BigEndian.PutUint32(frame, uint32(payload.Len()))
	frame = append(frame, payload.Bytes()...)

	if _, err := j.file.Write(frame); err != nil {
		slog.Error("failed to write record", "path", j.path, "index", j.length, "error", err)
		return fmt.Errorf("failed to write record: %w", err)
	}

	j.length++
	slog.Debug("appended record", "path", j.path, "index", j.length-1)

	return nil
}

// Path implements Journal.
func (j *journalImpl[T]) Path() string {
	return j.path
}

// AppendBatch implements Journal.
func (j *journalImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := j.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements Journal. Records remain readable after Close.
func (j *journalImpl[T]) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return nil
	}

	err := j.file.Close()
	j.file = nil

	if err != nil {
		slog.Error("failed to close journal", "path", j.path, "error", err)
		return err
	}

	slog.Debug("closed journal", "path", j.path, "length", j.length)

	return nil
}

// Get implements Journal.
func (j *journalImpl[T]) Get(index uint64) (T, error) {
	var found T

	j.mu.Lock()
	length := j.length
	j.mu.Unlock()

	if index >= length {
		slog.Warn("get index out of bounds", "path", j.path, "index", index, "length", length)
		return found, fmt.Errorf("index %d out of bounds (length %d)", index, length)
	}

	errStop := errors.New("stop")

	err := j.Range(func(i uint64, item T) error {
		if i == index {
			found = item
			return errStop
		}

		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		var zero T
		return zero, err
	}

	return found, nil
}

// Len implements Journal.
func (j *journalImpl[T]) Len() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.length
}

// Range implements Journal.
func (j *journalImpl[T]) Range(fn func(index uint64, item T) error) error {
	j.mu.Lock()
	length := j.length
	j.mu.Unlock()

	return j.readFrames(length, func(index uint64, payload []byte) error {
		var item T
		if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&item); err != nil {
			slog.Error("failed to decode record during range", "path", j.path, "index", index, "error", err)
			return fmt.Errorf("failed to decode record at index %d: %w", index, err)
		}

		if err := fn(index, item); err != nil {
			slog.Debug("range callback stopped", "path", j.path, "index", index, "error", err)
			return err
		}

		return nil
	})
}

func (j *journalImpl[T]) countRecords() (uint64, error) {
	var count uint64

	err := j.readFrames(^uint64(0), func(uint64, []byte) error {
		count++
		return nil
	})

	return count, err
}

// readFrames reads up to limit frames from the start of the file.
func (j *journalImpl[T]) readFrames(limit uint64, fn func(index uint64, payload []byte) error) error {
	// #nosec G304 - path is the configured output directory
	file, err := os.Open(j.path)
	if err != nil {
		slog.Error("failed to open journal for reading", "path", j.path, "error", err)
		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close journal reader", "path", j.path, "error", err)
		}
	}()

	reader := bufio.NewReader(file)
	header := make([]byte, 4)

	for index := uint64(0); index < limit; index++ {
		if _, err := io.ReadFull(reader, header); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("failed to read record header at index %d: %w", index, err)
		}

		size := binary.BigEndian.Uint32(header)
		if size > maxRecordSize {
			return fmt.Errorf("record %d has invalid size %d", index, size)
		}

		payload := make([]byte, size)
		if _, err := io.ReadFull(reader, payload); err != nil {
			return fmt.Errorf("failed to read record %d: %w", index, err)
		}

		if err := fn(index, payload); err != nil {
			return err
		}
	}

	return nil
}
