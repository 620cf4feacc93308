package testutil

import (
	"errors"
	"io"
)

// ErrInjected is the error returned by the failing readers and writers.
var ErrInjected = errors.New("testutil: injected I/O failure")

// FailingReader serves bytes from Data and fails with ErrInjected once
// FailAfter bytes have been read. Reads counts successful calls.
type FailingReader struct {
	Data      []byte
	FailAfter int
	Reads     int
}

// ReadByte implements io.ByteReader.
func (r *FailingReader) ReadByte() (byte, error) {
	if r.Reads >= r.FailAfter {
		return 0, ErrInjected
	}
	if r.Reads >= len(r.Data) {
		return 0, io.EOF
	}
	b := r.Data[r.Reads]
	r.Reads++
	return b, nil
}

// FailingWriter accepts FailAfter bytes and then fails with ErrInjected.
// Calls counts every WriteByte call, including the failing one.
type FailingWriter struct {
	FailAfter int
	Written   []byte
	Calls     int
}

// WriteByte implements io.ByteWriter.
func (w *FailingWriter) WriteByte(b byte) error {
	w.Calls++
	if len(w.Written) >= w.FailAfter {
		return ErrInjected
	}
	w.Written = append(w.Written, b)
	return nil
}
