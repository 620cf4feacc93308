package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-sfxr/dsp/sfxr/params"
)

var (
	// ErrUnsupportedVersion indicates a record whose version is not 100, 101 or 102.
	ErrUnsupportedVersion = errors.New("codec: unsupported version")

	// ErrTruncated indicates a byte slice that ends before the record does.
	ErrTruncated = errors.New("codec: truncated record")
)

// ReadFunc adapts a function to io.ByteReader.
type ReadFunc func() (byte, error)

// ReadByte calls f.
func (f ReadFunc) ReadByte() (byte, error) { return f() }

// WriteFunc adapts a function to io.ByteWriter.
type WriteFunc func(byte) error

// WriteByte calls f.
func (f WriteFunc) WriteByte(b byte) error { return f(b) }

type decoder struct {
	r   io.ByteReader
	err error
}

func (d *decoder) u32(name string) uint32 {
	if d.err != nil {
		return 0
	}
	var buf [4]byte
	for i := range buf {
		b, err := d.r.ReadByte()
		if err != nil {
			d.err = fmt.Errorf("codec: read %s: %w", name, err)
			return 0
		}
		buf[i] = b
	}
	return binary.LittleEndian.Uint32(buf[:])
}

func (d *decoder) u8(name string) byte {
	if d.err != nil {
		return 0
	}
	b, err := d.r.ReadByte()
	if err != nil {
		d.err = fmt.Errorf("codec: read %s: %w", name, err)
	}
	return b
}

// Load reads one record from r. On error the returned Params must be
// discarded; an unsupported version is reported before any field is read.
func Load(r io.ByteReader) (params.Params, error) {
	d := decoder{r: r}

	version := int32(d.u32("version"))
	if d.err != nil {
		return params.Params{}, d.err
	}
	if !Supported(version) {
		return params.Params{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	p := params.Default()
	p.WaveType = params.Wave(int32(d.u32("wave_type")))

	for _, s := range layout {
		if !s.present(version) {
			continue
		}
		switch s.kind {
		case kindFloat:
			p.Set(s.field, math.Float32frombits(d.u32(s.name)))
		case kindReservedFloat:
			d.u32(s.name)
		case kindReservedByte:
			d.u8(s.name)
		}
	}

	if d.err != nil {
		return params.Params{}, d.err
	}
	return p, nil
}

type encoder struct {
	w   io.ByteWriter
	err error
}

func (e *encoder) u32(name string, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	for _, b := range buf {
		e.u8(name, b)
	}
}

func (e *encoder) u8(name string, b byte) {
	if e.err != nil {
		return
	}
	if err := e.w.WriteByte(b); err != nil {
		e.err = fmt.Errorf("codec: write %s: %w", name, err)
	}
}

// Save writes p to w as a version 102 record.
func Save(w io.ByteWriter, p params.Params) error {
	e := encoder{w: w}

	e.u32("version", uint32(CurrentVersion))
	e.u32("wave_type", uint32(int32(p.WaveType)))

	for _, s := range layout {
		switch s.kind {
		case kindFloat:
			e.u32(s.name, math.Float32bits(p.Get(s.field)))
		case kindReservedFloat:
			e.u32(s.name, 0)
		case kindReservedByte:
			e.u8(s.name, 0)
		}
		if e.err != nil {
			return e.err
		}
	}

	return e.err
}

// Marshal encodes p as a version 102 record.
func Marshal(p params.Params) []byte {
	var buf bytes.Buffer
	buf.Grow(Size(CurrentVersion))
	// bytes.Buffer.WriteByte never fails.
	_ = Save(&buf, p)
	return buf.Bytes()
}

// Unmarshal decodes one record from data. Trailing bytes are ignored.
func Unmarshal(data []byte) (params.Params, error) {
	p, err := Load(bytes.NewReader(data))
	if errors.Is(err, io.EOF) {
		return params.Params{}, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return p, err
}

// LoadFrom reads one record from an io.Reader. When r does not implement
// io.ByteReader it is read one byte at a time, so nothing past the record is
// consumed.
func LoadFrom(r io.Reader) (params.Params, error) {
	if br, ok := r.(io.ByteReader); ok {
		return Load(br)
	}
	return Load(&byteReader{r: r})
}

// SaveTo writes p to an io.Writer as a version 102 record.
func SaveTo(w io.Writer, p params.Params) error {
	_, err := w.Write(Marshal(p))
	if err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}
	return nil
}

type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}
