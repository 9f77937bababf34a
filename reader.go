package tiffdir

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/hmelik/tiffdir/rational"
)

// source is the random-access view a directory parses from: a byte source
// plus the byte order fixed for the whole file.
type source struct {
	r     io.ReaderAt
	order binary.ByteOrder
}

// bytesAt reads exactly n bytes at off. A short read or I/O failure
// surfaces as a ReadError carrying the offset that was being read.
func (s source) bytesAt(off int64, n int) ([]byte, error) {
	buf := make([]byte, n)
	rn, err := s.r.ReadAt(buf, off)
	if rn < n {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, &ReadError{Offset: off, Err: err}
	}
	return buf, nil
}

// readField reads count values of type t at off and decodes them into a
// Field. The caller has already applied the inline-versus-offset rule, so
// off is always the position of the first value byte.
func (s source) readField(tag uint16, t Type, count uint32, off int64) (Field, error) {
	f := Field{Tag: tag, Type: t, Count: count}
	size := int(t.Size()) * int(count)
	raw, err := s.bytesAt(off, size)
	if err != nil {
		return f, err
	}
	switch {
	case t == ASCII:
		f.str = escapeASCII(raw)
	case t == UNDEFINED:
		f.raw = raw
	case t.IsInteger():
		f.ints = make([]int64, count)
		for i := range f.ints {
			f.ints[i] = decodeInt(t, s.order, raw[i*int(t.Size()):])
		}
	case t.IsRational():
		f.rats = make([]rational.R, count)
		for i := range f.rats {
			if t == RATIONAL {
				f.rats[i], err = rational.DecodeUnsigned(s.order, raw[i*8:])
			} else {
				f.rats[i], err = rational.DecodeSigned(s.order, raw[i*8:])
			}
			if err != nil {
				return f, &ReadError{Offset: off + int64(i*8), Err: err}
			}
		}
	case t.IsFloat():
		f.floats = make([]float64, count)
		for i := range f.floats {
			if t == FLOAT {
				f.floats[i] = float64(math.Float32frombits(s.order.Uint32(raw[i*4:])))
			} else {
				f.floats[i] = math.Float64frombits(s.order.Uint64(raw[i*8:]))
			}
		}
	}
	return f, nil
}

func decodeInt(t Type, order binary.ByteOrder, b []byte) int64 {
	switch t {
	case BYTE:
		return int64(b[0])
	case SBYTE:
		return int64(int8(b[0]))
	case SHORT:
		return int64(order.Uint16(b))
	case SSHORT:
		return int64(int16(order.Uint16(b)))
	case LONG, IFD:
		return int64(order.Uint32(b))
	case SLONG:
		return int64(int32(order.Uint32(b)))
	}
	return 0
}

const hexDigits = "0123456789ABCDEF"

// escapeASCII converts an ASCII field's raw bytes to a string. The value
// is NUL-terminated within the declared count; since the encoding of the
// remaining bytes is unknown, non-printable bytes are escaped as %XX.
func escapeASCII(raw []byte) string {
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	out := make([]byte, 0, end)
	for _, b := range raw[:end] {
		if b >= 0x20 && b < 0x7F {
			out = append(out, b)
		} else {
			out = append(out, '%', hexDigits[b>>4], hexDigits[b&0xF])
		}
	}
	return string(out)
}

// OffsetReader shifts an io.ReaderAt so that position 0 is the start of an
// embedded TIFF structure (for example an Exif APP1 payload inside a
// JPEG). Small reads are served from an in-memory window.
type OffsetReader struct {
	r         io.ReaderAt
	offset    int64
	buf       []byte
	bufOffset int64
}

// NewOffsetReader wraps r with base offset added to every read. buf may be
// nil to use a default 64-byte window.
func NewOffsetReader(r io.ReaderAt, base int64, buf []byte) *OffsetReader {
	const bufSize = 64
	if buf == nil {
		buf = make([]byte, bufSize)
	}
	return &OffsetReader{
		r:         r,
		buf:       buf,
		bufOffset: -1,
		offset:    base,
	}
}

func (or *OffsetReader) ReadAt(p []byte, off int64) (n int, err error) {
	off += or.offset // underlying reader coordinates from here on
	if len(p) < len(or.buf) {
		// Small reads that fit the window are served from memory.
		end := off + int64(len(p))
		bufStart, bufEnd := or.buflims()
		if off >= bufStart && end <= bufEnd {
			start := off - bufStart
			n := copy(p, or.buf[start:start+int64(len(p))])
			return n, nil
		}
		// Window miss: refill it starting at the requested position.
		nn, err := or.r.ReadAt(or.buf[:cap(or.buf)], off)
		if err != nil && nn < len(p) {
			return nn, err
		}
		or.buf = or.buf[:nn]
		or.bufOffset = off
		return copy(p, or.buf[:len(p)]), nil
	}
	return or.r.ReadAt(p, off)
}

func (or *OffsetReader) buflims() (start, end int64) {
	if or.bufOffset < 0 {
		return 0, 0
	}
	return or.bufOffset, or.bufOffset + int64(len(or.buf))
}
