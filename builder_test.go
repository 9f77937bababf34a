package tiffdir

import (
	"bytes"
	"encoding/binary"
)

// Test helpers that assemble TIFF files byte by byte. Entries with more
// than four payload bytes are placed out of line after the IFD block, at
// even offsets, exactly as a conforming writer would lay them out.

type entry struct {
	tag   uint16
	typ   Type
	count uint32
	data  []byte
}

type fileBuilder struct {
	order binary.ByteOrder
	buf   []byte
}

func newFileBuilder(order binary.ByteOrder) *fileBuilder {
	b := &fileBuilder{order: order, buf: make([]byte, 8)}
	if order == binary.LittleEndian {
		b.buf[0], b.buf[1] = 'I', 'I'
	} else {
		b.buf[0], b.buf[1] = 'M', 'M'
	}
	order.PutUint16(b.buf[2:4], 42)
	return b
}

// setFirstIFD patches the header's first-IFD pointer.
func (b *fileBuilder) setFirstIFD(off uint32) {
	b.order.PutUint32(b.buf[4:8], off)
}

// addIFD appends an IFD at the current end of the file and returns its
// offset. Out-of-line values land after the IFD's trailing next pointer.
func (b *fileBuilder) addIFD(entries []entry, next uint32) uint32 {
	if len(b.buf)%2 != 0 {
		b.buf = append(b.buf, 0)
	}
	off := uint32(len(b.buf))
	block := make([]byte, 2+12*len(entries)+4)
	b.order.PutUint16(block, uint16(len(entries)))
	b.order.PutUint32(block[len(block)-4:], next)
	b.buf = append(b.buf, block...)

	for i, e := range entries {
		pos := int(off) + 2 + 12*i
		b.order.PutUint16(b.buf[pos:], e.tag)
		b.order.PutUint16(b.buf[pos+2:], uint16(e.typ))
		b.order.PutUint32(b.buf[pos+4:], e.count)
		if len(e.data) <= 4 {
			copy(b.buf[pos+8:pos+12], e.data)
			continue
		}
		if len(b.buf)%2 != 0 {
			b.buf = append(b.buf, 0)
		}
		b.order.PutUint32(b.buf[pos+8:], uint32(len(b.buf)))
		b.buf = append(b.buf, e.data...)
	}
	return off
}

// setNext repoints an already written IFD's next-IFD pointer.
func (b *fileBuilder) setNext(ifdOff uint32, next uint32) {
	count := int(b.order.Uint16(b.buf[ifdOff:]))
	b.order.PutUint32(b.buf[int(ifdOff)+2+12*count:], next)
}

// append places raw bytes (image strips, deliberately misplaced values)
// at the current end and returns their offset.
func (b *fileBuilder) append(raw []byte) uint32 {
	if len(b.buf)%2 != 0 {
		b.buf = append(b.buf, 0)
	}
	off := uint32(len(b.buf))
	b.buf = append(b.buf, raw...)
	return off
}

func (b *fileBuilder) reader() *bytes.Reader { return bytes.NewReader(b.buf) }

// Payload encoders.

func shorts(order binary.ByteOrder, vs ...uint16) []byte {
	out := make([]byte, 2*len(vs))
	for i, v := range vs {
		order.PutUint16(out[2*i:], v)
	}
	return out
}

func longs(order binary.ByteOrder, vs ...uint32) []byte {
	out := make([]byte, 4*len(vs))
	for i, v := range vs {
		order.PutUint32(out[4*i:], v)
	}
	return out
}

func rats(order binary.ByteOrder, pairs ...uint32) []byte {
	return longs(order, pairs...)
}

func ascii(s string) []byte { return append([]byte(s), 0) }

func shortEntry(order binary.ByteOrder, tag uint16, vs ...uint16) entry {
	return entry{tag: tag, typ: SHORT, count: uint32(len(vs)), data: shorts(order, vs...)}
}

func longEntry(order binary.ByteOrder, tag uint16, vs ...uint32) entry {
	return entry{tag: tag, typ: LONG, count: uint32(len(vs)), data: longs(order, vs...)}
}

func ratEntry(order binary.ByteOrder, tag uint16, pairs ...uint32) entry {
	return entry{tag: tag, typ: RATIONAL, count: uint32(len(pairs) / 2), data: rats(order, pairs...)}
}

func asciiEntry(tag uint16, s string) entry {
	d := ascii(s)
	return entry{tag: tag, typ: ASCII, count: uint32(len(d)), data: d}
}

func byteEntry(tag uint16, vs ...byte) entry {
	return entry{tag: tag, typ: BYTE, count: uint32(len(vs)), data: vs}
}

func undefEntry(tag uint16, vs ...byte) entry {
	return entry{tag: tag, typ: UNDEFINED, count: uint32(len(vs)), data: vs}
}
