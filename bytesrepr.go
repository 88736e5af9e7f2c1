package caspergo

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Option tags
const (
	OptionTagNone byte = 0
	OptionTagSome byte = 1
)

// Decoder reads values in the host's binary representation from a byte slice.
type Decoder struct {
	buf []byte
	off int
}

// NewDecoder returns a Decoder reading from b.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.off
}

// Finish fails with ErrLeftOverBytes if anything is left unread.
func (d *Decoder) Finish() error {
	if d.Remaining() != 0 {
		return fmt.Errorf("%d trailing bytes: %w", d.Remaining(), ErrLeftOverBytes)
	}
	return nil
}

// Bytes reads n raw bytes.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, ErrEarlyEndOfStream
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

// U8 reads a single byte.
func (d *Decoder) U8() (uint8, error) {
	b, err := d.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U32 reads a little-endian u32.
func (d *Decoder) U32() (uint32, error) {
	b, err := d.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U64 reads a little-endian u64.
func (d *Decoder) U64() (uint64, error) {
	b, err := d.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Bool reads a single byte that must be 0 or 1.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.U8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrFormatting
	}
}

// String reads a u32 length prefix followed by UTF-8 bytes.
func (d *Decoder) String() (string, error) {
	n, err := d.U32()
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(d.Remaining()) {
		return "", ErrEarlyEndOfStream
	}
	b, _ := d.Bytes(int(n))
	if !utf8.Valid(b) {
		return "", ErrFormatting
	}
	return string(b), nil
}

// OptionTag reads an Option tag and reports whether a value follows.
func (d *Decoder) OptionTag() (bool, error) {
	tag, err := d.U8()
	if err != nil {
		return false, err
	}
	switch tag {
	case OptionTagNone:
		return false, nil
	case OptionTagSome:
		return true, nil
	default:
		return false, ErrFormatting
	}
}

// Encoder appends values in the host's binary representation.
type Encoder struct {
	buf []byte
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Raw appends b without a length prefix.
func (e *Encoder) Raw(b []byte) *Encoder {
	e.buf = append(e.buf, b...)
	return e
}

// U8 appends a single byte.
func (e *Encoder) U8(v uint8) *Encoder {
	e.buf = append(e.buf, v)
	return e
}

// U32 appends v as a little-endian u32.
func (e *Encoder) U32(v uint32) *Encoder {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
	return e
}

// U64 appends v as a little-endian u64.
func (e *Encoder) U64(v uint64) *Encoder {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
	return e
}

// Bool appends v as 1 or 0.
func (e *Encoder) Bool(v bool) *Encoder {
	if v {
		return e.U8(1)
	}
	return e.U8(0)
}

// String appends s with a u32 length prefix.
func (e *Encoder) String(s string) *Encoder {
	e.U32(uint32(len(s)))
	e.buf = append(e.buf, s...)
	return e
}

// DecodeU8 decodes a complete u8 value.
func DecodeU8(b []byte) (uint8, error) {
	d := NewDecoder(b)
	v, err := d.U8()
	if err != nil {
		return 0, err
	}
	return v, d.Finish()
}

// DecodeU32 decodes a complete u32 value.
func DecodeU32(b []byte) (uint32, error) {
	d := NewDecoder(b)
	v, err := d.U32()
	if err != nil {
		return 0, err
	}
	return v, d.Finish()
}

// DecodeString decodes a complete string value.
func DecodeString(b []byte) (string, error) {
	d := NewDecoder(b)
	v, err := d.String()
	if err != nil {
		return "", err
	}
	return v, d.Finish()
}

// EncodeString returns the serialized form of s.
func EncodeString(s string) []byte {
	return new(Encoder).String(s).Bytes()
}
