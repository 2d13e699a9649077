// Package borsh implements the Borsh binary layout: a compact,
// field-by-field, little-endian encoding with no field names, no tags,
// and no versioning.
//
// LAYOUT
// ──────
//
//	u8       1 byte
//	u32/i32  4 bytes, little-endian
//	u64      8 bytes, little-endian
//	f64      8 bytes, IEEE 754 bits little-endian; NaN is rejected
//	enum     u8 variant index
//	string   u32 byte length, then the UTF-8 bytes
//	[]byte   u32 length, then the bytes
//
// A record is simply its fields written one after another in
// declaration order. Records opt in by implementing Encodable and
// Decodable; the package never uses reflection.
//
// Every failure while decoding wraps ErrDecode, so callers only need a
// single errors.Is check.
package borsh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// ErrDecode is returned (wrapped) for any input that does not match the
// expected layout: short input, oversized length prefix, invalid UTF-8,
// or trailing bytes.
var ErrDecode = errors.New("borsh: malformed input")

// MaxLength caps string and byte-slice length prefixes so that corrupt
// input cannot make the decoder allocate gigabytes.
const MaxLength = 1 << 24

// Encodable is implemented by records that can write themselves field by
// field.
type Encodable interface {
	EncodeBorsh(e *Encoder)
}

// Decodable is implemented by records that can read themselves back.
// The receiver must be a pointer.
type Decodable interface {
	DecodeBorsh(d *Decoder)
}

// Marshal encodes v into a new byte slice.
func Marshal(v Encodable) ([]byte, error) {
	var buf bytes.Buffer

	e := NewEncoder(&buf)
	v.EncodeBorsh(e)
	if _, err := e.Flush(); err != nil {
		return nil, fmt.Errorf("borsh.Marshal: %w", err)
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes data into v. The whole input must be consumed:
// leftover bytes mean data was not produced for v's layout.
func Unmarshal(data []byte, v Decodable) error {
	d := NewDecoder(bytes.NewReader(data))
	v.DecodeBorsh(d)

	if err := d.Err(); err != nil {
		return err
	}

	if rest := int64(len(data)) - d.Len(); rest != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrDecode, rest)
	}

	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoder writes Borsh values to an underlying io.Writer.
//
// STICKY ERRORS:
// ──────────────
// Rather than returning an error from every Write* call, the encoder
// remembers the first failure and turns every later call into a no-op.
// The caller checks once, at Flush. This keeps EncodeBorsh methods a
// plain list of field writes.
// ─────────────────────────────────────────────────────────────────────────────
type Encoder struct {
	w   *bufio.Writer
	n   int64
	err error
}

// NewEncoder returns an Encoder writing to w. If w is already a
// *bufio.Writer it is used as is.
func NewEncoder(w io.Writer) *Encoder {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &Encoder{w: bw}
}

func (e *Encoder) write(p []byte) {
	if e.err != nil {
		return
	}
	n, err := e.w.Write(p)
	e.n += int64(n)
	e.err = err
}

func (e *Encoder) WriteUint8(v uint8) {
	e.write([]byte{v})
}

func (e *Encoder) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.write(b[:])
}

// WriteInt32 writes v as its two's complement bit pattern.
func (e *Encoder) WriteInt32(v int32) {
	e.WriteUint32(uint32(v))
}

func (e *Encoder) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.write(b[:])
}

// WriteFloat64 writes the IEEE 754 bits of v. NaN has many bit
// patterns, so Borsh refuses it to keep encodings unique.
func (e *Encoder) WriteFloat64(v float64) {
	if math.IsNaN(v) {
		e.fail(errors.New("borsh: NaN is not encodable"))
		return
	}
	e.WriteUint64(math.Float64bits(v))
}

// WriteString writes a u32 length prefix followed by the bytes of s.
func (e *Encoder) WriteString(s string) {
	if len(s) > MaxLength {
		e.fail(fmt.Errorf("borsh: string length %d exceeds %d", len(s), MaxLength))
		return
	}
	e.WriteUint32(uint32(len(s)))
	e.write([]byte(s))
}

// WriteBytes writes a u32 length prefix followed by p.
func (e *Encoder) WriteBytes(p []byte) {
	if len(p) > MaxLength {
		e.fail(fmt.Errorf("borsh: byte slice length %d exceeds %d", len(p), MaxLength))
		return
	}
	e.WriteUint32(uint32(len(p)))
	e.write(p)
}

func (e *Encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Flush pushes buffered bytes to the underlying writer and returns the
// total number of bytes encoded along with the first error seen.
func (e *Encoder) Flush() (int64, error) {
	if e.err != nil {
		return e.n, e.err
	}
	if err := e.w.Flush(); err != nil {
		e.err = err
	}
	return e.n, e.err
}

// Decoder reads Borsh values from an underlying io.Reader. Like Encoder
// it keeps the first error and returns zero values afterwards.
//
// The decoder reads exactly the bytes it needs and never buffers ahead,
// so Len is always the precise number of bytes consumed.
type Decoder struct {
	r   io.Reader
	n   int64
	err error
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Err returns the first decoding error, always wrapping ErrDecode.
func (d *Decoder) Err() error { return d.err }

// Fail records err as the decoding error unless one is already set.
// Records use it to reject values that are well-formed bytes but not a
// valid instance, such as an unknown enum index. err should wrap
// ErrDecode.
func (d *Decoder) Fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Len returns the number of bytes consumed so far.
func (d *Decoder) Len() int64 { return d.n }

func (d *Decoder) read(p []byte) bool {
	if d.err != nil {
		return false
	}

	n, err := io.ReadFull(d.r, p)
	d.n += int64(n)

	if err != nil {
		// io.EOF and io.ErrUnexpectedEOF both mean the input ended
		// before the record did.
		d.err = fmt.Errorf("%w: need %d bytes at offset %d, got %d: %v",
			ErrDecode, len(p), d.n-int64(n), n, err)
		return false
	}

	return true
}

func (d *Decoder) ReadUint8() uint8 {
	var b [1]byte
	if !d.read(b[:]) {
		return 0
	}
	return b[0]
}

func (d *Decoder) ReadUint32() uint32 {
	var b [4]byte
	if !d.read(b[:]) {
		return 0
	}
	return binary.LittleEndian.Uint32(b[:])
}

func (d *Decoder) ReadInt32() int32 {
	return int32(d.ReadUint32())
}

func (d *Decoder) ReadUint64() uint64 {
	var b [8]byte
	if !d.read(b[:]) {
		return 0
	}
	return binary.LittleEndian.Uint64(b[:])
}

func (d *Decoder) ReadFloat64() float64 {
	bits := d.ReadUint64()
	if d.err != nil {
		return 0
	}
	v := math.Float64frombits(bits)
	if math.IsNaN(v) {
		d.err = fmt.Errorf("%w: NaN at offset %d", ErrDecode, d.n-8)
		return 0
	}
	return v
}

// ReadBytes reads a length-prefixed byte slice. A zero length yields nil.
func (d *Decoder) ReadBytes() []byte {
	size := d.length()
	if d.err != nil || size == 0 {
		return nil
	}

	p := make([]byte, size)
	if !d.read(p) {
		return nil
	}
	return p
}

// ReadString reads a length-prefixed string and rejects invalid UTF-8.
func (d *Decoder) ReadString() string {
	size := d.length()
	if d.err != nil || size == 0 {
		return ""
	}

	p := make([]byte, size)
	if !d.read(p) {
		return ""
	}

	if !utf8.Valid(p) {
		d.err = fmt.Errorf("%w: invalid UTF-8 in string at offset %d", ErrDecode, d.n-int64(size))
		return ""
	}
	return string(p)
}

func (d *Decoder) length() uint32 {
	size := d.ReadUint32()
	if d.err == nil && size > MaxLength {
		d.err = fmt.Errorf("%w: length prefix %d exceeds %d", ErrDecode, size, MaxLength)
		return 0
	}
	return size
}
