package types

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aanand-mishra/lang-basics/internal/codec/borsh"
)

// Account is the record used by the binary-encoding exercise.
//
// It implements the standard encoding.BinaryMarshaler /
// encoding.BinaryUnmarshaler pair plus io.WriterTo / io.ReaderFrom, so
// it can be encoded to a byte slice or streamed straight to a file or
// socket.
//
// Wire layout (Borsh):
//
//	name    u32 length + UTF-8 bytes
//	age     u32 little-endian
//	pub_key u32 length + raw bytes
type Account struct {
	Name   string `json:"name"    validate:"required"`
	Age    uint32 `json:"age"`
	PubKey []byte `json:"pub_key" validate:"required"`
}

// Clone returns a deep copy. A plain assignment would share the PubKey
// backing array between the two values.
func (a Account) Clone() Account {
	c := a
	if a.PubKey != nil {
		c.PubKey = append([]byte(nil), a.PubKey...)
	}
	return c
}

// Equal compares field by field. A nil and an empty PubKey are equal.
func (a Account) Equal(other Account) bool {
	return a.Name == other.Name &&
		a.Age == other.Age &&
		bytes.Equal(a.PubKey, other.PubKey)
}

// BinarySize returns the exact number of bytes MarshalBinary produces.
func (a Account) BinarySize() int {
	return 4 + len(a.Name) + 4 + 4 + len(a.PubKey)
}

func (a Account) EncodeBorsh(e *borsh.Encoder) {
	e.WriteString(a.Name)
	e.WriteUint32(a.Age)
	e.WriteBytes(a.PubKey)
}

// DecodeBorsh reads the fields in the same order EncodeBorsh wrote them.
// a is only overwritten when every field decoded successfully.
func (a *Account) DecodeBorsh(d *borsh.Decoder) {
	var tmp Account
	tmp.Name = d.ReadString()
	tmp.Age = d.ReadUint32()
	tmp.PubKey = d.ReadBytes()

	if d.Err() == nil {
		*a = tmp
	}
}

func (a Account) MarshalBinary() ([]byte, error) {
	return borsh.Marshal(a)
}

// UnmarshalBinary leaves a untouched unless p decodes cleanly, trailing
// bytes included.
func (a *Account) UnmarshalBinary(p []byte) error {
	var tmp Account
	if err := borsh.Unmarshal(p, &tmp); err != nil {
		return err
	}
	*a = tmp
	return nil
}

func (a Account) WriteTo(w io.Writer) (int64, error) {
	e := borsh.NewEncoder(w)
	a.EncodeBorsh(e)
	return e.Flush()
}

func (a *Account) ReadFrom(r io.Reader) (int64, error) {
	d := borsh.NewDecoder(r)
	a.DecodeBorsh(d)
	return d.Len(), d.Err()
}

// Point uses the same layout rules: two i32 values, x then y.

func (p Point) EncodeBorsh(e *borsh.Encoder) {
	e.WriteInt32(p.X)
	e.WriteInt32(p.Y)
}

func (p *Point) DecodeBorsh(d *borsh.Decoder) {
	x, y := d.ReadInt32(), d.ReadInt32()
	if d.Err() == nil {
		p.X, p.Y = x, y
	}
}

func (p Point) MarshalBinary() ([]byte, error) {
	return borsh.Marshal(p)
}

func (p *Point) UnmarshalBinary(data []byte) error {
	return borsh.Unmarshal(data, p)
}

// Product is id u32, name string, price f64.

func (p Product) EncodeBorsh(e *borsh.Encoder) {
	e.WriteUint32(p.ID)
	e.WriteString(p.Name)
	e.WriteFloat64(p.Price)
}

func (p *Product) DecodeBorsh(d *borsh.Decoder) {
	var tmp Product
	tmp.ID = d.ReadUint32()
	tmp.Name = d.ReadString()
	tmp.Price = d.ReadFloat64()
	if d.Err() == nil {
		*p = tmp
	}
}

func (p Product) MarshalBinary() ([]byte, error) {
	return borsh.Marshal(p)
}

func (p *Product) UnmarshalBinary(data []byte) error {
	return borsh.Unmarshal(data, p)
}

// Status is a unit enum, so it encodes as its one-byte variant index.

func (s Status) EncodeBorsh(e *borsh.Encoder) {
	e.WriteUint8(uint8(s))
}

// DecodeBorsh rejects indexes with no matching variant.
func (s *Status) DecodeBorsh(d *borsh.Decoder) {
	v := Status(d.ReadUint8())
	if d.Err() != nil {
		return
	}
	if _, ok := statusNames[v]; !ok {
		d.Fail(fmt.Errorf("%w: unknown status variant %d", borsh.ErrDecode, uint8(v)))
		return
	}
	*s = v
}

func (s Status) MarshalBinary() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return borsh.Marshal(s)
}

func (s *Status) UnmarshalBinary(data []byte) error {
	return borsh.Unmarshal(data, s)
}
