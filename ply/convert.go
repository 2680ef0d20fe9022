package ply

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// decoder converts one raw scalar value into a float64. ASCII tokens
// go through token, binary record cursors through at; the header
// decides which one the body decoder calls. A decoder is built once
// per declared property and is immutable.
type decoder struct {
	typ       ScalarType
	little    bool
	normalize bool
}

// newDecoder builds a decoder for one declared property. Normalization
// divides integer input by 2^(8*size), mapping the full unsigned range
// of the type onto [0,1); it is never applied to float or double
// properties.
func newDecoder(typ ScalarType, little, normalize bool) decoder {
	return decoder{
		typ:       typ,
		little:    little,
		normalize: normalize && typ.IsInteger(),
	}
}

// token decodes one ASCII token. A non-numeric token is an error, not
// a zero.
func (d decoder) token(tok string) (float64, error) {
	var v float64

	switch {
	case !d.typ.IsInteger():
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("ply: bad %s token %q", d.typ, tok)
		}
		v = f

	case d.typ.IsSigned():
		n, err := strconv.ParseInt(tok, 10, 8*d.typ.Size())
		if err != nil {
			return 0, fmt.Errorf("ply: bad %s token %q", d.typ, tok)
		}
		v = float64(n)

	default:
		n, err := strconv.ParseUint(tok, 10, 8*d.typ.Size())
		if err != nil {
			return 0, fmt.Errorf("ply: bad %s token %q", d.typ, tok)
		}
		v = float64(n)
	}

	return d.scale(v), nil
}

// at decodes the scalar at byte offset off of a binary record.
func (d decoder) at(buf []byte, off int) (float64, error) {
	n := d.typ.Size()
	if off < 0 || off+n > len(buf) {
		return 0, fmt.Errorf("ply: truncated %s value at byte %d", d.typ, off)
	}

	var order binary.ByteOrder = binary.BigEndian
	if d.little {
		order = binary.LittleEndian
	}

	var v float64
	switch d.typ {
	case Char:
		v = float64(int8(buf[off]))
	case UChar:
		v = float64(buf[off])
	case Short:
		v = float64(int16(order.Uint16(buf[off:])))
	case UShort:
		v = float64(order.Uint16(buf[off:]))
	case Int:
		v = float64(int32(order.Uint32(buf[off:])))
	case UInt:
		v = float64(order.Uint32(buf[off:]))
	case Float:
		v = float64(math.Float32frombits(order.Uint32(buf[off:])))
	case Double:
		v = math.Float64frombits(order.Uint64(buf[off:]))
	}

	return d.scale(v), nil
}

func (d decoder) scale(v float64) float64 {
	if d.normalize {
		return v / float64(uint64(1)<<(8*d.typ.Size()))
	}
	return v
}
