package ply

import (
	"fmt"
	"strings"
)

// ScalarType identifies one of PLY's primitive numeric encodings.
type ScalarType uint8

const (
	Float ScalarType = iota
	Double
	Char
	UChar
	Short
	UShort
	Int
	UInt
)

// scalarSizes is the fixed byte-size table for each ScalarType.
var scalarSizes = [...]int{
	Float:  4,
	Double: 8,
	Char:   1,
	UChar:  1,
	Short:  2,
	UShort: 2,
	Int:    4,
	UInt:   4,
}

// String returns the canonical PLY type name.
func (t ScalarType) String() string {
	switch t {
	case Float:
		return "float"
	case Double:
		return "double"
	case Char:
		return "char"
	case UChar:
		return "uchar"
	case Short:
		return "short"
	case UShort:
		return "ushort"
	case Int:
		return "int"
	case UInt:
		return "uint"
	default:
		return "unknown"
	}
}

// Size returns the encoded width of the type in bytes.
func (t ScalarType) Size() int {
	return scalarSizes[t]
}

// IsInteger reports whether the type is an integer encoding.
func (t ScalarType) IsInteger() bool {
	return t != Float && t != Double
}

// IsSigned reports whether the type is a signed integer encoding.
func (t ScalarType) IsSigned() bool {
	return t == Char || t == Short || t == Int
}

// TypeError reports an unrecognized scalar type token in a property
// declaration.
type TypeError struct {
	Token string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("ply: unknown scalar type %q", e.Token)
}

// ParseScalarType resolves a header type token to a ScalarType. Writers
// sometimes suffix type names with bit widths ("uint8", "float32"), so
// numeric characters are stripped before matching; matching is
// case-insensitive.
func ParseScalarType(token string) (ScalarType, error) {
	name := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, token)

	switch strings.ToLower(name) {
	case "float":
		return Float, nil
	case "double":
		return Double, nil
	case "char":
		return Char, nil
	case "uchar":
		return UChar, nil
	case "short":
		return Short, nil
	case "ushort":
		return UShort, nil
	case "int":
		return Int, nil
	case "uint":
		return UInt, nil
	default:
		return 0, &TypeError{Token: token}
	}
}

// Mesh is the decoded vertex/index representation of a PLY file.
//
// Positions always holds 3 floats per vertex. Normals, Texcoords and
// Colors are either empty or hold one full stride (3, 2 and 3) per
// vertex. Indices is the flat concatenation of every face's vertex
// indices; FaceSizes records the index arity of each face record, in
// order, so faces with more than 3 indices can be regrouped by the
// consumer (the decoder never re-triangulates).
type Mesh struct {
	Positions []float32
	Normals   []float32
	Texcoords []float32
	Colors    []float32
	Indices   []int
	FaceSizes []int
}
