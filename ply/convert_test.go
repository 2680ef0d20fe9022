package ply

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestDecoderToken(t *testing.T) {
	tests := []struct {
		name string
		typ  ScalarType
		tok  string
		want float64
	}{
		{"float", Float, "1.5", 1.5},
		{"float negative", Float, "-0.25", -0.25},
		{"float exponent", Double, "2.5e2", 250},
		{"double", Double, "3.14159", 3.14159},
		{"char", Char, "-128", -128},
		{"uchar", UChar, "255", 255},
		{"short", Short, "-32768", -32768},
		{"ushort", UShort, "65535", 65535},
		{"int", Int, "-2147483648", -2147483648},
		{"uint", UInt, "4294967295", 4294967295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(tt.typ, false, false)
			got, err := d.token(tt.tok)
			if err != nil {
				t.Fatalf("token(%q) error: %v", tt.tok, err)
			}
			if got != tt.want {
				t.Errorf("token(%q) = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestDecoderToken_Invalid(t *testing.T) {
	tests := []struct {
		name string
		typ  ScalarType
		tok  string
	}{
		{"non-numeric int", Int, "abc"},
		{"non-numeric float", Float, "x.y"},
		{"float token for int", Int, "1.5"},
		{"negative for unsigned", UChar, "-1"},
		{"out of range", UChar, "256"},
		{"empty", Float, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(tt.typ, false, false)
			if _, err := d.token(tt.tok); err == nil {
				t.Errorf("token(%q) as %s: expected error", tt.tok, tt.typ)
			}
		})
	}
}

func TestDecoderNormalize(t *testing.T) {
	tests := []struct {
		name string
		typ  ScalarType
		tok  string
		want float64
	}{
		{"uchar zero", UChar, "0", 0},
		{"uchar mid", UChar, "128", 0.5},
		{"uchar max", UChar, "255", 255.0 / 256.0},
		{"ushort mid", UShort, "32768", 0.5},
		{"uint mid", UInt, "2147483648", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(tt.typ, false, true)
			got, err := d.token(tt.tok)
			if err != nil {
				t.Fatalf("token(%q) error: %v", tt.tok, err)
			}
			if got != tt.want {
				t.Errorf("token(%q) normalized = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestDecoderNormalize_FloatUntouched(t *testing.T) {
	// Normalization only applies to integer channels; a float color
	// value passes through as-is.
	d := newDecoder(Float, false, true)
	got, err := d.token("0.75")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if got != 0.75 {
		t.Errorf("token = %v, want 0.75", got)
	}
}

func TestDecoderAt(t *testing.T) {
	tests := []struct {
		name   string
		typ    ScalarType
		little bool
		buf    []byte
		want   float64
	}{
		{"uchar", UChar, true, []byte{0xff}, 255},
		{"char", Char, true, []byte{0x80}, -128},
		{"ushort le", UShort, true, le16(0x1234), 0x1234},
		{"ushort be", UShort, false, be16(0x1234), 0x1234},
		{"short le", Short, true, le16(0x8000), -32768},
		{"int be", Int, false, be32(0xfffffffe), -2},
		{"uint le", UInt, true, le32(0xdeadbeef), 0xdeadbeef},
		{"float le", Float, true, le32(math.Float32bits(1.5)), 1.5},
		{"float be", Float, false, be32(math.Float32bits(-2.25)), -2.25},
		{"double le", Double, true, le64(math.Float64bits(3.14159)), 3.14159},
		{"double be", Double, false, be64(math.Float64bits(3.14159)), 3.14159},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(tt.typ, tt.little, false)
			got, err := d.at(tt.buf, 0)
			if err != nil {
				t.Fatalf("at error: %v", err)
			}
			if got != tt.want {
				t.Errorf("at = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecoderAt_Truncated(t *testing.T) {
	d := newDecoder(Int, true, false)
	if _, err := d.at([]byte{1, 2}, 0); err == nil {
		t.Error("at on short buffer: expected error")
	}
	if _, err := d.at(le32(1), 1); err == nil {
		t.Error("at past end: expected error")
	}
}

func le16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func be16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func be64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
