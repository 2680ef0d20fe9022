package ply

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedHeader reports a header that cannot be understood, most
// commonly a missing end_header marker.
var ErrMalformedHeader = errors.New("ply: malformed header")

const endHeaderMarker = "end_header"

// attrKind selects the destination attribute of a vertex property.
type attrKind uint8

const (
	attrPosition attrKind = iota
	attrNormal
	attrTexcoord
	attrColor
)

// propertySetter decodes one vertex property value and appends it to
// its destination attribute. Dispatch over kind happens at append time.
type propertySetter struct {
	kind attrKind
	dec  decoder
}

func (s propertySetter) apply(m *Mesh, tok string) error {
	v, err := s.dec.token(tok)
	if err != nil {
		return err
	}
	switch s.kind {
	case attrPosition:
		m.Positions = append(m.Positions, float32(v))
	case attrNormal:
		m.Normals = append(m.Normals, float32(v))
	case attrTexcoord:
		m.Texcoords = append(m.Texcoords, float32(v))
	case attrColor:
		m.Colors = append(m.Colors, float32(v))
	}
	return nil
}

// attrForName maps a vertex property name to its attribute. Color
// channels request normalization; nothing else does. The second result
// is false for names outside the recognized set, which are skipped
// without error.
func attrForName(name string) (kind attrKind, normalize, ok bool) {
	switch name {
	case "x", "y", "z":
		return attrPosition, false, true
	case "nx", "ny", "nz":
		return attrNormal, false, true
	case "s", "t":
		return attrTexcoord, false, true
	case "red", "green", "blue":
		return attrColor, true, true
	}
	return 0, false, false
}

// Header is the decode schema built from a PLY header. It is
// constructed once per parse and never mutated afterwards.
type Header struct {
	Format       string // raw format token ("ascii", "binary_little_endian", ...)
	Version      string
	ASCII        bool
	LittleEndian bool
	Comments     []string // comment and obj_info lines, text only, in order

	VertexCount int
	FaceCount   int

	lut       []propertySetter // one per recognized vertex property, in file order
	countDec  decoder          // face list: leading index-count value
	indexDec  decoder          // face list: index values
	endHeader int              // line index of end_header
}

// headerState tracks which element declaration the scan is inside of.
// PLY's grammar is flat: an element line opens an implicit scope that
// extends to the next element line, and property lines belong to the
// innermost open scope.
type headerState uint8

const (
	statePreamble headerState = iota
	stateVertex
	stateFace
	stateOther
)

// ParseHeader parses the header portion of a complete PLY file.
func ParseHeader(input string) (*Header, error) {
	return parseHeaderLines(splitLines(input))
}

func parseHeaderLines(lines []string) (*Header, error) {
	end := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == endHeaderMarker {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, fmt.Errorf("%w: no %s line", ErrMalformedHeader, endHeaderMarker)
	}

	h := &Header{endHeader: end}

	// Conventional defaults for the face list types, so a header that
	// omits the property list line still decodes.
	h.countDec = newDecoder(UChar, false, false)
	h.indexDec = newDecoder(Int, false, false)

	state := statePreamble

	for _, line := range lines[:end] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "format":
			if len(fields) >= 2 {
				h.Format = fields[1]
				h.ASCII = strings.EqualFold(fields[1], "ascii")
				h.LittleEndian = strings.Contains(strings.ToLower(fields[1]), "little")
			}
			if len(fields) >= 3 {
				h.Version = fields[2]
			}

		case "comment", "obj_info":
			h.Comments = append(h.Comments, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0])))

		case "element":
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: bad element line %q", ErrMalformedHeader, line)
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("%w: bad element count %q", ErrMalformedHeader, fields[2])
			}
			switch fields[1] {
			case "vertex":
				h.VertexCount = count
				state = stateVertex
			case "face":
				h.FaceCount = count
				state = stateFace
			default:
				state = stateOther
			}

		case "property":
			if err := h.addProperty(fields, state); err != nil {
				return nil, err
			}
		}
	}

	return h, nil
}

// addProperty classifies one property declaration by the element scope
// it appears in. Properties of elements other than vertex and face are
// ignored, as are preamble properties.
func (h *Header) addProperty(fields []string, state headerState) error {
	switch state {
	case stateVertex:
		if len(fields) < 3 {
			return fmt.Errorf("%w: bad property line %q", ErrMalformedHeader, strings.Join(fields, " "))
		}
		typ, err := ParseScalarType(fields[1])
		if err != nil {
			return err
		}
		kind, normalize, ok := attrForName(fields[len(fields)-1])
		if !ok {
			// Unrecognized vertex property: skipped on purpose, no
			// setter appended.
			return nil
		}
		h.lut = append(h.lut, propertySetter{
			kind: kind,
			dec:  newDecoder(typ, h.LittleEndian, normalize),
		})

	case stateFace:
		if len(fields) >= 4 && fields[1] == "list" {
			countTyp, err := ParseScalarType(fields[2])
			if err != nil {
				return err
			}
			indexTyp, err := ParseScalarType(fields[3])
			if err != nil {
				return err
			}
			h.countDec = newDecoder(countTyp, h.LittleEndian, false)
			h.indexDec = newDecoder(indexTyp, h.LittleEndian, false)
		}
	}
	return nil
}

// splitLines splits input into lines, tolerating CRLF endings.
func splitLines(input string) []string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
