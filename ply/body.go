package ply

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedBody reports a body whose record count disagrees with
// the counts the header declared.
var ErrMalformedBody = errors.New("ply: malformed body")

// FaceError reports a face record whose leading count does not match
// the number of indices on the line.
type FaceError struct {
	Expected int
	Actual   int
}

func (e *FaceError) Error() string {
	return fmt.Sprintf("ply: face declares %d indices, has %d", e.Expected, e.Actual)
}

// decodeBody decodes the ASCII data section under the header's schema.
//
// The first VertexCount lines after end_header are vertex records; a
// blank line among them consumes its slot but contributes no values.
// Every non-blank line after the vertex section is a face record.
func decodeBody(lines []string, h *Header) (*Mesh, error) {
	body := lines[h.endHeader+1:]

	vertexLines := body
	if len(vertexLines) > h.VertexCount {
		vertexLines = vertexLines[:h.VertexCount]
	}

	var faceLines []string
	if len(body) > h.VertexCount {
		for _, line := range body[h.VertexCount:] {
			if strings.TrimSpace(line) != "" {
				faceLines = append(faceLines, line)
			}
		}
	}

	if len(vertexLines)+len(faceLines) != h.VertexCount+h.FaceCount {
		return nil, fmt.Errorf("%w: %d records for %d vertices + %d faces",
			ErrMalformedBody, len(vertexLines)+len(faceLines), h.VertexCount, h.FaceCount)
	}

	mesh := &Mesh{}

	for _, line := range vertexLines {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) < len(h.lut) {
			return nil, fmt.Errorf("%w: vertex record %q has %d values, schema declares %d",
				ErrMalformedBody, line, len(tokens), len(h.lut))
		}
		for i, setter := range h.lut {
			if err := setter.apply(mesh, tokens[i]); err != nil {
				return nil, err
			}
		}
	}

	for _, line := range faceLines {
		if err := decodeFace(mesh, h, line); err != nil {
			return nil, err
		}
	}

	return mesh, nil
}

func decodeFace(mesh *Mesh, h *Header, line string) error {
	tokens := strings.Fields(line)

	count, err := h.countDec.token(tokens[0])
	if err != nil {
		return err
	}
	expected := int(count)

	if actual := len(tokens) - 1; actual != expected {
		return &FaceError{Expected: expected, Actual: actual}
	}

	// Indices are appended as declared; faces with more than 3
	// indices are not re-triangulated here.
	for _, tok := range tokens[1:] {
		v, err := h.indexDec.token(tok)
		if err != nil {
			return err
		}
		mesh.Indices = append(mesh.Indices, int(v))
	}
	mesh.FaceSizes = append(mesh.FaceSizes, expected)

	return nil
}
