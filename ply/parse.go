package ply

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMagicMismatch reports input that does not start with the
	// "ply" magic line.
	ErrMagicMismatch = errors.New("ply: missing ply magic")

	// ErrNotSupported reports a format variant the decoder does not
	// handle end to end.
	ErrNotSupported = errors.New("ply: format not supported")

	// ErrEmptyMesh reports a structurally valid file that decoded to
	// zero positions or zero indices.
	ErrEmptyMesh = errors.New("ply: empty mesh")
)

// Parse decodes a complete PLY file held in memory and returns the
// mesh together with the header it was decoded under.
//
// Errors are fatal: on any failure no partial Mesh is returned. Binary
// formats are rejected with ErrNotSupported.
func Parse(input string) (*Mesh, *Header, error) {
	if !strings.HasPrefix(input, "ply") {
		return nil, nil, ErrMagicMismatch
	}

	lines := splitLines(input)

	h, err := parseHeaderLines(lines)
	if err != nil {
		return nil, nil, err
	}

	if !h.ASCII {
		return nil, h, fmt.Errorf("%w: %s", ErrNotSupported, h.Format)
	}

	mesh, err := decodeBody(lines, h)
	if err != nil {
		return nil, h, err
	}

	if len(mesh.Positions) == 0 || len(mesh.Indices) == 0 {
		return nil, h, ErrEmptyMesh
	}

	return mesh, h, nil
}
