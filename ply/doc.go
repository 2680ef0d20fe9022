// Package ply implements a decoder for ASCII PLY (Polygon File Format)
// mesh files.
//
// PLY files carry a line-oriented header describing elements (vertex,
// face) and their typed properties, followed by the element data. The
// decoder turns the header into a decode schema and drives per-token
// decoding under that schema, producing a flat vertex/index Mesh ready
// for a rendering pipeline.
//
// # Header Grammar
//
//	ply
//	format <ascii|binary_little_endian|binary_big_endian> <version>
//	comment <free text>
//	element vertex <N>
//	property <scalar_type> <x|y|z|nx|ny|nz|s|t|red|green|blue>
//	element face <M>
//	property list <count_type> <index_type> vertex_indices
//	end_header
//
// # Attribute Mapping
//
// Vertex property names select the destination attribute:
//   - x, y, z          -> positions (stride 3)
//   - nx, ny, nz       -> normals (stride 3)
//   - s, t             -> texcoords (stride 2)
//   - red, green, blue -> colors (stride 3, integer channels
//     normalized to [0,1])
//
// Property names outside this set are skipped without error.
//
// # Errors
//
// Parsing is all-or-nothing: every failure is fatal to the call and no
// partial Mesh is returned. Structural failures are reported through
// sentinel errors (ErrMagicMismatch, ErrMalformedHeader,
// ErrMalformedBody, ErrNotSupported, ErrEmptyMesh) and typed errors
// (*TypeError, *FaceError) compatible with errors.Is and errors.As.
//
// # Binary Files
//
// The scalar conversion layer decodes both byte orders, but Parse
// currently rejects binary_little_endian and binary_big_endian input
// with ErrNotSupported rather than decode a format variant that has no
// end-to-end coverage.
package ply
