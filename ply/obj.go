package ply

import (
	"fmt"
	"strings"
)

// EncodeOBJ renders a decoded mesh as Wavefront OBJ text. Positions
// become v records, normals vn, texcoords vt, and each face record
// becomes one f record with its original arity. OBJ indices are
// 1-based; position, texcoord and normal all share the vertex index,
// since PLY interleaves them per vertex.
func EncodeOBJ(m *Mesh) string {
	var b strings.Builder

	for i := 0; i+2 < len(m.Positions); i += 3 {
		fmt.Fprintf(&b, "v %g %g %g\n", m.Positions[i], m.Positions[i+1], m.Positions[i+2])
	}
	for i := 0; i+1 < len(m.Texcoords); i += 2 {
		fmt.Fprintf(&b, "vt %g %g\n", m.Texcoords[i], m.Texcoords[i+1])
	}
	for i := 0; i+2 < len(m.Normals); i += 3 {
		fmt.Fprintf(&b, "vn %g %g %g\n", m.Normals[i], m.Normals[i+1], m.Normals[i+2])
	}

	hasT := len(m.Texcoords) > 0
	hasN := len(m.Normals) > 0

	off := 0
	for _, size := range m.FaceSizes {
		b.WriteString("f")
		for _, idx := range m.Indices[off : off+size] {
			n := idx + 1
			switch {
			case hasT && hasN:
				fmt.Fprintf(&b, " %d/%d/%d", n, n, n)
			case hasT:
				fmt.Fprintf(&b, " %d/%d", n, n)
			case hasN:
				fmt.Fprintf(&b, " %d//%d", n, n)
			default:
				fmt.Fprintf(&b, " %d", n)
			}
		}
		b.WriteByte('\n')
		off += size
	}

	return b.String()
}
