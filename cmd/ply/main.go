// ply - ASCII PLY mesh CLI tool
//
// Usage:
//
//	ply info [file]     Print header and mesh statistics
//	ply to-obj [file]   Convert an ASCII PLY mesh to Wavefront OBJ
//	ply version         Print version info
//
// If no file is given, reads from stdin. Gzipped input (.ply.gz) is
// detected by magic and decompressed transparently.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/Neumenon/ply/ply"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var input io.Reader = os.Stdin

	fileArg := ""
	for _, arg := range os.Args[2:] {
		if !strings.HasPrefix(arg, "-") && arg != "-" {
			fileArg = arg
		}
	}

	if fileArg != "" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	switch cmd {
	case "info":
		cmdInfo(input)
	case "to-obj":
		cmdToOBJ(input)
	case "version", "-v", "--version":
		fmt.Printf("ply %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `ply - ASCII PLY mesh CLI tool

Usage:
  ply info [file]     Print header and mesh statistics
  ply to-obj [file]   Convert an ASCII PLY mesh to Wavefront OBJ
  ply version         Print version info

If no file is given, reads from stdin. Gzipped input is decompressed
transparently.

Examples:
  ply info bunny.ply
  ply to-obj scan.ply.gz > scan.obj
`)
}

// cmdInfo: header summary plus mesh statistics for ASCII files.
func cmdInfo(r io.Reader) {
	text := readInput(r)

	h, err := ply.ParseHeader(text)
	if err != nil {
		fatal("parse header: %v", err)
	}

	fmt.Printf("format:    %s %s\n", h.Format, h.Version)
	fmt.Printf("vertices:  %d\n", h.VertexCount)
	fmt.Printf("faces:     %d\n", h.FaceCount)
	for _, c := range h.Comments {
		fmt.Printf("comment:   %s\n", c)
	}

	if !h.ASCII {
		fmt.Println("body:      binary (not decoded)")
		return
	}

	mesh, _, err := ply.Parse(text)
	if errors.Is(err, ply.ErrEmptyMesh) {
		fmt.Println("mesh:      empty (no positions or no indices)")
		return
	}
	if err != nil {
		fatal("parse: %v", err)
	}

	fmt.Printf("positions: %d\n", len(mesh.Positions)/3)
	fmt.Printf("normals:   %d\n", len(mesh.Normals)/3)
	fmt.Printf("texcoords: %d\n", len(mesh.Texcoords)/2)
	fmt.Printf("colors:    %d\n", len(mesh.Colors)/3)
	fmt.Printf("indices:   %d\n", len(mesh.Indices))
}

// cmdToOBJ: ASCII PLY -> Wavefront OBJ on stdout.
func cmdToOBJ(r io.Reader) {
	text := readInput(r)

	mesh, _, err := ply.Parse(text)
	if err != nil {
		fatal("parse: %v", err)
	}

	fmt.Print(ply.EncodeOBJ(mesh))
}

// readInput reads the whole payload, decompressing gzip input when the
// stream starts with the gzip magic.
func readInput(r io.Reader) string {
	br := bufio.NewReader(r)

	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			fatal("gunzip: %v", err)
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			fatal("read input: %v", err)
		}
		return string(data)
	}

	data, err := io.ReadAll(br)
	if err != nil {
		fatal("read input: %v", err)
	}
	return string(data)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ply: "+format+"\n", args...)
	os.Exit(1)
}
