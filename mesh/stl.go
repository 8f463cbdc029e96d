package mesh

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/evancho/slicecore/internal/errs"
	"github.com/evancho/slicecore/math3d"
)

// ReadASCIISTL parses ASCII STL text into a Mesh. It recognizes the
// tokens solid, facet normal, outer loop, vertex, and endloop, and
// commits each triangle at endloop; endfacet closes the facet and
// endsolid is ignored. Any other token is ignored.
// The reader is strict on ordering within a facet (vertex outside a
// facet/loop is a parse error) but lenient on whitespace, and
// case-insensitive on token names.
//
// A malformed numeric literal, a loop with other than three vertices, or
// an I/O error is a fatal parse error: no partial mesh is returned.
func ReadASCIISTL(r io.Reader) (*Mesh, error) {
	estimatedFaces, r := estimateFaces(r)

	br := bufio.NewReader(r)
	if looksBinary(br) {
		return nil, errs.New(errs.InputParse, fmt.Errorf("binary STL is not accepted"))
	}

	m := New("")
	m.Triangles = make([]Triangle, 0, estimatedFaces)
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	inFacet := false
	inLoop := false
	var normal math3d.Vec3
	var verts []math3d.Vec3

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch strings.ToLower(fields[0]) {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) < 5 || strings.ToLower(fields[1]) != "normal" {
				return nil, errs.New(errs.InputParse, fmt.Errorf("line %d: malformed facet normal", lineNum))
			}
			n, err := parseVec3(fields[2], fields[3], fields[4])
			if err != nil {
				return nil, errs.New(errs.InputParse, fmt.Errorf("line %d: %w", lineNum, err))
			}
			normal = n
			inFacet = true
			verts = verts[:0]

		case "outer":
			if !inFacet || len(fields) < 2 || strings.ToLower(fields[1]) != "loop" {
				return nil, errs.New(errs.InputParse, fmt.Errorf("line %d: 'outer loop' outside facet", lineNum))
			}
			inLoop = true

		case "vertex":
			if !inFacet || !inLoop {
				return nil, errs.New(errs.InputParse, fmt.Errorf("line %d: vertex outside facet/loop", lineNum))
			}
			if len(fields) < 4 {
				return nil, errs.New(errs.InputParse, fmt.Errorf("line %d: vertex needs x y z", lineNum))
			}
			v, err := parseVec3(fields[1], fields[2], fields[3])
			if err != nil {
				return nil, errs.New(errs.InputParse, fmt.Errorf("line %d: %w", lineNum, err))
			}
			verts = append(verts, v)

		case "endloop":
			if len(verts) != 3 {
				return nil, errs.New(errs.InputParse, fmt.Errorf("line %d: loop has %d vertices, want 3", lineNum, len(verts)))
			}
			m.Triangles = append(m.Triangles, Triangle{
				V:      [3]math3d.Vec3{verts[0], verts[1], verts[2]},
				Normal: normal,
			})
			inLoop = false
			verts = verts[:0]

		case "endfacet":
			inFacet = false

		case "endsolid":
			// no-op

		default:
			// unknown token, ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.New(errs.IOError, err)
	}

	return m, nil
}

// estimateFaces returns a best-effort facet count for preallocating
// Triangles, and a reader positioned back at the start of the input.
// Only byte-backed readers support a cheap first pass without losing
// the original stream; everything else falls back to no estimate.
func estimateFaces(r io.Reader) (int, io.Reader) {
	switch v := r.(type) {
	case *bytes.Reader:
		data := make([]byte, v.Len())
		_, _ = v.ReadAt(data, 0)
		return bytes.Count(data, []byte("facet")), r
	case *os.File:
		n, err := countFacets(v)
		if err != nil {
			return 0, r
		}
		if _, err := v.Seek(0, io.SeekStart); err != nil {
			return 0, r
		}
		return n, r
	default:
		return 0, r
	}
}

func countFacets(f *os.File) (int, error) {
	scanner := bufio.NewScanner(f)
	count := 0
	for scanner.Scan() {
		count += bytes.Count(scanner.Bytes(), []byte("facet"))
	}
	return count, scanner.Err()
}

func looksBinary(br *bufio.Reader) bool {
	head, _ := br.Peek(512)
	head = bytes.TrimLeft(head, " \t\r\n")
	if len(head) < 5 {
		// Fewer than 5 non-blank bytes: too short to be a useful STL
		// either way; let the normal scan path report the I/O or parse
		// error.
		return false
	}
	return !bytes.EqualFold(head[:5], []byte("solid"))
}

func parseVec3(sx, sy, sz string) (math3d.Vec3, error) {
	x, err := strconv.ParseFloat(sx, 64)
	if err != nil {
		return math3d.Vec3{}, fmt.Errorf("invalid x %q: %w", sx, err)
	}
	y, err := strconv.ParseFloat(sy, 64)
	if err != nil {
		return math3d.Vec3{}, fmt.Errorf("invalid y %q: %w", sy, err)
	}
	z, err := strconv.ParseFloat(sz, 64)
	if err != nil {
		return math3d.Vec3{}, fmt.Errorf("invalid z %q: %w", sz, err)
	}
	return math3d.V3(x, y, z), nil
}

// WriteASCIISTL serializes m back to the ASCII STL token grammar. It is
// used only by the round-trip test; the production pipeline never
// re-emits an STL file.
func (m *Mesh) WriteASCIISTL(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintln(bw, "outer loop")
		for _, v := range t.V {
			fmt.Fprintf(bw, "vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "endloop")
		fmt.Fprintln(bw, "endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)
	return bw.Flush()
}
