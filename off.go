package cubemesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrMalformedOFF = errors.New("malformed OFF data")

const offHeader = "OFF"

// WriteOFF serializes m as ASCII OFF. Coordinates are written fixed-point with six decimals.
func WriteOFF(w io.Writer, m *Mesh) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, offHeader)
	_, _ = fmt.Fprintf(writer, "%d %d 0\n", m.VertexCount(), m.TriangleCount())

	for _, v := range m.vertices {
		_, _ = fmt.Fprintf(writer, "%f %f %f\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, t := range m.triangles {
		_, _ = fmt.Fprintf(writer, "3 %d %d %d\n", t.A, t.B, t.C)
	}

	return writer.Flush()
}

// SaveOFF writes m to fileName. The data goes to a temporary file in the same
// directory that is renamed over fileName only after a complete write, so a failed
// save never leaves a partial file behind. An existing fileName keeps its permission
// bits; a new file gets 0644 regardless of the umask.
func SaveOFF(fileName string, m *Mesh) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(fileName); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(fileName), "."+filepath.Base(fileName)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create OFF file %s: %w", fileName, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteOFF(tmp, m); err != nil {
		return fmt.Errorf("could not write OFF file %s: %w", fileName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("could not write OFF file %s: %w", fileName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("could not write OFF file %s: %w", fileName, err)
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("could not write OFF file %s: %w", fileName, err)
	}
	if err = os.Rename(tmp.Name(), fileName); err != nil {
		return fmt.Errorf("could not create OFF file %s: %w", fileName, err)
	}
	return nil
}

func LoadOFFFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open OFF file %s: %w", fileName, err)
	}
	defer file.Close()

	m, err := ReadOFF(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing OFF file %s: %w", fileName, err)
	}
	return m, nil
}

// offScanner yields the non-empty, non-comment lines of an OFF stream as fields.
type offScanner struct {
	scanner *bufio.Scanner
	line    int
}

func (s *offScanner) next() ([]string, error) {
	for s.scanner.Scan() {
		s.line++
		text := s.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		parts := strings.Fields(text)
		if len(parts) > 0 {
			return parts, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from OFF source: %w", err)
	}
	return nil, io.ErrUnexpectedEOF
}

func (s *offScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", s.line, fmt.Sprintf(format, args...), ErrMalformedOFF)
}

// ReadOFF parses an ASCII OFF stream of triangles into a Mesh.
func ReadOFF(r io.Reader) (*Mesh, error) {
	s := &offScanner{scanner: bufio.NewScanner(r)}

	parts, err := s.next()
	if err != nil {
		return nil, fmt.Errorf("missing header: %w", ErrMalformedOFF)
	}
	if parts[0] != offHeader {
		return nil, s.errorf("expected %q header, got %q", offHeader, parts[0])
	}
	// The counts may share the header line.
	counts := parts[1:]
	if len(counts) == 0 {
		if counts, err = s.next(); err != nil {
			return nil, fmt.Errorf("missing counts: %w", ErrMalformedOFF)
		}
	}
	if len(counts) < 2 {
		return nil, s.errorf("expected vertex and face counts")
	}
	vertexCount, err := strconv.Atoi(counts[0])
	if err != nil || vertexCount < 0 {
		return nil, s.errorf("invalid vertex count %q", counts[0])
	}
	faceCount, err := strconv.Atoi(counts[1])
	if err != nil || faceCount < 0 {
		return nil, s.errorf("invalid face count %q", counts[1])
	}

	// The declared counts are only a capacity hint; newMeshSized caps them.
	m := newMeshSized(vertexCount, faceCount)
	for i := 0; i < vertexCount; i++ {
		parts, err := s.next()
		if err != nil {
			return nil, fmt.Errorf("unexpected end of file while reading vertices: %w", ErrMalformedOFF)
		}
		if len(parts) < 3 {
			return nil, s.errorf("invalid vertex data")
		}
		var p mgl64.Vec3
		for k := 0; k < 3; k++ {
			if p[k], err = strconv.ParseFloat(parts[k], 64); err != nil {
				return nil, s.errorf("invalid coordinate %q", parts[k])
			}
		}
		m.AddPoint(p)
	}

	for i := 0; i < faceCount; i++ {
		parts, err := s.next()
		if err != nil {
			return nil, fmt.Errorf("unexpected end of file while reading faces: %w", ErrMalformedOFF)
		}
		numFaceVerts, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, s.errorf("invalid face size %q", parts[0])
		}
		if numFaceVerts != 3 {
			return nil, s.errorf("only triangles are supported, got %d vertices", numFaceVerts)
		}
		if len(parts) < 4 {
			return nil, s.errorf("invalid face data")
		}
		var idx [3]int
		for k := 0; k < 3; k++ {
			idx[k], err = strconv.Atoi(parts[k+1])
			if err != nil {
				return nil, s.errorf("invalid vertex index %q", parts[k+1])
			}
			if idx[k] < 0 || idx[k] >= vertexCount {
				return nil, s.errorf("vertex index %d out of range", idx[k])
			}
		}
		m.AddTriangle(idx[0], idx[1], idx[2])
	}

	return m, nil
}
