/*
Package matrixfile parses the whitespace-separated Coxeter matrix file format
described in spec §6: a header line "VERSION WIDTH DEPTH" followed by DEPTH
rows of WIDTH integers. It is thin I/O over package coxeter, grounded on the
source program's load_matrix_from_file (file_input_output_matrix.c).
*/
package matrixfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coxctl/braid/coxeter"
)

// Error reports a malformed matrix file.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("matrixfile: %s", e.Reason)
}

// MaxFilenameLen bounds the length of a filename this package will accept,
// matching MAX_FILENAME_LEN from spec §6.
var MaxFilenameLen = 200

// Load opens path, parses it as a Coxeter matrix file, and validates the
// result via coxeter.NewMatrix.
func Load(path string) (*coxeter.Matrix, error) {
	if len(path) > MaxFilenameLen {
		return nil, &Error{Reason: fmt.Sprintf("filename longer than %d characters", MaxFilenameLen)}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Reason: fmt.Sprintf("cannot open %q: %v", path, err)}
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a matrix file from r. The caller retains ownership of r (and
// any file handle behind it) — Parse never closes it.
func Parse(r io.Reader) (*coxeter.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, &Error{Reason: "missing info line"}
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 3 {
		return nil, &Error{Reason: fmt.Sprintf("malformed info line: want 3 integers, got %d fields", len(fields))}
	}
	var info [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &Error{Reason: fmt.Sprintf("malformed info line: %q is not an integer", f)}
		}
		info[i] = v
	}
	width, depth := info[1], info[2]
	if width != depth {
		return nil, &Error{Reason: fmt.Sprintf("WIDTH (%d) != DEPTH (%d)", width, depth)}
	}
	if width <= 0 || width > coxeter.MaxGenerators {
		return nil, &Error{Reason: fmt.Sprintf("dimension %d out of range (1..%d)", width, coxeter.MaxGenerators)}
	}

	rows := make([][]int, depth)
	for i := 0; i < depth; i++ {
		if !sc.Scan() {
			return nil, &Error{Reason: fmt.Sprintf("missing row %d (expected %d rows)", i, depth)}
		}
		cols := strings.Fields(sc.Text())
		if len(cols) != width {
			return nil, &Error{Reason: fmt.Sprintf("row %d has %d columns, want %d", i, len(cols), width)}
		}
		row := make([]int, width)
		for j, c := range cols {
			v, err := strconv.Atoi(c)
			if err != nil {
				return nil, &Error{Reason: fmt.Sprintf("row %d: %q is not an integer", i, c)}
			}
			row[j] = v
		}
		rows[i] = row
	}
	if sc.Scan() && strings.TrimSpace(sc.Text()) != "" {
		return nil, &Error{Reason: "extra non-blank content after matrix rows"}
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Reason: err.Error()}
	}

	return coxeter.NewMatrix(rows)
}
