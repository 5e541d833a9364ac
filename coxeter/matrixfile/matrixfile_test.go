package matrixfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	src := "1 2 2\n1 3\n3 1\n"
	mx, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, mx.N())
	require.Equal(t, 3, mx.At(0, 1))
}

func TestParseMissingInfoLine(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestParseMalformedInfoLine(t *testing.T) {
	_, err := Parse(strings.NewReader("not a header\n"))
	require.Error(t, err)
}

func TestParseDimensionMismatch(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 3\n1 3\n3 1\n"))
	require.Error(t, err)
}

func TestParseMissingRow(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 2\n1 3\n"))
	require.Error(t, err)
}

// TestParseAsymmetricRejected is scenario S5.
func TestParseAsymmetricRejected(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 2\n1 3\n4 1\n"))
	require.Error(t, err)
}

func TestParseRowColumnCountMismatch(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 2\n1 3 5\n3 1\n"))
	require.Error(t, err)
}

func TestLoadFilenameTooLong(t *testing.T) {
	old := MaxFilenameLen
	MaxFilenameLen = 4
	defer func() { MaxFilenameLen = old }()

	_, err := Load("somereallylongpath.txt")
	require.Error(t, err)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/to/matrix.txt")
	require.Error(t, err)
}
