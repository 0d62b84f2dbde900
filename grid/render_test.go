package grid_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/boolgrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	filled = "⬛"
	empty  = "⬜"
)

// failWriter rejects every write.
type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func uniform(r, c int, v bool) [][]bool {
	m := make([][]bool, r)
	for i := range m {
		m[i] = make([]bool, c)
		for j := range m[i] {
			m[i][j] = v
		}
	}

	return m
}

//----------------------------------------------------------------------------//
// Display rendering
//----------------------------------------------------------------------------//

// TestDisplay_Uniform checks R×C all-false and all-true grids line by line.
func TestDisplay_Uniform(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 3}, {4, 1}, {5, 5}} {
		r, c := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", r, c), func(t *testing.T) {
			wantOff := strings.Repeat(strings.Repeat(empty, c)+"\n", r)
			wantOn := strings.Repeat(strings.Repeat(filled, c)+"\n", r)
			assert.Equal(t, wantOff, grid.From(uniform(r, c, false)).String())
			assert.Equal(t, wantOn, grid.From(uniform(r, c, true)).String())
		})
	}
}

// TestDisplay_Checkerboard verifies bool and uint8 checkerboards render identically.
func TestDisplay_Checkerboard(t *testing.T) {
	want := filled + empty + "\n" + empty + filled + "\n"
	assert.Equal(t, want, grid.From([][]bool{{true, false}, {false, true}}).String())
	assert.Equal(t, want, grid.From([][]uint8{{1, 0}, {0, 1}}).String())
}

// TestDisplay_Uint8AboveOneIsEmpty checks that bytes ≥ 2 fall through to the empty glyph.
func TestDisplay_Uint8AboveOneIsEmpty(t *testing.T) {
	got := grid.From([][]uint8{{0, 1, 2, 255}}).String()
	assert.Equal(t, empty+filled+empty+empty+"\n", got)
}

// TestDisplay_Ragged verifies each row renders to its own length.
func TestDisplay_Ragged(t *testing.T) {
	got := grid.From([][]bool{{true}, {false, true, true}, {}}).String()
	assert.Equal(t, filled+"\n"+empty+filled+filled+"\n"+"\n", got)
}

// TestDisplay_Empty checks that zero rows render as the empty string.
func TestDisplay_Empty(t *testing.T) {
	assert.Equal(t, "", grid.From([][]bool{}).String())
	assert.Equal(t, "", grid.From([][]uint8(nil)).String())
}

// TestDisplay_Comparer renders cells that implement BoolComparer.
func TestDisplay_Comparer(t *testing.T) {
	got := grid.From([][]flag{{"on", "off"}}).String()
	assert.Equal(t, filled+empty+"\n", got)
}

// TestDisplay_UnsupportedCellsAreEmpty checks that cells without a relation render empty.
func TestDisplay_UnsupportedCellsAreEmpty(t *testing.T) {
	got := grid.From([][]int{{1, 0}}).String()
	assert.Equal(t, empty+empty+"\n", got)
}

// TestRender_Predicate renders int cells through a caller predicate.
func TestRender_Predicate(t *testing.T) {
	cells := [][]int{{7, 0}, {0, -3}}
	got := grid.From(cells).Render(func(c int) bool { return c != 0 })
	assert.Equal(t, filled+empty+"\n"+empty+filled+"\n", got)
}

// TestRender_NilPredicate checks that a nil predicate matches String.
func TestRender_NilPredicate(t *testing.T) {
	v := grid.From([][]uint8{{1, 2}})
	assert.Equal(t, v.String(), v.Render(nil))
}

// TestDisplay_Fmt verifies %v, %s and %#v pick the right rendering.
func TestDisplay_Fmt(t *testing.T) {
	v := grid.From([][]bool{{true, false}})
	assert.Equal(t, v.String(), fmt.Sprint(v))
	assert.Equal(t, v.String(), fmt.Sprintf("%s", v))
	assert.Equal(t, v.GoString(), fmt.Sprintf("%#v", v))
}

//----------------------------------------------------------------------------//
// Writers
//----------------------------------------------------------------------------//

// TestWriteTo checks WriteTo output and byte count.
func TestWriteTo(t *testing.T) {
	v := grid.From([][]bool{{true, false}, {false, true}})
	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, v.String(), buf.String())
}

// TestWriteTo_WriterError verifies writer errors are returned unchanged.
func TestWriteTo_WriterError(t *testing.T) {
	boom := errors.New("sink full")
	v := grid.From([][]bool{{true}})

	_, err := v.WriteTo(failWriter{boom})
	require.ErrorIs(t, err, boom)

	_, err = v.WriteDebug(failWriter{boom})
	require.ErrorIs(t, err, boom)
}

//----------------------------------------------------------------------------//
// Debug rendering
//----------------------------------------------------------------------------//

// TestDebug checks the bracketed listing for several shapes.
func TestDebug(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"OneRow", grid.From([][]bool{{true, false}}).GoString(), "[[true, false]]"},
		{"TwoRows", grid.From([][]bool{{true, false}, {false, true}}).GoString(), "[[true, false], [false, true]]"},
		{"Uint8", grid.From([][]uint8{{1, 0}, {0, 2}}).GoString(), "[[1, 0], [0, 2]]"},
		{"Empty", grid.From([][]bool{}).GoString(), "[]"},
		{"EmptyRow", grid.From([][]bool{{}, {true}}).GoString(), "[[], [true]]"},
		{"Strings", grid.From([][]flag{{"on"}}).GoString(), "[[on]]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

// TestWriteDebug checks WriteDebug output and byte count.
func TestWriteDebug(t *testing.T) {
	var buf bytes.Buffer
	n, err := grid.From([][]uint8{{1}}).WriteDebug(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, "[[1]]", buf.String())
}
