// SPDX-License-Identifier: MIT
// Package: lvcsr/source

package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdgeList_GroupsBySourceStably(t *testing.T) {
	l, err := NewEdgeList(4, []Edge[int]{
		{Src: 2, Dst: 0, Data: 20},
		{Src: 0, Dst: 3, Data: 1},
		{Src: 2, Dst: 1, Data: 21},
		{Src: 0, Dst: 1, Data: 2},
	})
	require.NoError(t, err)
	require.EqualValues(t, 4, l.NumNodes())
	require.EqualValues(t, 4, l.NumEdges())

	assert.EqualValues(t, 0, l.EdgeBegin(0))
	assert.EqualValues(t, 2, l.EdgeEnd(0))
	assert.EqualValues(t, 0, l.OutDegree(1))
	assert.EqualValues(t, 2, l.OutDegree(2))
	assert.EqualValues(t, 0, l.OutDegree(3))
	assert.Equal(t, []uint32{3, 1, 0, 1}, []uint32{l.EdgeDst(0), l.EdgeDst(1), l.EdgeDst(2), l.EdgeDst(3)})
	assert.Equal(t, []int{1, 2, 20, 21}, []int{l.EdgeData(0), l.EdgeData(1), l.EdgeData(2), l.EdgeData(3)})
	assert.EqualValues(t, 4, l.PrefixAt(3))

	var got []Edge[int]
	for e := range l.Edges() {
		got = append(got, e)
	}
	assert.Equal(t, Edge[int]{Src: 2, Dst: 1, Data: 21}, got[3])
}

func TestNewEdgeList_OutOfRange(t *testing.T) {
	_, err := NewEdgeList(2, []Edge[struct{}]{{Src: 0, Dst: 2}})
	require.ErrorIs(t, err, ErrNodeOutOfRange)
}

func TestEdgeList_Views(t *testing.T) {
	l, err := NewEdgeList(3, []Edge[float64]{{Src: 0, Dst: 1, Data: 2.5}, {Src: 1, Dst: 2, Data: 4}})
	require.NoError(t, err)

	u := l.Unweighted()
	assert.EqualValues(t, 2, u.NumEdges())
	assert.EqualValues(t, 2, u.EdgeDst(1))

	m := MapData(l, func(w float64) uint32 { return uint32(w * 2) })
	assert.EqualValues(t, 5, m.EdgeData(0))
	assert.EqualValues(t, 8, m.EdgeData(1))
}

func TestReadEdgeList(t *testing.T) {
	in := `# a comment
% another
0 1
1 2 0.5

2 0 3
`
	l, err := ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	require.EqualValues(t, 3, l.NumNodes())
	require.EqualValues(t, 3, l.NumEdges())
	assert.InDelta(t, 1.0, l.EdgeData(0), 0)
	assert.InDelta(t, 0.5, l.EdgeData(1), 0)
	assert.EqualValues(t, 0, l.EdgeDst(2))

	sym, err := ReadEdgeList(strings.NewReader("0 1\n1 1\n"), WithSymmetric(), WithNodeCount(5))
	require.NoError(t, err)
	assert.EqualValues(t, 5, sym.NumNodes())
	assert.EqualValues(t, 3, sym.NumEdges(), "self-loop is not mirrored")

	empty, err := ReadEdgeList(strings.NewReader("# nothing\n"))
	require.NoError(t, err)
	assert.EqualValues(t, 0, empty.NumNodes())
}

func TestReadEdgeList_Errors(t *testing.T) {
	for _, in := range []string{"0\n", "0 1 2 3\n", "a 1\n", "0 -1\n", "0 1 x\n", "0 4294967296\n"} {
		_, err := ReadEdgeList(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrParse, "input %q", in)
	}
	_, err := ReadEdgeList(strings.NewReader("0 3\n"), WithNodeCount(2))
	assert.ErrorIs(t, err, ErrNodeOutOfRange)
}

func TestReadEdgeListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.el")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 0\n"), 0o644))
	l, err := ReadEdgeListFile(path)
	require.NoError(t, err)
	assert.EqualValues(t, 2, l.NumEdges())

	_, err = ReadEdgeListFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
