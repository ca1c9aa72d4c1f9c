package output_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pijul-go/graphcore/graph"
	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/output"
	"github.com/pijul-go/graphcore/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Update(context.Background(), func(w *store.WriteTx) error {
		return w.CreateBranch("main")
	}))
	return s
}

func key(patch, line uint64) ids.Key {
	return ids.Key{Patch: ids.PatchId(patch), Line: ids.LineId(line)}
}

func TestFileLinearChainEmitsContentInOrderWithNoMarkers(t *testing.T) {
	s := openTestStore(t)
	a, b, c := key(1, 1), key(1, 2), key(1, 3)

	require.NoError(t, s.Update(context.Background(), func(w *store.WriteTx) error {
		if err := w.AddEdgeBothDirs("main", a, ids.Edge{Dest: b, IntroducedBy: 1}); err != nil {
			return err
		}
		if err := w.AddEdgeBothDirs("main", b, ids.Edge{Dest: c, IntroducedBy: 1}); err != nil {
			return err
		}
		if err := w.SetContents("main", a, []byte("line a\n")); err != nil {
			return err
		}
		if err := w.SetContents("main", b, []byte("line b\n")); err != nil {
			return err
		}
		return w.SetContents("main", c, []byte("line c\n"))
	}))

	var buf bytes.Buffer
	var hasConflicts bool
	require.NoError(t, s.View(func(r *store.ReadTx) error {
		g, err := graph.Retrieve(r, "main", a)
		if err != nil {
			return err
		}
		hasConflicts, _, err = output.File(r, "main", output.NewWriter(&buf), g)
		return err
	}))

	assert.False(t, hasConflicts)
	assert.Equal(t, "line a\nline b\nline c\n", buf.String())
	assert.NotContains(t, buf.String(), output.StartMarker)
}

func TestFileDiamondEmitsConflictMarkers(t *testing.T) {
	s := openTestStore(t)
	a, b, c, d := key(1, 1), key(1, 2), key(1, 3), key(1, 4)

	require.NoError(t, s.Update(context.Background(), func(w *store.WriteTx) error {
		for _, e := range []struct {
			from ids.Key
			to   ids.Key
		}{{a, b}, {a, c}, {b, d}, {c, d}} {
			if err := w.AddEdgeBothDirs("main", e.from, ids.Edge{Dest: e.to, IntroducedBy: 1}); err != nil {
				return err
			}
		}
		if err := w.SetContents("main", a, []byte("root\n")); err != nil {
			return err
		}
		if err := w.SetContents("main", b, []byte("left\n")); err != nil {
			return err
		}
		if err := w.SetContents("main", c, []byte("right\n")); err != nil {
			return err
		}
		return w.SetContents("main", d, []byte("tail\n"))
	}))

	var buf bytes.Buffer
	var hasConflicts bool
	require.NoError(t, s.View(func(r *store.ReadTx) error {
		g, err := graph.Retrieve(r, "main", a)
		if err != nil {
			return err
		}
		hasConflicts, _, err = output.File(r, "main", output.NewWriter(&buf), g)
		return err
	}))

	require.True(t, hasConflicts)
	out := buf.String()
	assert.Contains(t, out, "root\n")
	assert.Contains(t, out, "left\n")
	assert.Contains(t, out, "right\n")
	assert.Contains(t, out, "tail\n")
	assert.Contains(t, out, output.Separator)
	// Exactly one conflict region: one begin/end pair (minus the leading
	// newline elided at column zero, so look for the marker bodies).
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("<<<<<<<<")))
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte(">>>>>>>>")))
}

func TestFileTrivialGraphHasNoOutput(t *testing.T) {
	s := openTestStore(t)
	var buf bytes.Buffer
	var hasConflicts bool
	require.NoError(t, s.View(func(r *store.ReadTx) error {
		g, err := graph.Retrieve(r, "main", key(9, 9))
		if err != nil {
			return err
		}
		hasConflicts, _, err = output.File(r, "main", output.NewWriter(&buf), g)
		return err
	}))
	assert.False(t, hasConflicts)
	assert.Empty(t, buf.String())
}
