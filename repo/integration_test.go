package repo_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pijul-go/graphcore/graph"
	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/output"
	"github.com/pijul-go/graphcore/patch"
	"github.com/pijul-go/graphcore/repo"
	"github.com/pijul-go/graphcore/store"
)

// outputFile retrieves the graph rooted at root and renders it, failing
// the test on any error.
func outputFile(t *testing.T, s *store.Store, branch string, root ids.Key) (string, bool) {
	t.Helper()
	var buf bytes.Buffer
	var hasConflicts bool
	require.NoError(t, s.View(func(r *store.ReadTx) error {
		g, err := graph.Retrieve(r, branch, root)
		if err != nil {
			return err
		}
		hasConflicts, _, err = output.File(r, branch, output.NewWriter(&buf), g)
		return err
	}))
	return buf.String(), hasConflicts
}

// TestApplyOutputUnrecordLinearHistory drives spec.md §8 scenario 1
// ("linear history") and scenario 4 ("unrecord restores bytes") through
// the full repo.ApplyPatch -> output.File -> repo.Unrecord pipeline:
// patch A inserts a chain a->b->c, patch B extends the chain with a
// fourth line under c, and unrecording B must restore A's exact
// byte-identical output (testable properties #4 and #5).
func TestApplyOutputUnrecordLinearHistory(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	patchA := &patch.Patch{
		Changes: []patch.Change{
			&patch.NewNodes{UpContext: []ids.Key{ids.RootKey}, LineNum: 1, Nodes: [][]byte{[]byte("a\n")}},
			&patch.NewNodes{UpContext: []ids.Key{{Patch: patch.ThisPatch, Line: 1}}, LineNum: 2, Nodes: [][]byte{[]byte("b\n")}},
			&patch.NewNodes{UpContext: []ids.Key{{Patch: patch.ThisPatch, Line: 2}}, LineNum: 3, Nodes: [][]byte{[]byte("c\n")}},
		},
	}
	pidA, err := repo.ApplyPatch(ctx, s, "main", hashOf(1), patchA)
	require.NoError(t, err)
	aKey := ids.Key{Patch: pidA, Line: 1}
	cKey := ids.Key{Patch: pidA, Line: 3}

	out, hasConflicts := outputFile(t, s, "main", aKey)
	assert.False(t, hasConflicts)
	assert.Equal(t, "a\nb\nc\n", out)

	patchB := &patch.Patch{
		Dependencies: []ids.Hash{hashOf(1)},
		Changes: []patch.Change{
			&patch.NewNodes{UpContext: []ids.Key{cKey}, LineNum: 1, Nodes: [][]byte{[]byte("d\n")}},
		},
	}
	pidB, err := repo.ApplyPatch(ctx, s, "main", hashOf(2), patchB)
	require.NoError(t, err)

	out, hasConflicts = outputFile(t, s, "main", aKey)
	assert.False(t, hasConflicts)
	assert.Equal(t, "a\nb\nc\nd\n", out)

	require.NoError(t, repo.Unrecord(ctx, s, "main", pidB, patchB))

	out, hasConflicts = outputFile(t, s, "main", aKey)
	assert.False(t, hasConflicts)
	assert.Equal(t, "a\nb\nc\n", out, "unrecording B must restore A's exact output")
}

// TestApplyOutputUnrecordConcurrentInserts drives spec.md §8 scenario 2
// ("two parallel inserts") through the full pipeline: patch A creates a
// common ancestor a and a common, not-yet-reachable descendant b; two
// independent patches B and C each splice a new line between them
// (a->x->b and a->y->b). Neither splice touches a pre-existing edge, so
// the fork is genuine — retrieving from a must report a conflict with
// both sides rendered between markers in patch-id order (testable
// property #7). Unrecording C and then B must unwind the conflict and
// finally restore A's own two-vertex state (testable property #5).
func TestApplyOutputUnrecordConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	patchA := &patch.Patch{
		Changes: []patch.Change{
			&patch.NewNodes{UpContext: []ids.Key{ids.RootKey}, LineNum: 1, Nodes: [][]byte{[]byte("a\n")}},
			&patch.NewNodes{LineNum: 2, Nodes: [][]byte{[]byte("b\n")}},
		},
	}
	pidA, err := repo.ApplyPatch(ctx, s, "main", hashOf(1), patchA)
	require.NoError(t, err)
	aKey := ids.Key{Patch: pidA, Line: 1}
	bKey := ids.Key{Patch: pidA, Line: 2}

	out, hasConflicts := outputFile(t, s, "main", aKey)
	assert.False(t, hasConflicts)
	assert.Equal(t, "a\n", out, "b is not yet reachable from a")

	patchB := &patch.Patch{
		Dependencies: []ids.Hash{hashOf(1)},
		Changes: []patch.Change{
			&patch.NewNodes{UpContext: []ids.Key{aKey}, DownContext: []ids.Key{bKey}, LineNum: 1, Nodes: [][]byte{[]byte("x\n")}},
		},
	}
	pidB, err := repo.ApplyPatch(ctx, s, "main", hashOf(2), patchB)
	require.NoError(t, err)

	out, hasConflicts = outputFile(t, s, "main", aKey)
	assert.False(t, hasConflicts)
	assert.Equal(t, "a\nx\nb\n", out)

	patchC := &patch.Patch{
		Dependencies: []ids.Hash{hashOf(1)},
		Changes: []patch.Change{
			&patch.NewNodes{UpContext: []ids.Key{aKey}, DownContext: []ids.Key{bKey}, LineNum: 1, Nodes: [][]byte{[]byte("y\n")}},
		},
	}
	pidC, err := repo.ApplyPatch(ctx, s, "main", hashOf(3), patchC)
	require.NoError(t, err)
	require.True(t, pidB < pidC, "patch ids are assigned in application order")

	out, hasConflicts = outputFile(t, s, "main", aKey)
	require.True(t, hasConflicts)
	assert.Equal(t, "a\n"+output.StartMarker[1:]+"x\n"+output.Separator[1:]+"y\n"+output.EndMarker[1:]+"b\n", out)

	require.NoError(t, repo.Unrecord(ctx, s, "main", pidC, patchC))

	out, hasConflicts = outputFile(t, s, "main", aKey)
	assert.False(t, hasConflicts)
	assert.Equal(t, "a\nx\nb\n", out, "unrecording C must restore B's exact output")

	require.NoError(t, repo.Unrecord(ctx, s, "main", pidB, patchB))

	out, hasConflicts = outputFile(t, s, "main", aKey)
	assert.False(t, hasConflicts)
	assert.Equal(t, "a\n", out, "unrecording B must restore A's exact output")
}
