package repo_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pijul-go/graphcore/conflict"
	"github.com/pijul-go/graphcore/ids"
	"github.com/pijul-go/graphcore/patch"
	"github.com/pijul-go/graphcore/repo"
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

func hashOf(b byte) ids.Hash {
	return ids.Hash{Algo: ids.HashSHA512, Digest: append(make([]byte, 63), b)}
}

// onePatch builds a minimal Patch inserting a single line under
// UpContext, with no dependencies.
func onePatch(line []byte, upContext ...ids.Key) *patch.Patch {
	return &patch.Patch{
		Changes: []patch.Change{
			&patch.NewNodes{
				UpContext: upContext,
				Flag:      0,
				LineNum:   1,
				Nodes:     [][]byte{line},
			},
		},
	}
}

func TestApplyPatchInsertsLineUnderRoot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := onePatch([]byte("hello\n"), ids.RootKey)

	pid, err := repo.ApplyPatch(ctx, s, "main", hashOf(1), p)
	require.NoError(t, err)
	assert.NotEqual(t, ids.RootPatchId, pid)

	vertex := ids.Key{Patch: pid, Line: 1}
	require.NoError(t, s.View(func(r *store.ReadTx) error {
		content, err := r.Contents("main", vertex)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello\n"), content)

		has, err := r.HasAnyEdge("main", vertex)
		require.NoError(t, err)
		assert.True(t, has)

		applied, err := r.IsApplied("main", pid)
		require.NoError(t, err)
		assert.True(t, applied)
		return nil
	}))
}

func TestApplyPatchRejectsUnknownDependency(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := onePatch([]byte("x\n"), ids.RootKey)
	p.Dependencies = []ids.Hash{hashOf(99)}

	_, err := repo.ApplyPatch(ctx, s, "main", hashOf(1), p)
	assert.ErrorIs(t, err, repo.ErrUnknownDependency)
}

func TestUnrecordRestoresPriorState(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := onePatch([]byte("hello\n"), ids.RootKey)

	pid, err := repo.ApplyPatch(ctx, s, "main", hashOf(1), p)
	require.NoError(t, err)
	vertex := ids.Key{Patch: pid, Line: 1}

	require.NoError(t, repo.Unrecord(ctx, s, "main", pid, p))

	require.NoError(t, s.View(func(r *store.ReadTx) error {
		content, err := r.Contents("main", vertex)
		require.NoError(t, err)
		assert.Empty(t, content)

		has, err := r.HasAnyEdge("main", ids.RootKey)
		require.NoError(t, err)
		assert.False(t, has)

		applied, err := r.IsApplied("main", pid)
		require.NoError(t, err)
		assert.False(t, applied)
		return nil
	}))
}

func TestUnrecordRejectsUnappliedPatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := onePatch([]byte("hello\n"), ids.RootKey)

	err := repo.Unrecord(ctx, s, "main", ids.PatchId(42), p)
	assert.ErrorIs(t, err, repo.ErrPatchNotApplied)
}

func TestUnrecordRejectsWhenDependentStillApplied(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := onePatch([]byte("base\n"), ids.RootKey)
	basePid, err := repo.ApplyPatch(ctx, s, "main", hashOf(1), base)
	require.NoError(t, err)
	baseVertex := ids.Key{Patch: basePid, Line: 1}

	child := onePatch([]byte("child\n"), baseVertex)
	child.Dependencies = []ids.Hash{hashOf(1)}
	childPid, err := repo.ApplyPatch(ctx, s, "main", hashOf(2), child)
	require.NoError(t, err)

	err = repo.Unrecord(ctx, s, "main", basePid, base)
	assert.ErrorIs(t, err, repo.ErrPatchHasDependents)

	require.NoError(t, repo.Unrecord(ctx, s, "main", childPid, child))
	assert.NoError(t, repo.Unrecord(ctx, s, "main", basePid, base))
}

func TestDependentsOfTransitiveClosure(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := onePatch([]byte("a\n"), ids.RootKey)
	aPid, err := repo.ApplyPatch(ctx, s, "main", hashOf(1), a)
	require.NoError(t, err)
	aVertex := ids.Key{Patch: aPid, Line: 1}

	b := onePatch([]byte("b\n"), aVertex)
	b.Dependencies = []ids.Hash{hashOf(1)}
	bPid, err := repo.ApplyPatch(ctx, s, "main", hashOf(2), b)
	require.NoError(t, err)
	bVertex := ids.Key{Patch: bPid, Line: 1}

	c := onePatch([]byte("c\n"), bVertex)
	c.Dependencies = []ids.Hash{hashOf(2)}
	cPid, err := repo.ApplyPatch(ctx, s, "main", hashOf(3), c)
	require.NoError(t, err)

	deps, err := repo.DependentsOf(s, "main", aPid)
	require.NoError(t, err)
	assert.ElementsMatch(t, []ids.PatchId{bPid, cPid}, deps)
}

func TestBranchLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateBranch(ctx, s, "feature"))
	require.NoError(t, repo.ForkBranch(ctx, s, "feature", "feature2"))
	require.NoError(t, repo.DeleteBranch(ctx, s, "feature2"))
}

func TestRemoveRedundantEdgesDeletesListedPairs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	a, b := ids.Key{Patch: 1, Line: 1}, ids.Key{Patch: 1, Line: 2}
	edge := ids.Edge{Flag: ids.PseudoEdge, Dest: b, IntroducedBy: 1}

	require.NoError(t, s.Update(ctx, func(w *store.WriteTx) error {
		return w.AddEdgeBothDirs("main", a, edge)
	}))

	require.NoError(t, repo.RemoveRedundantEdges(ctx, s, "main", []conflict.ForwardEdge{{Key: a, Edge: edge}}))

	require.NoError(t, s.View(func(r *store.ReadTx) error {
		edges, err := r.Edges("main", a)
		require.NoError(t, err)
		assert.Empty(t, edges)
		return nil
	}))
}

func TestPartialRootBookkeeping(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, repo.AddPartialRoot(ctx, s, "main", ids.RootKey))
	roots, err := repo.PartialRoots(s, "main")
	require.NoError(t, err)
	assert.Contains(t, roots, ids.RootKey)

	require.NoError(t, repo.RemovePartialRoot(ctx, s, "main", ids.RootKey))
	roots, err = repo.PartialRoots(s, "main")
	require.NoError(t, err)
	assert.NotContains(t, roots, ids.RootKey)
}
