// Package output renders a retrieved graph.Graph back into a byte
// stream: the file's lines in dependency order, wrapped in conflict
// markers wherever package conflict's tree found incomparable sides, and
// wrapped again (independently) around runs of zombie vertices.
//
// The algorithm itself has two layers: output_file drives package
// tarjan and package conflict to get the SCCs, the numbering, and the
// conflict tree, then output_conflict walks that tree (a small,
// shallow recursion — its depth is nesting-conflict depth, never graph
// size) emitting output_scc calls and conflict markers in order.
package output
