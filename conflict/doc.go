// Package conflict runs the conflict-detecting depth-first numbering
// pass over a graph's SCC quotient DAG, then builds the nested conflict
// tree that pass discovers.
//
// Both passes are iterative, using an explicit work stack rather than
// recursion, mirroring the shape of the algorithm they are ported from:
// the quotient DAG's forward/cross edge pattern directly encodes whether
// two histories present incomparable orderings of the same region of a
// file (a conflict) or merely parallel, redundant paths to the same
// point (a pseudo-edge safe to prune).
package conflict
