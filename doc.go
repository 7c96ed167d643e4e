// Package ntsf implements NTSF, a compact binary format for persisting an
// N-gram prediction tree: a rooted tree whose edges are labeled with words,
// where a root-to-node path is an n-gram and a node's children are known
// continuations.
//
// The format factors repeated labels into a per-file word bank and encodes
// each node as a self-delimiting, variable-width block that either inlines
// its label or references the bank. Encode walks a caller-supplied tree
// depth-first with an explicit stack; Decode rebuilds an arbitrary-shape
// tree from the byte stream in a single pass using an O(depth) stack of
// "frames", each tracking how many children its node is still owed.
//
// The codec is generic over the caller's node type via Tree and Builder so
// it never needs to know the concrete representation of an N-gram tree.
package ntsf
