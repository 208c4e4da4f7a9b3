// Package ast provides the node overlay: a parent-aware wrapper graph built
// once over an arbitrary, parent-unaware raw tree.
//
// Raw trees rarely carry back-references, so the overlay synthesizes them.
// Wrap recursively materializes a Node per raw node, each holding a parent
// pointer and an ordered children slice. The children slice is the single
// mutable surface of the engine: the query layer splices it in place for
// insert/remove/replace, which keeps parent/child consistency without ever
// rebuilding the overlay.
//
// Wrapping is idempotent: handing an already-wrapped *Node back to Wrap
// returns it unchanged, so mutation callbacks may produce either raw or
// wrapped nodes interchangeably.
package ast
