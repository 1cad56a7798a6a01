// Package eulertour is an in-memory toolkit for finding Eulerian paths and
// circuits — walks that traverse every edge of a multigraph exactly once.
//
// 🚀 What is eulertour?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• Core primitives: unweighted multigraphs with loops & parallel edges
//		• Fleury's algorithm: greedy traversal with bridge/cut-arc avoidance
//		• Hierholzer's algorithm: stack-based cycle splicing in O(E)
//		• Directed & undirected variants of both strategies
//		• Degree/parity and balance validation with deterministic start picks
//
// ✨ Why choose eulertour?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted iteration everywhere, reproducible walks
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – OnVisit hooks for custom per-vertex logic
//
// Under the hood, everything is organized under two subpackages:
//
//	core/  — fundamental Graph and Edge types & thread-safe primitives
//	euler/ — Fleury & Hierholzer strategies plus shared validators
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: every vertex has even degree, so an Eulerian circuit exists
//	(for instance A-B-D-C-A).
//
// Dive into the examples/ directory for runnable scenarios, from route
// inspection to word chains.
//
//	go get github.com/katalvlaran/eulertour
package eulertour
