// Package euler finds Eulerian paths and circuits — walks that consume every
// edge of a multigraph exactly once — on a core.Graph, in directed and
// undirected form, via two classical strategies.
//
// What:
//
//   - Fleury(g, opts...): greedy traversal that avoids burning bridges.
//     At each step neighbors are examined in ascending order and the first
//     non-bridge (undirected) or non-cut-arc (directed) edge is taken; a
//     forced move takes the smallest neighbor when no safe edge remains.
//   - Hierholzer(g, opts...): stack-based cycle splicing. Edges are consumed
//     along an explicit vertex stack; exhausted vertices are popped into the
//     result, which is reversed into start→end order.
//   - Both strategies validate degree parity (undirected) or in/out balance
//     (directed) and connectivity before traversing, and pick the
//     minimum-labeled qualifying start vertex for reproducible output.
//
// Why:
//   - Route inspection: traverse every street/pipe/wire exactly once
//   - Sequence assembly: chain fragments whose ends must match (de Bruijn walks)
//   - Any "use each connection once" puzzle, from pen strokes to dominoes
//
// Connectivity policies (deliberately distinct):
//
//   - Fleury requires every listed vertex to carry at least one edge and to
//     be reachable from the rest: a single isolated vertex yields ErrNotFound.
//   - Hierholzer only requires the vertices that actually carry edges to be
//     mutually reachable; zero-degree vertices are ignored entirely.
//
// Key Types & Constants:
//
//   - Option: functional options (WithOnVisit)
//   - Options: holds the OnVisit hook
//   - Result: Path (vertex sequence, length |E|+1) and Circuit flag
//   - NotFoundMessage: canonical render of the failure outcome
//
// Complexity:
//
//   - Fleury:     Time O(E·(V+E)) — each step may run an O(V+E) bridge test;
//     the naive per-step check is an accepted tradeoff for its simplicity.
//   - Hierholzer: Time O(E·d) with d the maximum degree (smallest-neighbor
//     selection per step), effectively linear on sparse multigraphs.
//   - Memory:     O(V+E) for the per-call adjacency snapshot in both.
//
// Errors:
//
//   - ErrGraphNil   graph pointer is nil
//   - ErrNotFound   no Eulerian path/circuit exists (bad parity or balance,
//     disconnection, isolated vertex under Fleury, traversal
//     dead-end, post-traversal length mismatch)
//   - ErrInternal   adjacency pairing desync — indicates a bookkeeping bug,
//     never a legitimate "no path" outcome
//
// Functions:
//
//   - Fleury(g *core.Graph, opts ...Option) (*Result, error)
//   - Hierholzer(g *core.Graph, opts ...Option) (*Result, error)
//   - FormatFleury(path []string) string      — "a-b-c" rendering
//   - FormatHierholzer(path []string) string  — "a -> b -> c" rendering
//   - DefaultOptions(), WithOnVisit()
//
// Each invocation builds a private mutable adjacency snapshot from the input
// graph, so the input is never modified and concurrent calls never share
// state.
package euler
