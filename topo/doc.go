// Package topo models the fixed cell graph of the rearrangement puzzle:
// one shared hallway of seven stopping cells and four dead-end tunnels
// of configurable depth, one per token class.
//
// Shape (depth 2 shown; tunnel lanes sit at x = 2, 4, 6, 8):
//
//	x:   0  1  2  3  4  5  6  7  8  9 10
//	y=0  H  H  .  H  .  H  .  H  .  H  H    ← hallway stops (7 cells)
//	y=1        T     T     T     T          ← tunnel depth 1
//	y=2        T     T     T     T          ← tunnel depth 2
//
// The four positions marked "." are tunnel mouths: tokens slide across
// them but can never stop there, so they are not cells at all. Adjacency
// therefore carries per-edge step costs – crossing a mouth costs 2 steps,
// moving within a tunnel or between the outermost hallway pairs costs 1,
// and the diagonal hallway↔tunnel-top links cost 2 (one across, one down).
//
// A Topology is derived once per puzzle variant (depth 2 or 4) and is
// immutable afterwards. Construction precomputes the complete all-pairs
// distance table by relaxing
//
//	dist[a][b] = min(dist[a][b], dist[a][c] + dist[c][b])
//
// to a fixed point, so every later Distance call is an O(1) table lookup.
// With V = 7 + 4·depth cells the build costs O(V³) once – a few thousand
// integer operations for the puzzle sizes – and the table is queried on
// every move-cost evaluation during search, where recomputation would be
// prohibitive.
//
// Guarantees on the distance table:
//
//   - dist(a, a) == 0 for every cell a
//   - dist(a, b) == dist(b, a) (all edges are bidirectional)
//   - dist(a, b) + dist(b, c) ≥ dist(a, c) (triangle inequality)
//   - dist equals the direct path length when a and b share a tunnel or
//     one of them is in the hallway
//
// Occupancy is deliberately absent from this package: distances ignore
// other tokens. Per-state blocking is the move generator's concern
// (package board), which walks adjacency through unoccupied cells only.
package topo
