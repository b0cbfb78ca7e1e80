// Package board models immutable board states of the rearrangement puzzle
// and generates their legal successor moves.
//
// A State is an exact, order-independent assignment of every token to a
// cell of a topo.Topology: internally a fixed-size array of (class, cell)
// placements kept in canonical cell order, so two states with the same
// assignment compare equal regardless of how they were built, and State
// values serve directly as map keys in the search engine. States are
// value types: move generation never mutates its input, and every token
// population is conserved (exactly `depth` tokens per class, validated at
// construction).
//
// Legality rules implemented by Moves:
//
//  1. A move is a multi-hop slide: the destination must be reachable from
//     the origin through currently unoccupied cells only, established by a
//     breadth-first walk over the static adjacency per state. The cost,
//     however, comes from the topology's precomputed distance table –
//     class weight × cell distance.
//  2. A hallway token may move only into its own destination tunnel, only
//     when no wrong-class token remains anywhere inside, and only to the
//     deepest currently-unoccupied slot (tokens never stop short).
//  3. A tunnel token moves only to hallway stops – never tunnel-to-tunnel
//     in one transition. (Any tunnel-to-tunnel slide decomposes into
//     tunnel→hallway→tunnel at the same total cost with identical
//     blocking, so nothing optimal is lost.)
//  4. A settled token – one already in its destination tunnel with every
//     deeper cell held by its own class – generates no moves at all.
//     Settledness is derived from the state itself, bottom-up per tunnel,
//     so arbitrary hand-built states need no extra bookkeeping.
//
// The goal state (every token inside its own tunnel) is available from
// Goal, and IsGoal tests any state against it in one pass.
package board
