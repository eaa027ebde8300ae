// Package pnet models a pore network as an undirected multigraph with
// dense integer ids: pores are the nodes, throats the edges.
//
// What:
//
//   - Network stores throat endpoints and per-pore incidence lists.
//   - Pores are addressed 0..Pores()-1, throats 0..Throats()-1, in
//     creation order; ids never change once assigned.
//   - Parallel throats between the same pore pair are always legal;
//     self-loop throats only with WithSelfLoops.
//   - ReachableFrom answers "which pores can the front ever touch?"
//     for a set of seed pores.
//
// Why:
//
//   - Invasion percolation and friends index per-throat and per-pore
//     state by id, so adjacency must be slice-backed and allocation-free
//     to query.
//   - Physical pore spaces routinely carry parallel throats; the model
//     must not merge them.
//
// Complexity (P = pores, T = throats):
//
//   - New, AddPore, AddThroat:  O(1) amortized.
//   - FromThroats:              O(P + T).
//   - Ends, PoreThroats, Degree: O(1).
//   - ReachableFrom:            O(P + T), Memory: O(P).
//
// Options:
//
//   - WithSelfLoops():        permit throats with equal endpoints.
//   - WithThroatCapacity(n):  preallocate endpoint storage for n throats.
//
// Errors:
//
//   - ErrPoreCount: negative pore count passed to a constructor.
//   - ErrPoreRange: a pore id outside [0, Pores()).
//   - ErrSelfLoop:  equal endpoints without WithSelfLoops.
//
// Query accessors (Ends, PoreThroats, Degree) follow slice semantics and
// panic on out-of-range ids; mutating and validating entry points return
// errors instead.
package pnet
