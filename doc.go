// Package percolate is an in-memory invasion percolation toolkit for
// pore networks: build a pore/throat topology, rank throats by capillary
// entry pressure, and replay the quasi-static invasion front event by event.
//
// 🚀 What is percolate?
//
//	A small, deterministic simulation library built from two subpackages:
//		• pnet/     - dense-id pore network topology (pores, throats, adjacency)
//		• invasion/ - the invasion percolation engine and its Result queries
//
// ✨ Why choose percolate?
//
//   - Deterministic – equal inputs always reproduce the same invasion history
//   - Dense ids – pores and throats are 0..N-1 integers, no maps on the hot path
//   - Extensible – event hooks (OnThroatInvaded, OnPoreInvaded) for custom logic
//   - Pure results – the engine mutates nothing, it only returns sequences
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a four-pore ring; seed the front at pore 0, give each throat an entry
//	pressure, and Run reports the order in which throats and pores fill.
//
// Dive into pnet and invasion package docs for the full API, complexity
// notes and error contracts.
//
//	go get github.com/porelab/percolate
package percolate
