// Package algorithms is an in-memory playground for classic sequence
// puzzles — currently the Alternating Disks problem: a Row of dark and
// light disks plus two adjacent-swap sorting strategies.
//
// 🚀 What is implementing-algorithms?
//
//	A small, pure-Go library that brings together:
//		• Row primitives: build alternating rows, inspect disks, swap adjacent pairs safely
//		• Predicates: alternating & sorted checks with strict vacuous-false semantics
//		• Sorters: left-to-right (forward passes) and lawnmower (forward+backward passes)
//		• Hooks: observe every swap and every completed pass for custom logic
//
// ✨ Why choose it?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, in-code docs & hooks
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnSwap, OnPass…) to trace execution
//
// Under the hood, everything is organized under two subpackages:
//
//	disks/    — fundamental Color & Row types and the adjacent-swap primitive
//	disksort/ — the two sorting algorithms + unified Sort dispatcher
//
// Quick ASCII example:
//
//	    ● ○ ● ○              ○ ○ ● ●
//	    D L D L   ──sort──►  L L D D
//
//	a row of n=2 pairs before and after sorting (3 adjacent swaps).
//
// Dive into each package's doc.go for full walkthroughs, error conditions
// and complexity notes.
//
//	go get github.com/juliancoronado/implementing-algorithms/disks
package algorithms
