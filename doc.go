// Package frontier is your in-memory playground for running, comparing,
// and dissecting uninformed search strategies over pluggable problem domains.
//
// 🚀 What is frontier?
//
//	A small, deterministic library that brings together:
//		• Core primitives: search tree Nodes, the Problem capability bundle,
//		  node expansion with on-path duplicate pruning
//		• A generic kernel: one loop, pluggable frontier-ordering policies
//		• Strategies: breadth-first, depth-first, depth-limited,
//		  iterative-deepening, uniform-cost
//		• Utilities: generic stable insertion sort (plain and keyed)
//		• Domains: a momentum-jump puzzle, the 8-puzzle, a hex-grid turn puzzle
//		• A CLI harness: run one search or benchmark whole scenario files
//
// ✨ Why choose frontier?
//
//   - Teaching-first – every strategy is its own tiny package, easy to diff
//   - Honest accounting – each result carries the exact expansion count
//   - Pure tree search – reproducible traversals, no hidden global state
//   - Extensible – the kernel takes any Policy and any Heuristic, so
//     informed search is one implementation away
//
// Everything is organized under flat subpackages:
//
//	search/     — Node, Problem, Expand, the generic kernel and Result
//	bfs/        — breadth-first strategy (FIFO frontier)
//	dfs/        — depth-first, depth-limited and iterative-deepening
//	ucs/        — uniform-cost strategy (cost-sorted frontier)
//	stablesort/ — stable insertion sort backing uniform-cost merges
//	jump/       — momentum-jump puzzle domain
//	npuzzle/    — 8-puzzle domain
//	hexturn/    — hex-grid turn puzzle domain
//	cli/        — cobra commands and the frontier binary
//
// Quick ASCII example (the jump puzzle, course length 3):
//
//	(3,0,0) ──Faster──▶ (3,1,1) ──Steady──▶ (3,2,1) ──Steady──▶ (3,3,1) ✓
//
// Dive into the doc.go of each package for usage, complexity notes, and
// the exact ordering semantics of every strategy.
//
//	go get github.com/katalvlaran/frontier
package frontier
