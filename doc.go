// Package wavegrid generates 2-D tile maps whose every adjacent pair of
// tiles is legal according to rules learned from a small example grid,
// using the Wave Function Collapse (WFC) algorithm.
//
// 🚀 What is wavegrid?
//
//	A small, deterministic-by-seed library that brings together:
//		• wfc/    — the solver core: Wavefunction, CompatibilityOracle, Model
//		• learn/  — rule & weight extraction from an example tile matrix
//		• render/ — ANSI color rendering of a collapsed grid
//		• cmd/wavegen — a CLI that ties the three together
//
// ✨ Why choose wavegrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every random decision flows from one explicit seed
//   - Pure Go core – the solver depends on nothing outside the stdlib
//   - Honest failure – contradictions surface as a sentinel error,
//     never as silently corrupted output
//
// Quick ASCII example — learn from a 4×7 shoreline, emit a 100×10 map:
//
//	L L L L        ← land
//	L C C L        ← coast
//	C S S C        ← sea
//	S S S S
//
//	rs, _ := learn.FromLines([]string{"LLLL", "LLLL", "LLLL", "LCCL", "CSSC", "SSSS", "SSSS"})
//	m, _ := wfc.NewModel(100, 10, rs.Weights, rs.Oracle(), wfc.DefaultOptions())
//	out, err := m.Run()
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/wavegrid
package wavegrid
