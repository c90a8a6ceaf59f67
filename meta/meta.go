// Package meta holds the reference configuration of the engine.
package meta

const (
	Rows   = 8
	Cols   = 8
	Pieces = 12 // Per player
)

// Goroutines is the default number of goroutines per search.
const Goroutines = 8

// MaxDepth is the reference search horizon.
const MaxDepth = 8

const MaxTurns = 300
