// Package engine implements the match-3 rules on top of a board.Grid: match
// detection, refill under gravity, shuffling, swapping and the orchestrator
// state machine that sequences them.
//
// Every engine call mutates the board synchronously and returns the delay the
// presentation layer needs before the next decision. The Orchestrator holds
// that delay as a pending step and only continues when Advance has consumed it,
// so an observer never sees a half-applied mutation.
package engine
