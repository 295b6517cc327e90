// Package rop provides the Option and Result containers used by the
// railway-oriented helpers in solo and chain, together with inspection:
// passing the carried value to an observer without changing the container.
//
// Highlights:
// - Some/None/FromPair: construct Option[T]
// - Success/Fail/FromError: construct Result[T, E]
// - Inspect/InspectErr: observe the success or failure value, pass the container on
// - InspectPair/InspectValue/InspectError: the same for native Go pairs
// - Map/MapErr/FlatMap/MapOption/FlatMapOption: transform the carried value
package rop
