// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E] and Option[T] with a context passed through to every callback.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeErr/TeeIf/DoubleTee/TeeOption: observe a value, pass the container on
// - Finally: reduce to a concrete value via success/error handlers
package solo
