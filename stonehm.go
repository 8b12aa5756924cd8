package stonehm

// Json marks a handler parameter or return value as a JSON-encoded payload
// of T. The extract front end matches this wrapper by name to infer request
// body and success payload types from handler signatures.
//
// The name intentionally deviates from Go initialism style: signature
// matching is purely syntactic and the wrapper must read as Json[T].
type Json[T any] struct {
	Value T
}

// Result pairs a handler's success payload with its error payload. Used as
// a return type, Result[Json[T], E] documents T as the success schema and E
// as the error schema.
type Result[T, E any] struct {
	Ok  T
	Err *E
}

// Ok returns a Result holding a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{Ok: v}
}

// Err returns a Result holding an error value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{Err: &e}
}
