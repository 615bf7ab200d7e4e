// Package seq provides pure, panic-free transformations over fixed-length
// sequences: generation from index functions, boundary drift, slicing,
// resizing, superimposition, joining and splicing.
//
// Every operation is a total function over a declared output length. Out of
// range copy requests are silently clamped to the valid portion of source and
// destination, and uncovered output positions keep a caller-supplied fill
// value. No operation panics, and none returns an error for any combination
// of sizes; negative indices, counts and lengths clamp to zero.
//
// Sequences are plain slices whose length is fixed at construction. Operations
// that change length allocate and return a new sequence of the requested
// length; inputs are never mutated.
package seq
