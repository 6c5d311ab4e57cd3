// Package animate turns a computed path into a replayable sequence of
// reveal steps for an external renderer.
//
// A Sequence is built once from a graph and a path, and is immutable
// afterwards. Step i reveals path[0..i], the route path[i-1]-path[i]
// (nil for the first step) and the cost accumulated so far.
//
// Iteration is lazy and restartable: every call to All or Cursor starts an
// independent walk with its own position, and each Step is assembled on
// demand with freshly allocated slices. A renderer that is still consuming
// one Sequence is never affected by a new selection producing another.
//
// The package performs no timing and no drawing; the consumer decides the
// cadence at which steps are pulled.
package animate
