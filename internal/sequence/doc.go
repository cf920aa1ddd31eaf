// Package sequence implements generation of the Fibonacci sequence as an
// ordered, finite list of terms. The core entry point is [Generate], a pure
// function returning the first n terms; [Generator] wraps the same iteration
// with context cancellation and progress reporting for interactive use.
package sequence
