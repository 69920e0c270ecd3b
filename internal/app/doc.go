// Package app runs one rngraph job: it loads or generates the points,
// validates them, builds the relative neighborhood graph and writes the
// result, decoupled from any specific entrypoint.
package app
