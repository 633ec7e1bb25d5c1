// Package app wires the application together: configuration, logging,
// manifest loading, the parse fan-out, and result output.
package app
