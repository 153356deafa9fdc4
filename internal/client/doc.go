// Package client implements the interactive client application runtime.
//
// It wires the server adapter and the terminal UI into a single process
// lifecycle. The client keeps no local storage; every vault operation goes
// straight to the server.
package client
