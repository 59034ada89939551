// Package app wires the client's stores, services, and HTTP client together
// for the CLI.
package app
