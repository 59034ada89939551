// Package commands defines the keywire CLI surface.
package commands
