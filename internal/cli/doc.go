// Package cli implements the qa-chat command line.
package cli
