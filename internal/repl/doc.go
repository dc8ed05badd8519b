// Package repl runs an interactive chat loop on a terminal.
//
// Each non-blank line is answered after a short delay. Typing "exit" or
// "quit" ends the session.
package repl
