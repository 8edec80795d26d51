// Package commands implements the ottocalc command tree. Every command
// drives calculator sessions through the same engine and key parser the
// interactive keypad uses.
package commands
