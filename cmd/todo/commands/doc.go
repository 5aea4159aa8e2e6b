// Package commands implements the todo CLI: a scripted demo of the store
// driven to-do list and an interactive session reading from stdin.
package commands
