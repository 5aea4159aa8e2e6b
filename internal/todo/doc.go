// Package todo is the to-do list sample driven by a storex.Store.
//
// State holds the list and the text being typed. Actions and Commands are
// sealed interfaces, so a Reduce switch over them is exhaustive by
// construction. LoadToDos is the one asynchronous flow: the reducer emits a
// LoadToDosCommand and whoever runs it fetches items and dispatches the
// Action its Completion returns.
package todo
