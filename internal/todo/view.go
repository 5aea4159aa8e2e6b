package todo

import (
	"fmt"
	"unicode/utf8"
)

// DefaultMinTextLength is the shortest input that enables adding.
const DefaultMinTextLength = 3

// Title is the screen title for state.
func Title(state State) string {
	return fmt.Sprintf("TODO - (%d)", len(state.Items))
}

// CanAdd reports whether the input text is long enough to be added.
func CanAdd(state State, minLength int) bool {
	return utf8.RuneCountInString(state.Text) >= minLength
}
