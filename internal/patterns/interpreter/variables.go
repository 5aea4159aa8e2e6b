package interpreter

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var ErrCycle = errors.New("cyclic variable definition")

// Variables lists the variable names e refers to, in order of appearance.
func Variables(e Expression) []string {
	var names []string
	var walk func(Expression)
	walk = func(e Expression) {
		switch n := e.(type) {
		case Variable:
			names = append(names, string(n))
		case Add:
			walk(n.Left)
			walk(n.Right)
		case Subtract:
			walk(n.Left)
			walk(n.Right)
		case Multiply:
			walk(n.Left)
			walk(n.Right)
		case Divide:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(e)
	return names
}

// CheckVariables reports an error wrapping ErrCycle if any definition in
// vars depends on itself, directly or through other variables.
func CheckVariables(vars map[string]Expression) error {
	const (
		unvisited = iota
		visiting
		done
	)
	marks := make(map[string]int, len(vars))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		e, ok := vars[name]
		if !ok {
			return nil
		}
		switch marks[name] {
		case visiting:
			start := slices.Index(path, name)
			cycle := append(slices.Clone(path[start:]), name)
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
		case done:
			return nil
		}
		marks[name] = visiting
		path = append(path, name)
		for _, dep := range Variables(e) {
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		marks[name] = done
		return nil
	}

	names := slices.Sorted(maps.Keys(vars))
	for _, name := range names {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
