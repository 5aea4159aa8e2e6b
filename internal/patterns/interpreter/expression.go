// Package interpreter evaluates arithmetic formulas over named variables,
// such as the labour and parts pricing rules of a garage.
package interpreter

import (
	"maps"
	"math"
)

// Expression is a node of a formula tree. Variables map names to
// sub-expressions, so one variable may be defined in terms of another.
type Expression interface {
	Interpret(vars map[string]Expression) float64
}

type Number float64

func (n Number) Interpret(map[string]Expression) float64 { return float64(n) }

// Variable evaluates to NaN when it is unbound or defined in terms of itself.
type Variable string

func (v Variable) Interpret(vars map[string]Expression) float64 {
	e, ok := vars[string(v)]
	if !ok {
		return math.NaN()
	}
	// Shadow v while its definition is evaluated so a cycle ends in NaN.
	scoped := maps.Clone(vars)
	scoped[string(v)] = Number(math.NaN())
	return e.Interpret(scoped)
}

type Add struct{ Left, Right Expression }

func (e Add) Interpret(vars map[string]Expression) float64 {
	return e.Left.Interpret(vars) + e.Right.Interpret(vars)
}

type Subtract struct{ Left, Right Expression }

func (e Subtract) Interpret(vars map[string]Expression) float64 {
	return e.Left.Interpret(vars) - e.Right.Interpret(vars)
}

type Multiply struct{ Left, Right Expression }

func (e Multiply) Interpret(vars map[string]Expression) float64 {
	return e.Left.Interpret(vars) * e.Right.Interpret(vars)
}

// Divide follows IEEE 754: division by zero yields an infinity or NaN.
type Divide struct{ Left, Right Expression }

func (e Divide) Interpret(vars map[string]Expression) float64 {
	return e.Left.Interpret(vars) / e.Right.Interpret(vars)
}
