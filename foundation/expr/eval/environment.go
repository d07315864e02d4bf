// File: environment.go
// Title: Variable Environment
// Description: Implements the mutable name-to-value mapping used for
//              variable lookup and assignment during expression evaluation,
//              including the pre-seeded default environment.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial environment implementation

package eval

import (
	"math"
	"sort"

	rwmapx "github.com/msto63/mRW/foundation/utils/mapx"
)

// Environment maps variable names to numeric values. It persists across
// evaluations that share it, so assignments in one expression are visible
// to the next. An Environment is not synchronized; concurrent use requires
// external locking or one Environment per goroutine.
type Environment struct {
	vars map[string]float64
}

// NewEnvironment creates an empty environment
func NewEnvironment() *Environment {
	return &Environment{
		vars: make(map[string]float64),
	}
}

// NewDefaultEnvironment creates an environment pre-seeded with the
// mathematical constants available to every expression.
func NewDefaultEnvironment() *Environment {
	env := NewEnvironment()
	env.Set("pi", math.Pi)
	env.Set("e", math.E)
	return env
}

// Get returns the value bound to name and whether the binding exists
func (e *Environment) Get(name string) (float64, bool) {
	value, ok := e.vars[name]
	return value, ok
}

// Set binds name to value, inserting or overwriting
func (e *Environment) Set(name string, value float64) {
	e.vars[name] = value
}

// Has reports whether name is bound
func (e *Environment) Has(name string) bool {
	_, ok := e.vars[name]
	return ok
}

// Delete removes the binding for name if present
func (e *Environment) Delete(name string) {
	delete(e.vars, name)
}

// Len returns the number of bindings
func (e *Environment) Len() int {
	return len(e.vars)
}

// Names returns all bound names in sorted order
func (e *Environment) Names() []string {
	names := rwmapx.Keys(e.vars)
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of all bindings. Changes to the copy do not
// affect the environment.
func (e *Environment) Snapshot() map[string]float64 {
	return rwmapx.Clone(e.vars)
}

// Clear removes all bindings
func (e *Environment) Clear() {
	e.vars = make(map[string]float64)
}
