/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package scm

// Environment is a lexical scope: a frame of symbol bindings plus a
// pointer to the enclosing frame. Lookup walks outward through Outer
// until it finds a binding or runs out of frames. There is no operator
// to mutate a binding in an outer frame: define always creates or
// replaces a binding in the frame it is called on, never reaching
// through to a parent (there is no set! form).
type Environment struct {
	vars  map[Symbol]Value
	Outer *Environment
}

// NewRootEnvironment allocates an empty top-level environment with no
// parent. Callers populate it via RegisterBuiltins.
func NewRootEnvironment() *Environment {
	return &Environment{vars: make(map[Symbol]Value)}
}

// Extend creates a new child frame whose Outer is env, pre-populated by
// binding names to values positionally. Extend is how a Lambda call
// constructs the frame its body evaluates in.
func (env *Environment) Extend(names []Symbol, values []Value) *Environment {
	child := &Environment{vars: make(map[Symbol]Value, len(names)), Outer: env}
	for i, name := range names {
		child.vars[name] = values[i]
	}
	return child
}

// Define binds name to value in this frame, creating the binding if
// absent or replacing it if already present in this exact frame.
func (env *Environment) Define(name Symbol, value Value) {
	env.vars[name] = value
}

// Lookup walks outward from env through the Outer chain, returning the
// first binding found for name. The boolean result is false if no frame
// in the chain binds name.
func (env *Environment) Lookup(name Symbol) (Value, bool) {
	for e := env; e != nil; e = e.Outer {
		if v, ok := e.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}
