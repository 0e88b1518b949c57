// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fst

import (
	"fmt"
	"io"
	"unicode/utf16"
)

// State is an automaton state.
type State struct {
	// Offset is the offset of the state record in the .bin file. It
	// identifies the state.
	Offset uint32

	// Final is true if the state is an accepting state.
	Final bool

	// Info is the .inf file index of a final state.
	Info uint32

	// Transitions maps UTF-16 code units to the offset of the next state.
	Transitions map[uint16]uint32
}

// Automaton is an in-memory automaton. It is safe for concurrent use.
type Automaton struct {
	states map[uint32]*State
	size   uint32
}

// New reads a .bin file from r and returns the automaton. Transitions may
// point forward so the whole automaton is read before it is checked.
func New(r io.Reader) (*Automaton, error) {
	s, err := NewScanner(r)
	if err != nil {
		return nil, err
	}

	a := &Automaton{
		states: map[uint32]*State{},
		size:   s.Size(),
	}
	for s.Scan() {
		st := s.State()
		a.states[st.Offset] = st
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if _, ok := a.states[RootOffset]; !ok {
		return nil, fmt.Errorf("%w: missing root state", ErrFormat)
	}
	for _, st := range a.states {
		for c, next := range st.Transitions {
			if _, ok := a.states[next]; !ok {
				return nil, fmt.Errorf("%w: state %d: transition %q to unknown state %d",
					ErrFormat, st.Offset, rune(c), next)
			}
		}
	}

	return a, nil
}

// Lookup walks the automaton from the root state following the UTF-16 code
// units of word. It returns the .inf index of the state that is reached and
// true if that state is final. It returns false if word is not recognized.
func (a *Automaton) Lookup(word string) (uint32, bool) {
	st := a.states[RootOffset]
	for _, c := range utf16.Encode([]rune(word)) {
		next, ok := st.Transitions[c]
		if !ok {
			return 0, false
		}
		st = a.states[next]
	}
	if !st.Final {
		return 0, false
	}
	return st.Info, true
}

// State returns the state at the given offset.
func (a *Automaton) State(offset uint32) (*State, bool) {
	st, ok := a.states[offset]
	return st, ok
}

// Root returns the root state.
func (a *Automaton) Root() *State {
	return a.states[RootOffset]
}

// Len returns the number of states.
func (a *Automaton) Len() int {
	return len(a.states)
}

// Size returns the declared size of the automaton in bytes.
func (a *Automaton) Size() uint32 {
	return a.size
}
