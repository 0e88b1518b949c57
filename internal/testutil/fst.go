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

package testutil

import (
	"encoding/binary"
	"fmt"
)

// State is a test automaton state.
type State struct {
	Final bool
	Info  uint32

	Transitions []Transition
}

// Transition is a test automaton transition. Next is the index of the
// destination state in the slice given to MakeAutomaton.
type Transition struct {
	Char uint16
	Next int
}

func (s *State) recordSize() uint32 {
	size := 2 + 5*uint32(len(s.Transitions)) //nolint:gosec // test code.
	if s.Final {
		size += 3
	}
	return size
}

// Offsets returns the offsets the states will have in the automaton created
// by MakeAutomaton.
func Offsets(states []*State) []uint32 {
	offsets := make([]uint32, len(states))
	pos := uint32(4)
	for i, s := range states {
		offsets[i] = pos
		pos += s.recordSize()
	}
	return offsets
}

// MakeAutomaton makes a test .bin file given a list of states. The first state
// is the root state.
func MakeAutomaton(states []*State) []byte {
	offsets := Offsets(states)

	b := make([]byte, 4)
	for _, s := range states {
		//nolint:gosec // test code, transition count is small.
		h := uint16(len(s.Transitions))
		if !s.Final {
			h |= 0x8000
		}
		b = binary.BigEndian.AppendUint16(b, h)
		if s.Final {
			b = appendUint24(b, s.Info)
		}
		for _, t := range s.Transitions {
			if t.Next < 0 || t.Next >= len(offsets) {
				panic(fmt.Sprintf("transition to unknown state %d", t.Next))
			}
			b = binary.BigEndian.AppendUint16(b, t.Char)
			b = appendUint24(b, offsets[t.Next])
		}
	}
	//nolint:gosec // test code, automaton is small.
	binary.BigEndian.PutUint32(b[:4], uint32(len(b)))

	return b
}

// Trie returns the states of an automaton that recognizes the given words.
// Each word ends in a final state with the given .inf index. Words sharing a
// prefix share states.
func Trie(words map[string]uint32) []*State {
	root := &State{}
	states := []*State{root}
	for w, info := range words {
		cur := root
		for _, c := range []rune(w) {
			next := -1
			for _, t := range cur.Transitions {
				if t.Char == uint16(c) { //nolint:gosec // test words are BMP only.
					next = t.Next
				}
			}
			if next < 0 {
				states = append(states, &State{})
				next = len(states) - 1
				cur.Transitions = append(cur.Transitions, Transition{
					Char: uint16(c), //nolint:gosec // test words are BMP only.
					Next: next,
				})
			}
			cur = states[next]
		}
		cur.Final = true
		cur.Info = info
	}
	return states
}

func appendUint24(b []byte, v uint32) []byte {
	return append(b, byte(v>>16), byte(v>>8), byte(v))
}
