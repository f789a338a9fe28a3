// Package dicetest provides deterministic dice.Roller implementations for tests.
package dicetest

import (
	"errors"
	"sync"
)

// ErrExhausted is returned once a ScriptedRoller runs out of faces
var ErrExhausted = errors.New("scripted roller exhausted")

// ScriptedRoller returns pre-recorded faces in order. Faces are clamped
// to the requested die size so one script can serve several die sizes.
type ScriptedRoller struct {
	mu     sync.Mutex
	faces  []int
	repeat bool
	pos    int
	sizes  []int
}

// NewScriptedRoller returns a roller yielding faces once each
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces}
}

// Constant returns a roller that always yields face
func Constant(face int) *ScriptedRoller {
	return &ScriptedRoller{faces: []int{face}, repeat: true}
}

// Cycle returns a roller that loops over faces forever
func Cycle(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces, repeat: true}
}

// Roll implements dice.Roller
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	if len(r.faces) == 0 || (!r.repeat && r.pos >= len(r.faces)) {
		return 0, ErrExhausted
	}

	face := r.faces[r.pos%len(r.faces)]
	r.pos++

	if face < 1 {
		face = 1
	}
	if face > size {
		face = size
	}
	return face, nil
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Sizes returns the die sizes requested so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.sizes))
	copy(out, r.sizes)
	return out
}

// Calls returns how many rolls were made
func (r *ScriptedRoller) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sizes)
}
