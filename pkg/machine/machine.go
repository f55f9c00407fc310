package machine

import (
	"errors"
	"fmt"
	"slices"
)

type State interface {
	~string
}

// Allowable is one from state and the states it may move to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine answers which transitions are valid out of its current state
type StateMachine[S State] struct {
	current S
	edges   map[S][]S
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

// New builds a machine in currentState. Transitions sharing a from state are merged.
func New[S State](currentState S, transitions ...Allowable[S]) *StateMachine[S] {
	edges := make(map[S][]S, len(transitions))
	for _, t := range transitions {
		edges[t.from] = append(edges[t.from], t.to...)
	}
	return &StateMachine[S]{current: currentState, edges: edges}
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// Can reports whether the current state may move to s
func (m *StateMachine[S]) Can(s S) bool {
	return slices.Contains(m.edges[m.current], s)
}

// ToState returns ErrInvalidTransition unless the current state may move to s
func (m *StateMachine[S]) ToState(s S) error {
	if m.Can(s) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, s)
}

// Next lists the states reachable from the current one
func (m *StateMachine[S]) Next() []S {
	return slices.Clone(m.edges[m.current])
}

// Terminal is true when no transition leaves the current state
func (m *StateMachine[S]) Terminal() bool {
	return len(m.edges[m.current]) == 0
}

// Current returns the state the machine was created in
func (m *StateMachine[S]) Current() S {
	return m.current
}
