package states

import "fmt"

// Phase represents the current phase of a game
type Phase int

const (
	// PhasePlacing - the human player is placing ships; the computer's
	// fleet is already placed
	PhasePlacing Phase = iota

	// PhaseAttacking - alternating attacks between player and computer
	PhaseAttacking

	// PhaseOver - one side's fleet is destroyed; only restart is accepted
	PhaseOver
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case PhasePlacing:
		return "Placing"
	case PhaseAttacking:
		return "Attacking"
	case PhaseOver:
		return "Over"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p Phase) IsTerminal() bool {
	return p == PhaseOver
}

// CanReceiveAttacks returns true if attacks can be processed in this phase
func (p Phase) CanReceiveAttacks() bool {
	return p == PhaseAttacking
}

// CanPlaceShips returns true if ship placement input is accepted in this phase
func (p Phase) CanPlaceShips() bool {
	return p == PhasePlacing
}

// AllowedTransitions returns the valid phases this phase can transition
// to. Every phase may transition back to Placing: that is the restart
// path, and the only way to leave Over.
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhasePlacing:
		return []Phase{PhaseAttacking, PhasePlacing}
	case PhaseAttacking:
		return []Phase{PhaseOver, PhasePlacing}
	case PhaseOver:
		return []Phase{PhasePlacing}
	default:
		return []Phase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
