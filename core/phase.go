package core

// Phase is the coarse game state gating which systems run
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhaseStartGame
	PhaseInGame
	PhaseProgression
	PhaseEndGame

	phaseCount
)

var phaseNames = [...]string{"Menu", "StartGame", "InGame", "Progression", "EndGame"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// Next is the total-order successor, EndGame wraps to Menu
func (p Phase) Next() Phase {
	if p >= PhaseEndGame {
		return PhaseMenu
	}
	return p + 1
}

// IsValidTransition accepts the linear successor plus the EndGame -> StartGame restart edge
func IsValidTransition(from, to Phase) bool {
	if from.Next() == to {
		return true
	}
	return from == PhaseEndGame && to == PhaseStartGame
}

// PhaseByName resolves a phase from its String form
func PhaseByName(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), true
		}
	}
	return 0, false
}

// PhaseMask is a set of phases, used to gate system execution
type PhaseMask uint8

// MaskOf builds a mask from the given phases
func MaskOf(phases ...Phase) PhaseMask {
	var m PhaseMask
	for _, p := range phases {
		m |= 1 << p
	}
	return m
}

// AllPhases is the mask containing every phase
const AllPhases PhaseMask = 1<<phaseCount - 1

// Has reports whether p is in the mask
func (m PhaseMask) Has(p Phase) bool {
	return m&(1<<p) != 0
}
