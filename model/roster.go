package model

import "fmt"

// ResolveSlot decides which concrete roster slot a player fills, given
// the league's roster template and the slot labels the team has already
// used. The priority is fixed: specific infield positions before OF,
// OF and P pools before UTIL, UTIL last. DH counts as UTIL throughout.
//
// Returns ErrNoAssignableSlot when every slot the player could occupy is
// already filled; that is a hard error, not a silent default.
func ResolveSlot(template []RosterPosition, filled []RosterSlot, p *Player) (RosterSlot, error) {
	used := make(map[RosterSlot]bool, len(filled))
	for _, s := range filled {
		used[s] = true
	}

	// DH is just a UTIL slot in fantasy baseball.
	positions := make([]Position, 0, len(p.Positions))
	for _, pos := range p.Positions {
		if pos == POS_DH {
			pos = POS_UTIL
		}
		positions = append(positions, pos)
	}

	slotCount := func(pos Position) int {
		for _, tp := range template {
			if tp.Code == pos {
				return tp.SlotCount
			}
		}
		return 0
	}

	firstOpen := func(pos Position) (RosterSlot, bool) {
		for i := 1; i <= slotCount(pos); i++ {
			slot := RosterSlot{Pos: pos, Index: i}
			if !used[slot] {
				return slot, true
			}
		}
		return RosterSlot{}, false
	}

	// A player whose only eligibility is UTIL can go nowhere else.
	if len(positions) == 1 && positions[0] == POS_UTIL {
		if slot, ok := firstOpen(POS_UTIL); ok {
			return slot, nil
		}
		return RosterSlot{}, fmt.Errorf("no UTIL slots open for a UTIL-only player: %w", ErrNoAssignableSlot)
	}

	// Specific single-instance positions first: C, 1B, 2B, SS, 3B.
	for _, pos := range positions {
		if pos == POS_OF || pos == POS_UTIL || pos == POS_SP || pos == POS_RP || pos == POS_P {
			continue
		}
		if slot, ok := firstOpen(pos); ok {
			return slot, nil
		}
	}

	// OF pool before UTIL.
	if contains(positions, POS_OF) {
		if slot, ok := firstOpen(POS_OF); ok {
			return slot, nil
		}
	}

	// Pitchers go to the P pool.
	if p.IsPitcher || contains(positions, POS_P) || contains(positions, POS_SP) || contains(positions, POS_RP) {
		if slot, ok := firstOpen(POS_P); ok {
			return slot, nil
		}
	}

	// Last resort for batters: a UTIL slot.
	if !p.IsPitcher && !contains(positions, POS_P) && !contains(positions, POS_SP) && !contains(positions, POS_RP) {
		if slot, ok := firstOpen(POS_UTIL); ok {
			return slot, nil
		}
	}

	return RosterSlot{}, ErrNoAssignableSlot
}

func contains(positions []Position, pos Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}
