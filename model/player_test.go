package model

import "testing"

func TestIsEligibleFor(t *testing.T) {
	batter := &Player{Positions: []Position{POS_1B, POS_OF}}
	pitcher := &Player{Positions: []Position{POS_SP}, IsPitcher: true}

	tests := []struct {
		name     string
		player   *Player
		pos      Position
		expected bool
	}{
		{name: "listed position", player: batter, pos: POS_1B, expected: true},
		{name: "second listed position", player: batter, pos: POS_OF, expected: true},
		{name: "unlisted position", player: batter, pos: POS_SS, expected: false},
		{name: "batter is util eligible", player: batter, pos: POS_UTIL, expected: true},
		{name: "batter is not p eligible", player: batter, pos: POS_P, expected: false},
		{name: "pitcher is p eligible", player: pitcher, pos: POS_P, expected: true},
		{name: "pitcher is not util eligible", player: pitcher, pos: POS_UTIL, expected: false},
		{name: "pitcher listed position", player: pitcher, pos: POS_SP, expected: true},
	}

	for _, tc := range tests {
		if a := tc.player.IsEligibleFor(tc.pos); a != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, a)
		}
	}
}

func TestPositionsLabel(t *testing.T) {
	p := &Player{Positions: []Position{POS_1B, POS_OF}}
	if l := p.PositionsLabel(); l != "1B,OF" {
		t.Errorf("expected '1B,OF', got '%s'", l)
	}
}

func TestTrimNameSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Luis Robert Jr.", expected: "Luis Robert"},
		{input: "Fernando Tatis Jr.", expected: "Fernando Tatis"},
		{input: "Shohei Ohtani", expected: "Shohei Ohtani"},
	}

	for _, tc := range tests {
		if a := TrimNameSuffix(tc.input); a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}
