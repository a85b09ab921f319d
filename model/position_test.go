package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "C", expected: POS_C},
		{input: "c", expected: POS_C},
		{input: "1B", expected: POS_1B},
		{input: "2b", expected: POS_2B},
		{input: "SS", expected: POS_SS},
		{input: "3B", expected: POS_3B},
		{input: "OF", expected: POS_OF},
		{input: "LF", expected: POS_OF},
		{input: "CF", expected: POS_OF},
		{input: "RF", expected: POS_OF},
		{input: "DH", expected: POS_DH},
		{input: "UTIL", expected: POS_UTIL},
		{input: "UT", expected: POS_UTIL},
		{input: "SP", expected: POS_SP},
		{input: "RP", expected: POS_RP},
		{input: "P", expected: POS_P},
		{input: " of ", expected: POS_OF},
		{input: "UNKNOWN", expected: POS_UNKNOWN},
		{input: "QB", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestParsePositionList(t *testing.T) {
	tests := []struct {
		input    string
		expected []Position
	}{
		{input: "1B,OF", expected: []Position{POS_1B, POS_OF}},
		{input: "DH/OF", expected: []Position{POS_DH, POS_OF}},
		{input: "SS, 2B", expected: []Position{POS_SS, POS_2B}},
		{input: "SP", expected: []Position{POS_SP}},
		{input: "C,bogus,OF", expected: []Position{POS_C, POS_OF}},
		{input: "", expected: []Position{}},
	}

	for _, tc := range tests {
		a := ParsePositionList(tc.input)
		if len(a) != len(tc.expected) {
			t.Errorf("input: '%s', expected %v, got %v", tc.input, tc.expected, a)
			continue
		}
		for i := range a {
			if a[i] != tc.expected[i] {
				t.Errorf("input: '%s', expected %v, got %v", tc.input, tc.expected, a)
				break
			}
		}
	}
}

func TestRosterSlotLabel(t *testing.T) {
	tests := []struct {
		slot     RosterSlot
		expected string
	}{
		{slot: RosterSlot{Pos: POS_C, Index: 1}, expected: "C"},
		{slot: RosterSlot{Pos: POS_1B, Index: 1}, expected: "1B"},
		{slot: RosterSlot{Pos: POS_OF, Index: 2}, expected: "OF2"},
		{slot: RosterSlot{Pos: POS_UTIL, Index: 3}, expected: "UTIL3"},
		{slot: RosterSlot{Pos: POS_P, Index: 11}, expected: "P11"},
	}

	for _, tc := range tests {
		if a := tc.slot.Label(); a != tc.expected {
			t.Errorf("expected label '%s', got '%s'", tc.expected, a)
		}
	}
}

func TestParseRosterSlot(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected RosterSlot
		exErr    bool
	}{
		"bare code":     {input: "C", expected: RosterSlot{Pos: POS_C, Index: 1}},
		"numbered of":   {input: "OF2", expected: RosterSlot{Pos: POS_OF, Index: 2}},
		"two digits":    {input: "P11", expected: RosterSlot{Pos: POS_P, Index: 11}},
		"util":          {input: "UTIL1", expected: RosterSlot{Pos: POS_UTIL, Index: 1}},
		"first base":    {input: "1B", expected: RosterSlot{Pos: POS_1B, Index: 1}},
		"whitespace":    {input: " OF3 ", expected: RosterSlot{Pos: POS_OF, Index: 3}},
		"empty":         {input: "", exErr: true},
		"unknown code":  {input: "XX2", exErr: true},
		"zero index":    {input: "OF0", exErr: true},
		"digits only":   {input: "42", exErr: true},
		"football slot": {input: "WR1", exErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			slot, err := ParseRosterSlot(tc.input)
			if tc.exErr {
				if err == nil {
					t.Fatalf("expected an error for input '%s', got %v", tc.input, slot)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for input '%s': %v", tc.input, err)
			}
			if slot != tc.expected {
				t.Errorf("input: '%s', expected %v, got %v", tc.input, tc.expected, slot)
			}
		})
	}
}

func TestRosterSlotRoundTrip(t *testing.T) {
	slots := []RosterSlot{
		{Pos: POS_C, Index: 1},
		{Pos: POS_SS, Index: 1},
		{Pos: POS_OF, Index: 1},
		{Pos: POS_OF, Index: 3},
		{Pos: POS_UTIL, Index: 2},
		{Pos: POS_P, Index: 7},
	}

	for _, s := range slots {
		parsed, err := ParseRosterSlot(s.Label())
		if err != nil {
			t.Fatalf("error parsing label '%s': %v", s.Label(), err)
		}
		if parsed != s {
			t.Errorf("slot %v did not round trip, got %v", s, parsed)
		}
	}
}
