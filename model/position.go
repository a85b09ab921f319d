package model

import (
	"fmt"
	"strconv"
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_C       Position = "C"
	POS_1B      Position = "1B"
	POS_2B      Position = "2B"
	POS_SS      Position = "SS"
	POS_3B      Position = "3B"
	POS_OF      Position = "OF"
	POS_DH      Position = "DH"
	POS_UTIL    Position = "UTIL"
	POS_SP      Position = "SP"
	POS_RP      Position = "RP"
	POS_P       Position = "P"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(strings.TrimSpace(pos))
	switch pos {
	case "c":
		return POS_C
	case "1b":
		return POS_1B
	case "2b":
		return POS_2B
	case "ss":
		return POS_SS
	case "3b":
		return POS_3B
	case "of", "lf", "cf", "rf":
		return POS_OF
	case "dh":
		return POS_DH
	case "util", "ut":
		return POS_UTIL
	case "sp":
		return POS_SP
	case "rp":
		return POS_RP
	case "p":
		return POS_P
	default:
		return POS_UNKNOWN
	}
}

// ParsePositionList parses a delimited eligibility list like "1B,OF" or
// "DH/OF" into positions. Both commas and slashes appear in imported
// data, so both are accepted. Unknown entries are dropped.
func ParsePositionList(s string) []Position {
	s = strings.ReplaceAll(s, "/", ",")
	parts := strings.Split(s, ",")

	result := make([]Position, 0, len(parts))
	for _, p := range parts {
		pos := ParsePosition(p)
		if pos == POS_UNKNOWN {
			continue
		}
		result = append(result, pos)
	}
	return result
}

func (p Position) IsPitcherPosition() bool {
	return p == POS_P || p == POS_SP || p == POS_RP
}

// RosterSlot is a concrete, numbered roster placeholder, e.g. OF2 or P7.
// It is distinct from a bare position code: a roster may have three OF
// slots but there is only one OF position. Index is 1-based.
// Single-instance positions (C, 1B, ...) use index 1 and render without
// the number.
type RosterSlot struct {
	Pos   Position
	Index int
}

func (s RosterSlot) Label() string {
	if s.Pos == POS_OF || s.Pos == POS_UTIL || s.Pos == POS_P {
		return fmt.Sprintf("%s%d", s.Pos, s.Index)
	}
	return string(s.Pos)
}

// Code reduces the slot to its position prefix, so OF2 -> OF.
func (s RosterSlot) Code() Position {
	return s.Pos
}

// ParseRosterSlot parses a slot label like "OF2", "P11" or "C" back into
// a RosterSlot. Labels are a storage and display concern only; internal
// code passes RosterSlot values around.
func ParseRosterSlot(label string) (RosterSlot, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return RosterSlot{}, fmt.Errorf("%q is not a valid roster slot label", label)
	}

	i := len(label)
	for i > 0 && label[i-1] >= '0' && label[i-1] <= '9' {
		i--
	}

	pos := ParsePosition(label[:i])
	if pos == POS_UNKNOWN {
		return RosterSlot{}, fmt.Errorf("%q is not a valid roster slot label", label)
	}

	index := 1
	if i < len(label) {
		n, err := strconv.Atoi(label[i:])
		if err != nil || n < 1 {
			return RosterSlot{}, fmt.Errorf("%q is not a valid roster slot label", label)
		}
		index = n
	}

	return RosterSlot{Pos: pos, Index: index}, nil
}
