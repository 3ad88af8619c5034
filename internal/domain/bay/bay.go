package bay

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCode = errors.New("bay code must not be empty")
	ErrOccupied  = errors.New("bay is occupied by an active visit")
	ErrUnknown   = errors.New("bay is not part of the yard")
)

// Code identifies a physical parking/loading slot ("3a"). Codes compare
// case-insensitively; the canonical form is lower case.
type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Code{}, ErrEmptyCode
	}
	return Code{value: s}, nil
}

func (c Code) String() string {
	return c.value
}

func (c Code) Equals(other Code) bool {
	return c.value == other.value
}
