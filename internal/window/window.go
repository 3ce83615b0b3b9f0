package window

import (
	"fmt"
	"strings"
)

// Token is the user-selectable time range for the dashboard.
type Token string

const (
	Week     Token = "1w"
	Month    Token = "1m"
	Quarter  Token = "3m"
	HalfYear Token = "6m"
)

// Default is what the dashboard opens with and what unknown tokens fall
// back to.
const Default = Month

var All = []Token{Week, Month, Quarter, HalfYear}

// Spec is the concrete sampling window a token resolves to.
type Spec struct {
	Days     int
	Interval int // days between samples
}

var specs = map[Token]Spec{
	Week:     {Days: 7, Interval: 1},
	Month:    {Days: 30, Interval: 1},
	Quarter:  {Days: 90, Interval: 3},
	HalfYear: {Days: 180, Interval: 7},
}

// long-form aliases accepted on the wire
var aliases = map[string]Token{
	"1-week":  Week,
	"1-month": Month,
	"3-month": Quarter,
	"6-month": HalfYear,
}

func init() {
	// every token must have a spec row; a missing row is a programming
	// error, caught at startup rather than as a silent fallback
	for _, t := range All {
		if _, ok := specs[t]; !ok {
			panic(fmt.Sprintf("window: no spec for token %q", t))
		}
	}
}

// Parse maps a raw query value to a Token. Unrecognized values resolve to
// Default; this is a defaulting policy, not an error.
func Parse(s string) Token {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := aliases[s]; ok {
		return t
	}
	t := Token(s)
	if _, ok := specs[t]; ok {
		return t
	}
	return Default
}

// Resolve returns the sampling spec for a token. Total: unknown tokens get
// the Default row.
func Resolve(t Token) Spec {
	if s, ok := specs[t]; ok {
		return s
	}
	return specs[Default]
}

// Points is how many samples a spec yields.
func (s Spec) Points() int {
	return s.Days/s.Interval + 1
}
