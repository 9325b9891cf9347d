package alert

import "strings"

// Level is the severity of a broadcast trigger.
type Level string

const (
	// LevelAdvisory warns of a developing hazard ("yellow" on the wire).
	LevelAdvisory Level = "advisory"
	// LevelEmergency instructs immediate evacuation ("orange" on the wire).
	LevelEmergency Level = "emergency"
	// LevelIgnored is the mapping for any unrecognized input. Triggers at
	// this level are a no-op, not an error.
	LevelIgnored Level = "ignored"
)

// wireLevels maps the frontend's color codes to severities. Matching is
// case-insensitive; the canonical level names are accepted too.
var wireLevels = map[string]Level{
	"yellow":    LevelAdvisory,
	"advisory":  LevelAdvisory,
	"orange":    LevelEmergency,
	"emergency": LevelEmergency,
}

// ParseLevel resolves a wire-level string to a Level. Unknown or empty
// input resolves to LevelIgnored; ParseLevel never fails.
func ParseLevel(s string) Level {
	if lvl, ok := wireLevels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl
	}
	return LevelIgnored
}

// Actionable reports whether the level produces a broadcast.
func (l Level) Actionable() bool {
	return l == LevelAdvisory || l == LevelEmergency
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}
