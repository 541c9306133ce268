package notify

import "strings"

// TimeOfDay selects which digest variant a trigger produces. Exactly two
// cases exist today; adding one means adding a greeting and, optionally, an
// extra section in the composer.
type TimeOfDay int

const (
	Morning TimeOfDay = iota
	Evening
)

// ParseTimeOfDay maps user input onto a variant. Anything that is not
// "evening" behaves as morning.
func ParseTimeOfDay(s string) TimeOfDay {
	if strings.EqualFold(strings.TrimSpace(s), "evening") {
		return Evening
	}
	return Morning
}

func (t TimeOfDay) String() string {
	if t == Evening {
		return "evening"
	}
	return "morning"
}

// Greeting returns the salutation prepended to a digest.
func (t TimeOfDay) Greeting() string {
	if t == Evening {
		return "🌙 Good evening! Here is where things stand:"
	}
	return "🌅 Good morning! Here is the plan:"
}
