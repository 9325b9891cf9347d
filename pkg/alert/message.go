package alert

import (
	"fmt"
	"strings"
)

// Message is the composed alert content shared by all recipients of a
// single broadcast. It is a value type; composition happens once per
// trigger and personalization is layered on top per recipient.
type Message struct {
	Subject string
	Body    string
}

// Compose builds the shared (subject, body) template for an actionable
// level. The location and contact block appear verbatim in the body so
// recipients can act on them without any further lookup.
//
// Calling Compose with a non-actionable level is a programming error on
// the dispatch path, which short-circuits ignored triggers before
// composition; it returns a zero Message in that case.
func Compose(level Level, location, contacts string) Message {
	switch level {
	case LevelAdvisory:
		return Message{
			Subject: fmt.Sprintf("⚠️ ThunderGuard: YELLOW WARNING (%s)", location),
			Body: fmt.Sprintf(
				"WARNING: Heavy rain detected in %s.\n"+
					"Flooding is possible in low-lying areas.\n\n"+
					"PRECAUTIONARY MEASURES:\n"+
					"- Monitor local news.\n"+
					"- Prepare emergency kit.\n\n"+
					"EMERGENCY HOTLINES FOR %s:\n%s",
				location, strings.ToUpper(location), contacts,
			),
		}
	case LevelEmergency:
		return Message{
			Subject: fmt.Sprintf("🚨 ThunderGuard: ORANGE WARNING (%s)", location),
			Body: fmt.Sprintf(
				"EMERGENCY: Severe thunderstorm imminent in %s. Evacuate immediately.\n"+
					"Proceed to a nearby evacuation zone.\n\n"+
					"For emergency contact these hotlines of %s:\n%s",
				location, strings.ToUpper(location), contacts,
			),
		}
	default:
		return Message{}
	}
}

// Personalize prepends a greeting for the named recipient. The shared
// template is not mutated; the dispatcher calls this once per recipient.
func Personalize(name string, msg Message) Message {
	msg.Body = fmt.Sprintf("Hello %s,\n\n%s", name, msg.Body)
	return msg
}
