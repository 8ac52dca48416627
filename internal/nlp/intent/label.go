package intent

import "fmt"

// Label is a coarse conversational category.
type Label string

const (
	LabelGreeting  Label = "greeting"
	LabelFarewell  Label = "farewell"
	LabelGratitude Label = "gratitude"
	LabelHelp      Label = "help"
	// LabelUnknown is returned when no trained label applies.
	LabelUnknown Label = "unknown"
)

// ParseLabel maps a corpus label string onto the closed set of labels.
func ParseLabel(s string) (Label, error) {
	switch l := Label(s); l {
	case LabelGreeting, LabelFarewell, LabelGratitude, LabelHelp, LabelUnknown:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLabel, s)
	}
}
