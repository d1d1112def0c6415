package domain

import "go.trai.ch/zerr"

// Priority represents the urgency of a change or invocation.
// The ordering is Low < Medium < High.
type Priority uint8

const (
	// Low priority changes can wait for the next convenient run.
	Low Priority = iota
	// Medium priority changes should be processed soon.
	Medium
	// High priority changes affect core surfaces and are processed first.
	High
)

// String returns the lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case High:
		return "high"
	case Medium:
		return "medium"
	default:
		return "low"
	}
}

// Max returns the more severe of two priorities.
func (p Priority) Max(other Priority) Priority {
	if other > p {
		return other
	}
	return p
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePriority converts a string into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "high":
		return High, nil
	case "medium":
		return Medium, nil
	case "low", "":
		return Low, nil
	default:
		return Low, zerr.With(ErrInvalidPriority, "priority", s)
	}
}
