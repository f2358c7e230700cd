package model

import "fmt"

// Status is the review state of a suggestion.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusAccepted    Status = "Accepted"
	StatusRejected    Status = "Rejected"
	StatusUnderReview Status = "Under Review"
)

// AllStatuses lists every valid status, in the order they are presented.
var AllStatuses = []Status{StatusPending, StatusAccepted, StatusRejected, StatusUnderReview}

// statusColors maps each status to its embed color. Keyed by the enum so that
// adding a status without a color is caught by ColorFor's fallback in tests.
var statusColors = map[Status]int{
	StatusPending:     0x3498DB, // blue
	StatusAccepted:    0x2ECC71, // green
	StatusRejected:    0xE74C3C, // red
	StatusUnderReview: 0xF1C40F, // yellow
}

// defaultStatusColor is used if a status ever misses an entry in statusColors.
const defaultStatusColor = 0x3498DB

// ParseStatus validates a raw status string against the enum.
func ParseStatus(raw string) (Status, error) {
	for _, s := range AllStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// Valid reports whether s is one of the enum values.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Color returns the embed color for the status.
func (s Status) Color() int {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return defaultStatusColor
}

func (s Status) String() string {
	return string(s)
}
