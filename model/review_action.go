package model

import (
	"fmt"
	"strings"
)

// Review actions carried in button custom IDs.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

const customIDSeparator = "_"

// ReviewAction identifies what a review button does and to whom. It is the
// typed form of the control custom ID; the string encoding exists only at
// the Discord boundary.
type ReviewAction struct {
	Action string
	UserID string
}

// CustomID encodes the action as a button custom ID, e.g. "accept_42".
func (a ReviewAction) CustomID() string {
	return a.Action + customIDSeparator + a.UserID
}

// ParseCustomID decodes a button custom ID. The split happens once at the
// first separator, so the user ID is everything after it even if it contains
// the separator itself.
func ParseCustomID(customID string) (ReviewAction, error) {
	parts := strings.SplitN(customID, customIDSeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ReviewAction{}, fmt.Errorf("malformed control custom ID %q", customID)
	}
	return ReviewAction{Action: parts[0], UserID: parts[1]}, nil
}
