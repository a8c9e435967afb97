// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// Fortune is a short text shown to visitors.
// Fortunes are created once and never updated or deleted.
type Fortune struct {
	// ID is assigned by storage on insert.
	ID int64

	// Text is the fortune itself. Never blank for a persisted fortune.
	Text string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MsgTextBlank is the message reported when a fortune has no text.
const MsgTextBlank = "can't be blank"

// NewFortune builds an unsaved fortune and checks its invariants.
// The text is stored exactly as given; only the blank check trims it.
func NewFortune(text string) (*Fortune, error) {
	f := &Fortune{Text: text}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate reports a *ValidationError when the fortune text is empty
// or whitespace only.
func (f *Fortune) Validate() error {
	if strings.TrimSpace(f.Text) == "" {
		return NewValidationError("text", MsgTextBlank)
	}

	return nil
}
