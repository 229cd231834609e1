package domain

import "errors"

// Every precondition failure maps to exactly one sentinel so callers can
// tell "too late", "already closed", "bad location", "not the owner" and
// "wrong phase" apart. Authorization and phase guards on close/open use
// the same flat set as the donate checks.
var (
	// ErrParseParams is returned for malformed call parameters.
	ErrParseParams = errors.New("malformed parameters")
	// ErrDonationEnded is returned when a donation arrives after the deadline.
	ErrDonationEnded = errors.New("donation has ended")
	// ErrDonationClosed is returned when a donation arrives on a closed campaign.
	ErrDonationClosed = errors.New("donation is closed")
	// ErrInvalidLocation is returned when the location is not in the allow-list.
	ErrInvalidLocation = errors.New("invalid donation location")
	// ErrNotOwner is returned when close or open is attempted by a non-owner.
	ErrNotOwner = errors.New("caller is not the campaign owner")
	// ErrWrongPhase is returned when close or open does not match the current phase.
	ErrWrongPhase = errors.New("campaign is in the wrong phase")
)
