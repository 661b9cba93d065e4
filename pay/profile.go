package pay

import (
	"fmt"
	"time"
)

// PilotProfile describes the pilot whose roster is being priced. PaymentMonth,
// when nonzero, restricts the calculation to the roster month that pays out in
// that month: the month before it, with January paying out December.
type PilotProfile struct {
	Position      string
	ExtraPosition string
	Contract      string
	HomeBase      string
	SNCUnits      int
	PaymentMonth  time.Month
}

// Validate checks the profile against the pay tables.
func (p PilotProfile) Validate() error {
	if _, ok := Positions[p.Position]; !ok {
		return fmt.Errorf("unknown position %q", p.Position)
	}
	if _, ok := ExtraPositions[p.ExtraPosition]; !ok {
		return fmt.Errorf("unknown extra position %q", p.ExtraPosition)
	}
	if _, ok := Contracts[p.Contract]; !ok {
		return fmt.Errorf("unknown contract type %q", p.Contract)
	}
	if p.SNCUnits < 0 {
		return fmt.Errorf("snc units must not be negative, got %d", p.SNCUnits)
	}
	if p.PaymentMonth < 0 || p.PaymentMonth > 12 {
		return fmt.Errorf("invalid payment month %d", p.PaymentMonth)
	}
	return nil
}

// RosterMonth returns the roster month covered by this profile's payment
// month, or zero when no month filter is set.
func (p PilotProfile) RosterMonth() time.Month {
	if p.PaymentMonth == 0 {
		return 0
	}
	if p.PaymentMonth == time.January {
		return time.December
	}
	return p.PaymentMonth - 1
}
