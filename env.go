package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lfus93/roster-pay/pay"
)

// Getenv looks up key in the environment, falling back when unset.
func Getenv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// profileFromEnv builds the pilot profile from the environment, defaulting to
// a first officer on the standard contract based at Malpensa.
func profileFromEnv() (pay.PilotProfile, error) {
	profile := pay.PilotProfile{
		Position:      Getenv("POSITION", "FO"),
		ExtraPosition: Getenv("EXTRA_POSITION", "Nessuna"),
		Contract:      Getenv("CONTRACT", "Standard"),
		HomeBase:      Getenv("HOME_BASE", "MXP"),
	}

	if raw := Getenv("SNC_UNITS", "0"); raw != "" {
		units, err := strconv.Atoi(raw)
		if err != nil {
			return pay.PilotProfile{}, fmt.Errorf("SNC_UNITS must be a number, got %q", raw)
		}
		profile.SNCUnits = units
	}

	if raw := Getenv("PAYMENT_MONTH", ""); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return pay.PilotProfile{}, fmt.Errorf("PAYMENT_MONTH must be 1-12, got %q", raw)
		}
		profile.PaymentMonth = time.Month(month)
	}

	return profile, profile.Validate()
}
