package pay

import (
	"errors"

	"github.com/dhawton/log4g"

	"github.com/lfus93/roster-pay/airports"
	"github.com/lfus93/roster-pay/roster"
)

var log = log4g.Category("pay")

// ErrNoEntries is returned when a roster produces no payable schedule rows,
// for example when the month filter excludes every day.
var ErrNoEntries = errors.New("no valid flight data found in roster")

// Calculator prices parsed rosters against a pilot profile. The airport
// directory is shared with the caller and may gain airports between attempts.
type Calculator struct {
	dir *airports.Directory
}

func NewCalculator(dir *airports.Directory) *Calculator {
	return &Calculator{dir: dir}
}

// Result bundles everything one calculation produces.
type Result struct {
	Entries          []ScheduleEntry
	Days             []DailySummary
	IDOBonuses       []BonusInfo
	NightStopBonus   float64
	ExtraDiariaDates map[string]struct{}
	Salary           SalaryCalculation
}

// Calculate prices a parsed roster against the profile. An unknown airport
// surfaces as *airports.MissingAirportError with no partial state kept, so
// the caller can add the airport and call again; every attempt rebuilds from
// scratch and retries converge on the same result.
//
// The bonus scans walk the full parsed roster even when a payment month
// filter trims the schedule, matching how rest violations straddle month
// boundaries.
func (c *Calculator) Calculate(r *roster.Roster, profile PilotProfile) (*Result, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	pos := Positions[profile.Position]
	threshold := Contracts[profile.Contract].SectorThreshold

	entries, err := c.buildEntries(r, profile)
	if err != nil {
		return nil, err
	}

	applyEarnings(entries, pos.SectorValue, threshold)

	bonuses := idoBonuses(r.Days, pos.IDOValue)
	totalIDOBonus := 0.0
	for _, b := range bonuses {
		totalIDOBonus += b.Amount
	}
	nightStop := nightStopBonus(r.Days, profile.HomeBase, pos.SectorValue)
	extraDiaria := extraDiariaDates(r.Days)

	days := groupByDay(entries)

	midnightDays, midnightDates := midnightStandbyDates(r.Days)

	salary := composeSalary(entries, days, profile, pos, nightStop, totalIDOBonus, midnightDays, midnightDates)

	return &Result{
		Entries:          entries,
		Days:             days,
		IDOBonuses:       bonuses,
		NightStopBonus:   nightStop,
		ExtraDiariaDates: extraDiaria,
		Salary:           salary,
	}, nil
}
