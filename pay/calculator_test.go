package pay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfus93/roster-pay/airports"
	"github.com/lfus93/roster-pay/roster"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func flightDay(t *testing.T, day string, legs ...roster.FlightLeg) roster.DutyDay {
	t.Helper()
	return roster.DutyDay{Date: date(t, day), Weekday: "Mon", Type: roster.DutyFlight, Legs: legs}
}

func groundDay(t *testing.T, day string, dutyType roster.DutyType, description string) roster.DutyDay {
	t.Helper()
	return roster.DutyDay{Date: date(t, day), Weekday: "Tue", Type: dutyType, Description: description}
}

func testDirectory(t *testing.T) *airports.Directory {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airports.csv")
	content := "IATA;Lat;Long\nMXP;45,6306;8,7281\nFCO;41,8003;12,2389\nLIN;45,4450;9,2808\nGVA;46,2381;6,1089\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	dir, err := airports.Open(path)
	require.NoError(t, err)
	return dir
}

func foProfile() PilotProfile {
	return PilotProfile{Position: "FO", ExtraPosition: "Nessuna", Contract: "Standard", HomeBase: "MXP"}
}

func TestCalculateSingleFlightDay(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	r := &roster.Roster{Days: []roster.DutyDay{
		flightDay(t, "2025-01-13", roster.FlightLeg{
			FlightNumber: "EJU3842", Origin: "MXP", Destination: "FCO",
			TakeoffTime: "A10:00", LandingTime: "A11:30", HasActualTimes: true,
		}),
	}}

	res, err := calc.Calculate(r, foProfile())
	require.NoError(t, err)

	require.Len(t, res.Entries, 1)
	entry := res.Entries[0]
	assert.Equal(t, ActivityFlight, entry.Activity)
	assert.Equal(t, "EJU3842", entry.Flight)
	assert.InDelta(t, 275.79, entry.DistanceNM, 0.5)
	assert.Equal(t, 0.8, entry.Sectors)
	assert.Equal(t, 0.8, entry.OperationalSectors)
	assert.InDelta(t, 17.184, entry.Earnings, 1e-9)

	salary := res.Salary
	assert.InDelta(t, 17.184, salary.OperationalSectorsEarnings, 1e-9)
	assert.Zero(t, salary.PositioningEarnings)
	assert.InDelta(t, 5332.453, salary.GrossTotal, 1e-6)
	assert.InDelta(t, 3426.307, salary.ContributionBase, 1e-6)
	assert.InDelta(t, 463.031128, salary.SocialContributions, 1e-4)
	assert.InDelta(t, 2963.275872, salary.TaxableIncome, 1e-4)
	assert.InDelta(t, 757.146955, salary.EstimatedTax, 1e-4)
	assert.InDelta(t, 4112.274917, salary.NetEstimated, 1e-4)
	assert.Equal(t, 1, salary.BaseWorkingDays)
	assert.Equal(t, 1, salary.WorkingDays)
	assert.Zero(t, salary.MidnightStandbyDays)
	assert.Empty(t, res.IDOBonuses)
	assert.Zero(t, res.NightStopBonus)
	assert.Empty(t, res.ExtraDiariaDates)
}

func TestCalculateMidnightStandby(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	r := &roster.Roster{Days: []roster.DutyDay{
		flightDay(t, "2025-01-13",
			roster.FlightLeg{FlightNumber: "EJU3842", Origin: "MXP", Destination: "FCO", TakeoffTime: "A18:20", LandingTime: "A19:45"},
			roster.FlightLeg{FlightNumber: "EJU3843", Origin: "FCO", Destination: "MXP", TakeoffTime: "A22:50", LandingTime: "A00:36¹"},
		),
		groundDay(t, "2025-01-14", roster.DutyStandby, "Early standby (home)"),
	}}

	res, err := calc.Calculate(r, foProfile())
	require.NoError(t, err)

	salary := res.Salary
	assert.Equal(t, 1, salary.MidnightStandbyDays)
	assert.Contains(t, salary.MidnightStandbyDates, "2025-01-14")
	assert.Equal(t, 1, salary.BaseWorkingDays)
	assert.Equal(t, 2, salary.WorkingDays)
	assert.Contains(t, res.ExtraDiariaDates, "2025-01-14")

	require.Len(t, res.IDOBonuses, 1)
	assert.Equal(t, "(+€)", res.IDOBonuses[0].Symbol)
	assert.Zero(t, res.IDOBonuses[0].Amount)

	assert.InDelta(t, 34.368, salary.OperationalSectorsEarnings, 1e-9)
	assert.InDelta(t, 5349.637, salary.GrossTotal, 1e-6)
	assert.InDelta(t, 4125.696987, salary.NetEstimated, 1e-4)

	pos := Positions["FO"]
	assert.InDelta(t, 140.85, DiariaTotal(salary, pos, 1), 1e-6)
	assert.InDelta(t, 4266.546987, EstimatedPayslipTotal(salary, pos, 1), 1e-4)
}

func TestCalculateNightStopAway(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	r := &roster.Roster{Days: []roster.DutyDay{
		flightDay(t, "2025-01-13",
			roster.FlightLeg{FlightNumber: "EJU3842", Origin: "MXP", Destination: "FCO", TakeoffTime: "A18:20", LandingTime: "A19:45"}),
		flightDay(t, "2025-01-14",
			roster.FlightLeg{FlightNumber: "EJU3843", Origin: "FCO", Destination: "MXP", TakeoffTime: "A19:40", LandingTime: "A21:10"}),
	}}

	res, err := calc.Calculate(r, foProfile())
	require.NoError(t, err)

	assert.InDelta(t, 42.96, res.NightStopBonus, 1e-9)
	salary := res.Salary
	assert.Equal(t, 2, salary.BaseWorkingDays)
	assert.InDelta(t, 5392.597, salary.GrossTotal, 1e-6)
	assert.InDelta(t, 3477.859, salary.ContributionBase, 1e-6)
	assert.InDelta(t, 4149.847338, salary.NetEstimated, 1e-4)
}

func TestCalculateCompositeMonth(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	r := &roster.Roster{Days: []roster.DutyDay{
		groundDay(t, "2025-01-10", roster.DutyLeave, "Annual leave"),
		groundDay(t, "2025-01-11", roster.DutyRestDay, "Rest Day"),
		flightDay(t, "2025-01-13", roster.FlightLeg{
			FlightNumber: "EJU3842", Origin: "MXP", Destination: "FCO",
			TakeoffTime: "A10:00", LandingTime: "A11:30",
		}),
	}}
	profile := PilotProfile{Position: "SFO", ExtraPosition: "TFO + SIM", Contract: "FRV", HomeBase: "MXP", SNCUnits: 2}

	res, err := calc.Calculate(r, profile)
	require.NoError(t, err)

	salary := res.Salary
	assert.InDelta(t, 714.0947, salary.FRVBonus, 1e-6)
	assert.InDelta(t, 6, salary.SNCCompensation, 1e-9)
	assert.Equal(t, 1, salary.VacationDays)
	assert.InDelta(t, 75.18, salary.VacationCompensation, 1e-6)
	assert.Equal(t, 2, salary.BaseWorkingDays)
	assert.Equal(t, 2, salary.WorkingDays)
	assert.InDelta(t, 7888.488, salary.GrossTotal, 1e-6)
	assert.InDelta(t, 4996.7028, salary.ContributionBase, 1e-6)
	assert.InDelta(t, 5968.343979, salary.NetEstimated, 1e-4)
}

func TestCalculateTrainingEarningsStayOutOfSectorTotals(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	day := flightDay(t, "2025-01-13", roster.FlightLeg{
		FlightNumber: "EJU3842", Origin: "MXP", Destination: "FCO",
		TakeoffTime: "A10:00", LandingTime: "A11:30",
	})
	day.TrainingDuties = []roster.TrainingDuty{{Code: "G/S", Description: "Ground School", Sectors: 4}}
	r := &roster.Roster{Days: []roster.DutyDay{day}}

	res, err := calc.Calculate(r, foProfile())
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	training := res.Entries[1]
	assert.Equal(t, "Training (Ground School)", training.Activity)
	assert.Equal(t, "G/S", training.Flight)
	assert.True(t, training.IsTraining)
	assert.InDelta(t, 85.92, training.Earnings, 1e-9)
	assert.Zero(t, training.OperationalSectors)

	salary := res.Salary
	assert.InDelta(t, 17.184, salary.OperationalSectorsEarnings, 1e-9)
	assert.Zero(t, salary.PositioningEarnings)
	assert.InDelta(t, 5332.453, salary.GrossTotal, 1e-6)

	require.Len(t, res.Days, 1)
	assert.Equal(t, "Flight / Training (Ground School)", res.Days[0].Activities)
	assert.InDelta(t, 17.184+85.92, res.Days[0].Earnings, 1e-9)
	assert.Equal(t, 1, salary.BaseWorkingDays)
}

func TestCalculateTaxiLegsUnpaid(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	r := &roster.Roster{Days: []roster.DutyDay{
		flightDay(t, "2025-01-13",
			roster.FlightLeg{FlightNumber: "TAXI71", Origin: "MXP", Destination: "LIN", IsPositioning: true},
			roster.FlightLeg{FlightNumber: "EJU3842", Origin: "LIN", Destination: "FCO", TakeoffTime: "A10:00", LandingTime: "A11:30"},
		),
	}}

	res, err := calc.Calculate(r, foProfile())
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	taxi := res.Entries[0]
	assert.Equal(t, ActivityTaxi, taxi.Activity)
	assert.True(t, taxi.IsTaxi)
	assert.True(t, taxi.IsPositioning)
	assert.InDelta(t, 25.78, taxi.DistanceNM, 0.5)
	assert.Zero(t, taxi.Sectors)
	assert.Zero(t, taxi.Earnings)

	assert.Zero(t, res.Salary.PositioningEarnings)
	assert.Greater(t, res.Salary.OperationalSectorsEarnings, 0.0)
}

func TestCalculateSkipsTrainingFacilityLegs(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	r := &roster.Roster{Days: []roster.DutyDay{
		flightDay(t, "2025-01-13",
			roster.FlightLeg{FlightNumber: "EJU9001", Origin: "XWT", Destination: "MXP"},
			roster.FlightLeg{FlightNumber: "EJU3842", Origin: "MXP", Destination: "FCO", TakeoffTime: "A10:00", LandingTime: "A11:30"},
		),
	}}

	// XWT is not in the directory; the leg must be skipped before any lookup.
	res, err := calc.Calculate(r, foProfile())
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "EJU3842", res.Entries[0].Flight)
}

func TestCalculateGroundDuties(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	r := &roster.Roster{Days: []roster.DutyDay{
		{Date: date(t, "2025-01-13"), Type: roster.DutyAirportDuty, Description: "Airport standby duty", AirportDutyHours: 4.5},
		groundDay(t, "2025-01-14", roster.DutyTraining, "Simulator"),
	}}

	res, err := calc.Calculate(r, foProfile())
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	adty := res.Entries[0]
	assert.Equal(t, "Airport Duty (Airport standby duty)", adty.Activity)
	assert.True(t, adty.IsAirportDuty)
	assert.Equal(t, 2.0, adty.Sectors)
	assert.InDelta(t, 42.96, adty.Earnings, 1e-9)

	sim := res.Entries[1]
	assert.Equal(t, "Training (Simulator)", sim.Activity)
	assert.Equal(t, 4.0, sim.Sectors)
	assert.InDelta(t, 85.92, sim.Earnings, 1e-9)

	// Airport duty alone is not a working day, training is.
	assert.Equal(t, 1, res.Salary.BaseWorkingDays)
	assert.Zero(t, res.Salary.OperationalSectorsEarnings)
	assert.Zero(t, res.Salary.PositioningEarnings)
}

func TestCalculatePaymentMonthFilter(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	r := &roster.Roster{Days: []roster.DutyDay{
		flightDay(t, "2025-01-13", roster.FlightLeg{FlightNumber: "EJU3842", Origin: "MXP", Destination: "FCO", TakeoffTime: "A10:00", LandingTime: "A11:30"}),
		flightDay(t, "2025-02-03", roster.FlightLeg{FlightNumber: "EJU3850", Origin: "MXP", Destination: "LIN", TakeoffTime: "A09:00", LandingTime: "A09:40"}),
	}}

	profile := foProfile()
	profile.PaymentMonth = time.February
	res, err := calc.Calculate(r, profile)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, date(t, "2025-01-13"), res.Entries[0].Date)

	profile.PaymentMonth = time.March
	res, err = calc.Calculate(r, profile)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, date(t, "2025-02-03"), res.Entries[0].Date)

	profile.PaymentMonth = time.May
	_, err = calc.Calculate(r, profile)
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestCalculateMissingAirport(t *testing.T) {
	dir := testDirectory(t)
	calc := NewCalculator(dir)
	r := &roster.Roster{Days: []roster.DutyDay{
		flightDay(t, "2025-01-13", roster.FlightLeg{FlightNumber: "EJU1400", Origin: "GVA", Destination: "ZRH", TakeoffTime: "A10:00", LandingTime: "A10:45"}),
	}}

	_, err := calc.Calculate(r, foProfile())
	var missing *airports.MissingAirportError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "ZRH", missing.Code)

	require.NoError(t, dir.Add("ZRH", 47.4581, 8.5555))

	res, err := calc.Calculate(r, foProfile())
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.InDelta(t, 124.32, res.Entries[0].DistanceNM, 0.5)
	assert.Equal(t, 0.8, res.Entries[0].Sectors)
}

func TestCalculateRejectsInvalidProfile(t *testing.T) {
	calc := NewCalculator(testDirectory(t))
	r := &roster.Roster{Days: []roster.DutyDay{
		flightDay(t, "2025-01-13", roster.FlightLeg{FlightNumber: "EJU3842", Origin: "MXP", Destination: "FCO"}),
	}}

	profile := foProfile()
	profile.Position = "XO"
	_, err := calc.Calculate(r, profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown position")
}
