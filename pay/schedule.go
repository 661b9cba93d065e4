package pay

import (
	"fmt"
	"strings"
	"time"

	"github.com/lfus93/roster-pay/roster"
)

// Activity labels used on schedule entries.
const (
	ActivityFlight      = "Flight"
	ActivityPositioning = "Positioning"
	ActivityTaxi        = "TAXI (unpaid)"
)

// trainingFacilities are simulator sites that appear as leg endpoints on
// training flights but are not real airports. Legs touching them are not
// payable flying.
var trainingFacilities = map[string]struct{}{
	"XWT": {},
	"XDH": {},
}

// ScheduleEntry is one row of the detailed pay table: a single leg, training
// session or ground duty with its sector and earnings columns.
type ScheduleEntry struct {
	Date               time.Time
	Activity           string
	Flight             string
	Origin             string
	Destination        string
	DistanceNM         float64
	Sectors            float64
	OperationalSectors float64
	Earnings           float64
	IsPositioning      bool
	IsTaxi             bool
	IsAirportDuty      bool
	IsTraining         bool
}

// buildEntries turns parsed duty days into schedule rows, pricing each leg's
// distance into sectors. Days outside the profile's roster month are skipped
// before any airport lookup happens.
func (c *Calculator) buildEntries(r *roster.Roster, profile PilotProfile) ([]ScheduleEntry, error) {
	rosterMonth := profile.RosterMonth()
	if rosterMonth != 0 {
		log.Info(fmt.Sprintf("Filtering for payment month %d (roster month %d)", profile.PaymentMonth, rosterMonth))
	} else {
		log.Info("No month filtering - processing all dates")
	}

	var entries []ScheduleEntry
	totalDays := 0
	processedDays := 0

	for _, day := range r.Days {
		totalDays++

		if rosterMonth != 0 && day.Date.Month() != rosterMonth {
			log.Debug(fmt.Sprintf("Skipping day %s - not in roster month %d", day.Date.Format("2006-01-02"), rosterMonth))
			continue
		}
		processedDays++

		if day.Type == roster.DutyFlight {
			for _, leg := range day.Legs {
				if _, ok := trainingFacilities[leg.Origin]; ok {
					continue
				}
				if _, ok := trainingFacilities[leg.Destination]; ok {
					continue
				}

				distance, err := c.dir.Distance(leg.Origin, leg.Destination)
				if err != nil {
					return nil, err
				}
				sectors := SectorsForDistance(distance)
				isTaxi := strings.HasPrefix(leg.FlightNumber, "TAXI")

				activity := ActivityFlight
				if isTaxi {
					activity = ActivityTaxi
				} else if leg.IsPositioning {
					activity = ActivityPositioning
				}
				if isTaxi {
					sectors = 0
				}

				entries = append(entries, ScheduleEntry{
					Date:          day.Date,
					Activity:      activity,
					Flight:        leg.FlightNumber,
					Origin:        leg.Origin,
					Destination:   leg.Destination,
					DistanceNM:    distance,
					Sectors:       sectors,
					IsPositioning: leg.IsPositioning,
					IsTaxi:        isTaxi,
				})
			}

			for _, duty := range day.TrainingDuties {
				entries = append(entries, ScheduleEntry{
					Date:        day.Date,
					Activity:    fmt.Sprintf("Training (%s)", duty.Description),
					Flight:      duty.Code,
					Origin:      "---",
					Destination: "---",
					Sectors:     duty.Sectors,
					IsTraining:  true,
				})
			}
			continue
		}

		sectors := 0.0
		switch {
		case day.Type == roster.DutyAirportDuty:
			sectors = AirportDutySectors(day.AirportDutyHours, day.WasCalled)
		case day.Type == roster.DutyTraining &&
			(strings.Contains(day.Description, "SIM") || strings.Contains(day.Description, "Simulator")):
			sectors = SimulatorSectors(day.Description)
		case day.Type == roster.DutyTraining &&
			(strings.Contains(day.Description, "Ground School") || strings.Contains(day.Description, "Pre Line training ground Instructor")):
			sectors = 4
		}

		entries = append(entries, ScheduleEntry{
			Date:          day.Date,
			Activity:      fmt.Sprintf("%s (%s)", day.Type, day.Description),
			Flight:        "---",
			Origin:        "---",
			Destination:   "---",
			Sectors:       sectors,
			IsAirportDuty: day.Type == roster.DutyAirportDuty,
			IsTraining:    day.Type == roster.DutyTraining,
		})
	}

	log.Info(fmt.Sprintf("Processed %d/%d days, generated %d schedule entries", processedDays, totalDays, len(entries)))

	if len(entries) == 0 {
		if rosterMonth != 0 {
			log.Error(fmt.Sprintf("No schedule entries found for roster month %d, check the roster covers it", rosterMonth))
		} else {
			log.Error("No schedule entries found, check the roster file format")
		}
		return nil, ErrNoEntries
	}
	return entries, nil
}
