package roster

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dhawton/log4g"
)

var log = log4g.Category("roster")

var (
	ErrEmptyRoster = errors.New("empty roster content")
	ErrNoSchedule  = errors.New("no valid date entries found in roster")
	ErrNoValidDays = errors.New("no valid schedule data found")
)

var (
	dayAnchorPattern    = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)
	dayHeaderPattern    = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+(\w+)`)
	dutyCodePattern     = regexp.MustCompile(`\s(PSBL|PSBE|ESBY|ADTY|CSBE|CSBL|GDO|D/O|LVE|SIM|M2D1|LSBY|REST|WD/O|SIMI|G/S|LTGI)(\s|$)`)
	flightNumberPattern = regexp.MustCompile(`\s\d{4}\s`)
	legPattern          = regexp.MustCompile(`([A-Z0-9]+)\s*(?:\[(\w+)\])?\s*(\*?)\s*([A-Z]{3})\s*-\s*([A-Z]{3})`)
	timePattern         = regexp.MustCompile(`(A?)(\d{2}:\d{2}[^\s]*)\s*-\s*(A?)(\d{2}:\d{2}[^\s]*)`)
	timeRangePattern    = regexp.MustCompile(`(\d{2}:\d{2})\s*-\s*(\d{2}:\d{2})`)
	groundSchoolPattern = regexp.MustCompile(`\bG/S\b`)
	lineTrainingPattern = regexp.MustCompile(`\bLTGI\b`)
)

// FlightLeg is one sector flown or positioned on a duty day. Takeoff and
// landing times are kept raw: they may carry an actual time marker, a
// midnight crossing symbol or an alternate time after a slash.
type FlightLeg struct {
	FlightNumber   string
	Aircraft       string
	Origin         string
	Destination    string
	TakeoffTime    string
	LandingTime    string
	IsPositioning  bool
	HasActualTimes bool
}

// TrainingDuty is a ground training session rostered alongside flights.
type TrainingDuty struct {
	Code        string
	Description string
	Sectors     float64
}

// DutyDay is one calendar day of the parsed roster.
type DutyDay struct {
	Date             time.Time
	Weekday          string
	Type             DutyType
	Description      string
	InitialDuty      string
	AirportDutyHours float64
	WasCalled        bool
	Legs             []FlightLeg
	TrainingDuties   []TrainingDuty
}

// Roster is the parsed duty schedule, one entry per day block found in the
// source text.
type Roster struct {
	Days []DutyDay
}

// Parse extracts the daily schedule from raw roster text. It is pure and
// deterministic: the same text always yields the same roster, and malformed
// day blocks are dropped with a log line rather than failing the whole
// parse.
func Parse(text string) (*Roster, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyRoster
	}

	lines := strings.Split(trimmed, "\n")

	start := -1
	for i := range lines {
		if dayAnchorPattern.MatchString(lines[i]) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, ErrNoSchedule
	}

	var days []DutyDay
	var block []string

	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "Total Hours and Statistics") {
			break
		}
		if line == "" {
			continue
		}

		if dayAnchorPattern.MatchString(line) && len(block) > 0 {
			if day := processDayBlock(block); day != nil {
				days = append(days, *day)
			}
			block = []string{line}
		} else {
			block = append(block, line)
		}
	}
	if len(block) > 0 {
		if day := processDayBlock(block); day != nil {
			days = append(days, *day)
		}
	}

	if len(days) == 0 {
		return nil, ErrNoValidDays
	}
	return &Roster{Days: days}, nil
}

func processDayBlock(lines []string) *DutyDay {
	date, weekday, ok := matchDayHeader(lines[0])
	if !ok {
		return nil
	}

	dayText := strings.Join(lines, "\n")
	day := &DutyDay{Date: date, Weekday: weekday}
	code := findDutyCode(lines[0])

	if isFlightDay(dayText) {
		day.Type = DutyFlight
		if code != "" {
			day.InitialDuty = initialDutyDescription(code)
		}
	} else if code != "" {
		day.Type, day.Description = classifyDutyCode(code)
		if code == "ADTY" {
			day.AirportDutyHours = parseAirportDutyHours(dayText)
		}
	} else {
		day.Type = DutyUnknown
	}

	day.Legs = extractLegs(lines)
	day.TrainingDuties = extractTrainingDuties(dayText)
	return day
}

// matchDayHeader reads the date and weekday token that open a day block.
func matchDayHeader(line string) (time.Time, string, bool) {
	m := dayHeaderPattern.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, "", false
	}
	date, err := time.Parse("02/01/2006", m[1])
	if err != nil {
		log.Error("Invalid date in day header: " + m[1])
		return time.Time{}, "", false
	}
	return date, m[2], true
}

// findDutyCode looks for a known duty code on the first line of a day block.
// Returns the empty string when the line carries none.
func findDutyCode(firstLine string) string {
	m := dutyCodePattern.FindStringSubmatch(firstLine)
	if m == nil {
		return ""
	}
	return m[1]
}

// isFlightDay reports whether a day block contains flying: a carrier prefix,
// a bare four digit flight number, or a ground positioning marker.
func isFlightDay(dayText string) bool {
	return strings.Contains(dayText, "EJU") ||
		strings.Contains(dayText, "FR") ||
		flightNumberPattern.MatchString(dayText) ||
		strings.Contains(dayText, "TAXI") ||
		strings.Contains(dayText, "OWN")
}

// extractLegs pulls every flight leg out of a day block. Crew list lines are
// skipped. Legs and time ranges are matched up by position within each line;
// legs beyond the last time range keep empty times.
func extractLegs(lines []string) []FlightLeg {
	var legs []FlightLeg

	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "CP ") || strings.HasPrefix(t, "FO ") ||
			strings.HasPrefix(t, "FA ") || strings.HasPrefix(t, "PU ") {
			continue
		}

		legMatches := legPattern.FindAllStringSubmatch(line, -1)
		timeMatches := timePattern.FindAllStringSubmatch(line, -1)

		for i, m := range legMatches {
			leg := FlightLeg{
				FlightNumber:  m[1],
				Aircraft:      m[2],
				Origin:        m[4],
				Destination:   m[5],
				IsPositioning: m[3] != "" || strings.HasPrefix(m[1], "TAXI"),
			}
			if i < len(timeMatches) {
				tm := timeMatches[i]
				leg.HasActualTimes = tm[1] != "" || tm[3] != ""
				leg.TakeoffTime = tm[2]
				leg.LandingTime = tm[4]
			}
			legs = append(legs, leg)
		}
	}
	return legs
}

// extractTrainingDuties finds ground school and line training instructor
// sessions in a day block. Each counts at most once per day no matter how
// many sessions the block lists.
func extractTrainingDuties(dayText string) []TrainingDuty {
	var duties []TrainingDuty
	if groundSchoolPattern.MatchString(dayText) {
		duties = append(duties, TrainingDuty{Code: "G/S", Description: "Ground School", Sectors: 4})
	}
	if lineTrainingPattern.MatchString(dayText) {
		duties = append(duties, TrainingDuty{Code: "LTGI", Description: "Pre Line training ground Instructor", Sectors: 4})
	}
	return duties
}

// parseAirportDutyHours reads the first hh:mm - hh:mm range in the block and
// returns its length in hours, wrapping past midnight when the end is not
// after the start. Blocks without a range default to 6 hours.
func parseAirportDutyHours(dayText string) float64 {
	m := timeRangePattern.FindStringSubmatch(dayText)
	if m == nil {
		return 6
	}

	start := clockMinutes(m[1])
	end := clockMinutes(m[2])
	if end <= start {
		end += 24 * 60
	}
	return float64(end-start) / 60
}

func clockMinutes(hhmm string) int {
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[3:])
	return h*60 + m
}
