package roster

// DutyType classifies what a roster day is.
type DutyType int

const (
	DutyUnknown DutyType = iota
	DutyFlight
	DutyStandby
	DutyAirportDuty
	DutyDayOff
	DutyRestDay
	DutyLeave
	DutyTraining
)

func (d DutyType) String() string {
	switch d {
	case DutyFlight:
		return "Flight"
	case DutyStandby:
		return "Standby"
	case DutyAirportDuty:
		return "Airport Duty"
	case DutyDayOff:
		return "Day Off"
	case DutyRestDay:
		return "Rest Day"
	case DutyLeave:
		return "Leave"
	case DutyTraining:
		return "Training"
	default:
		return "Unknown"
	}
}

type dutyClass struct {
	Type        DutyType
	Description string
}

var standbyCodes = map[string]dutyClass{
	"PSBL": {DutyStandby, "Gapfill Standby Late"},
	"PSBE": {DutyStandby, "MXP Standby"},
	"ADTY": {DutyAirportDuty, "Airport Duty"},
	"CSBE": {DutyStandby, "Crewing Standby"},
	"CSBL": {DutyStandby, "Crewing Standby Late"},
	"ESBY": {DutyStandby, "Early Standby"},
	"LSBY": {DutyStandby, "Late Standby"},
}

var dayOffCodes = map[string]dutyClass{
	"GDO":  {DutyDayOff, "Guaranteed Day Off"},
	"D/O":  {DutyDayOff, "Day off"},
	"W/DO": {DutyDayOff, "Weekly Day Off"},
	"WD/O": {DutyDayOff, "Wrap Around Day Off"},
}

var restDayCodes = map[string]dutyClass{
	"REST": {DutyRestDay, "Rest Day"},
}

var trainingCodes = map[string]dutyClass{
	"LVE":  {DutyLeave, "Annual leave"},
	"SIM":  {DutyTraining, "Simulator"},
	"M2D1": {DutyTraining, "Module 2 Day 1"},
	"SIMI": {DutyTraining, "Simulator instructor"},
	"G/S":  {DutyTraining, "Ground School"},
	"LTGI": {DutyTraining, "Pre Line training ground Instructor"},
}

// classifyDutyCode maps a roster duty code to its duty type and description.
// Codes outside every table come back as DutyUnknown with the raw code as
// description.
func classifyDutyCode(code string) (DutyType, string) {
	for _, table := range []map[string]dutyClass{standbyCodes, dayOffCodes, restDayCodes, trainingCodes} {
		if c, ok := table[code]; ok {
			return c.Type, c.Description
		}
	}
	return DutyUnknown, code
}

// On a flight day the duty code marks the standby the pilot was called out
// of, not the day's activity. Codes without a friendly name pass through raw.
var initialDutyDescriptions = map[string]string{
	"PSBE": "MXP Standby",
	"ESBY": "Early Standby",
	"ADTY": "Airport Duty",
	"LSBY": "Late Standby",
}

func initialDutyDescription(code string) string {
	if d, ok := initialDutyDescriptions[code]; ok {
		return d
	}
	return code
}
