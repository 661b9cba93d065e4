package pay

import "strings"

// SectorsForDistance maps a leg distance in nautical miles to its sector
// value band. Non positive distances and anything under a tenth of a mile
// are worth nothing.
func SectorsForDistance(distance float64) float64 {
	if distance <= 0 || distance < 0.1 {
		return 0
	}
	for _, band := range sectorBands {
		if band.Min < distance && distance <= band.Max {
			return band.Value
		}
	}
	return 0
}

// AirportDutySectors prices an airport duty: one sector up to four hours,
// two beyond that, plus one more when the pilot was called out to fly.
// Duties without parsed hours assume four.
func AirportDutySectors(hours float64, wasCalled bool) float64 {
	if hours <= 0 {
		hours = 4
	}
	sectors := 1.0
	if hours > 4 {
		sectors = 2
	}
	if wasCalled {
		sectors++
	}
	return sectors
}

var (
	simInstructorKeywords = []string{"instructor", "luca fusari", "instr", "teaching"}
	simTraineeKeywords    = []string{"trainee", "support", "student", "training"}
)

// SimulatorSectors prices a simulator duty from its role description:
// instructors earn four sectors, trainees none. Descriptions that match
// neither keyword set pay as instructor.
func SimulatorSectors(description string) float64 {
	desc := strings.ToLower(description)
	for _, keyword := range simInstructorKeywords {
		if strings.Contains(desc, keyword) {
			return 4
		}
	}
	for _, keyword := range simTraineeKeywords {
		if strings.Contains(desc, keyword) {
			return 0
		}
	}
	return 4
}
