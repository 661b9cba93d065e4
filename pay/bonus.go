package pay

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lfus93/roster-pay/roster"
)

// BonusInfo is one rest violation bonus line: the flight day that earned it,
// a display symbol and the amount.
type BonusInfo struct {
	Date   time.Time
	Symbol string
	Amount float64
}

// clockDigits strips a raw roster time down to digits and colons. Roster
// exports decorate times with actual markers, day crossing symbols and
// mangled encodings, none of which survive this.
func clockDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ':' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseLandingClock extracts hour and minute from a raw landing time like
// "A23:50¹/00:36". Only the part before a slash counts, and out of range
// values are rejected.
func parseLandingClock(raw string) (hour, minute int, ok bool) {
	cleaned := clockDigits(strings.SplitN(raw, "/", 2)[0])
	if !strings.Contains(cleaned, ":") {
		return 0, 0, false
	}
	parts := strings.Split(cleaned, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// hasMidnightSymbol reports whether a raw landing time carries the roster's
// next day marker: a superscript one, or the replacement character it decays
// to when the export mangles the encoding.
func hasMidnightSymbol(raw string) bool {
	return strings.ContainsRune(raw, '¹') || strings.ContainsRune(raw, '�')
}

// idoBonuses scans consecutive day pairs for landings that cut into the rest
// period of the following day. A landing later than 29 minutes before the
// next day's start earns: half the IDO value when within 90 minutes of
// midnight before a day off or leave, the full value when deeper in, and a
// zero amount marker before a standby day.
func idoBonuses(days []roster.DutyDay, idoValue float64) []BonusInfo {
	var bonuses []BonusInfo

	for i := 0; i+1 < len(days); i++ {
		day1, day2 := days[i], days[i+1]

		if day1.Type != roster.DutyFlight || len(day1.Legs) == 0 {
			continue
		}
		landingTime := day1.Legs[len(day1.Legs)-1].LandingTime
		if landingTime == "" {
			continue
		}
		hour, minute, ok := parseLandingClock(landingTime)
		if !ok {
			continue
		}

		landedAt := day1.Date.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		if hour < 5 {
			landedAt = landedAt.Add(24 * time.Hour)
		}

		if !landedAt.After(day2.Date.Add(-29 * time.Minute)) {
			continue
		}
		minutesIntoDayOff := landedAt.Sub(day2.Date).Minutes()

		switch day2.Type {
		case roster.DutyDayOff, roster.DutyLeave:
			if minutesIntoDayOff <= 90 {
				bonuses = append(bonuses, BonusInfo{Date: day1.Date, Symbol: "(++€)", Amount: idoValue / 2})
			} else {
				bonuses = append(bonuses, BonusInfo{Date: day1.Date, Symbol: "(+++€)", Amount: idoValue})
			}
		case roster.DutyStandby:
			bonuses = append(bonuses, BonusInfo{Date: day1.Date, Symbol: "(+€)", Amount: 0})
		}
	}
	return bonuses
}

// nightStopBonus pays two sector values for every night spent away from home
// base between two flight days, detected when one day's last landing airport
// feeds the next day's first departure.
func nightStopBonus(days []roster.DutyDay, homeBase string, sectorValue float64) float64 {
	bonus := 0.0

	for i := 0; i+1 < len(days); i++ {
		day1, day2 := days[i], days[i+1]

		if day1.Type != roster.DutyFlight || day2.Type != roster.DutyFlight {
			continue
		}
		if len(day1.Legs) == 0 || len(day2.Legs) == 0 {
			continue
		}
		lastLeg := day1.Legs[len(day1.Legs)-1]
		if lastLeg.Destination != homeBase && lastLeg.Destination == day2.Legs[0].Origin {
			bonus += nightStopBonusMultiplier * sectorValue
		}
	}
	return bonus
}

// extraDiariaDates finds standby days that start inside a bounded window
// around the previous day's last landing, 30 minutes before midnight to 8
// hours after. Those standbys earn a per diem they would otherwise miss.
func extraDiariaDates(days []roster.DutyDay) map[string]struct{} {
	extraDays := make(map[string]struct{})

	for i := 0; i+1 < len(days); i++ {
		day1, day2 := days[i], days[i+1]

		if day1.Type != roster.DutyFlight || len(day1.Legs) == 0 {
			continue
		}
		lastLeg := day1.Legs[len(day1.Legs)-1]
		if lastLeg.LandingTime == "" {
			continue
		}

		symbol := hasMidnightSymbol(lastLeg.LandingTime)
		hour, minute, ok := parseLandingClock(lastLeg.LandingTime)
		if !ok {
			continue
		}

		landedAt := day1.Date.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		if symbol {
			landedAt = landedAt.Add(24 * time.Hour)
		} else if hour < 12 {
			if lastLeg.TakeoffTime != "" {
				// Takeoff times keep everything past the first colon group,
				// slashes included, unlike landings.
				takeoffClock := clockDigits(lastLeg.TakeoffTime)
				if strings.Contains(takeoffClock, ":") {
					takeoffHour, err := strconv.Atoi(strings.Split(takeoffClock, ":")[0])
					if err != nil {
						continue
					}
					if takeoffHour >= 18 && hour <= 6 {
						landedAt = landedAt.Add(24 * time.Hour)
					}
				}
			} else if hour <= 6 {
				landedAt = landedAt.Add(24 * time.Hour)
			}
		}

		diffMinutes := landedAt.Sub(day2.Date).Minutes()
		if diffMinutes >= -30 && diffMinutes <= 480 && day2.Type == roster.DutyStandby {
			extraDays[day2.Date.Format("2006-01-02")] = struct{}{}
			log.Info(fmt.Sprintf("Extra diaria added for %s, landing at %s", day2.Date.Format("2006-01-02"), landedAt.Format("2006-01-02 15:04")))
		}
	}
	return extraDays
}

// midnightStandbyDates counts standby and airport duty days that follow a
// flight landing after midnight; those days earn a per diem and count as
// working days. The symbol set here also accepts a bare question mark, which
// some exports leave where the superscript was.
func midnightStandbyDates(days []roster.DutyDay) (int, map[string]struct{}) {
	midnightDays := 0
	dates := make(map[string]struct{})

	for i := 0; i+1 < len(days); i++ {
		day1, day2 := days[i], days[i+1]

		if day1.Type != roster.DutyFlight || len(day1.Legs) == 0 {
			continue
		}
		if day2.Type != roster.DutyStandby && day2.Type != roster.DutyAirportDuty {
			continue
		}
		lastLeg := day1.Legs[len(day1.Legs)-1]
		if lastLeg.LandingTime == "" {
			continue
		}

		symbol := hasMidnightSymbol(lastLeg.LandingTime) || strings.Contains(lastLeg.LandingTime, "?")
		hour, _, ok := parseLandingClock(lastLeg.LandingTime)
		if !ok {
			continue
		}

		crossing := symbol
		if !crossing && hour <= 6 && lastLeg.TakeoffTime != "" {
			takeoffClock := clockDigits(lastLeg.TakeoffTime)
			if strings.Contains(takeoffClock, ":") {
				takeoffHour, err := strconv.Atoi(strings.Split(takeoffClock, ":")[0])
				if err != nil {
					continue
				}
				if takeoffHour >= 18 {
					crossing = true
				}
			}
		}

		if crossing {
			midnightDays++
			dates[day2.Date.Format("2006-01-02")] = struct{}{}
			log.Info(fmt.Sprintf("Adding diaria for standby day %s after midnight landing from %s", day2.Date.Format("2006-01-02"), day1.Date.Format("2006-01-02")))
		}
	}

	log.Info(fmt.Sprintf("Total midnight standby days found: %d", midnightDays))
	return midnightDays, dates
}
