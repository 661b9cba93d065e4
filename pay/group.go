package pay

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DailySummary is one row of the per day rollup: the day's activities joined
// into one label, totals for its rows and a printable itinerary.
type DailySummary struct {
	Date       time.Time
	Activities string
	Flights    int
	Sectors    float64
	Earnings   float64
	Itinerary  string
}

// groupByDay rolls schedule entries up into one summary per date, sorted by
// date. Activity labels keep their first appearance order within the day.
func groupByDay(entries []ScheduleEntry) []DailySummary {
	grouped := make(map[time.Time][]ScheduleEntry)
	var dates []time.Time
	for _, entry := range entries {
		if _, ok := grouped[entry.Date]; !ok {
			dates = append(dates, entry.Date)
		}
		grouped[entry.Date] = append(grouped[entry.Date], entry)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	summaries := make([]DailySummary, 0, len(dates))
	for _, date := range dates {
		dayEntries := grouped[date]
		summary := DailySummary{Date: date, Itinerary: itinerary(dayEntries)}

		var labels []string
		seen := make(map[string]struct{})
		for _, entry := range dayEntries {
			if _, ok := seen[entry.Activity]; !ok {
				seen[entry.Activity] = struct{}{}
				labels = append(labels, entry.Activity)
			}
			summary.Flights++
			summary.Sectors += entry.Sectors
			summary.Earnings += entry.Earnings
		}
		summary.Activities = strings.Join(labels, " / ")
		summaries = append(summaries, summary)
	}
	return summaries
}

// itinerary renders a day's routing. Operational legs chain the first origin
// through every arrival, positioning legs wrap as POS(origin-destination),
// and days with no positive sector rows render as ---.
func itinerary(dayEntries []ScheduleEntry) string {
	var operational, positioning []ScheduleEntry
	for _, entry := range dayEntries {
		if entry.Sectors <= 0 {
			continue
		}
		if entry.IsPositioning {
			positioning = append(positioning, entry)
		} else {
			operational = append(operational, entry)
		}
	}
	if len(operational) == 0 && len(positioning) == 0 {
		return "---"
	}

	var parts []string
	if len(operational) > 0 {
		route := []string{operational[0].Origin}
		for _, entry := range operational {
			route = append(route, entry.Destination)
		}
		parts = append(parts, strings.Join(route, " - "))
	}
	if len(positioning) > 0 {
		routes := make([]string, 0, len(positioning))
		for _, entry := range positioning {
			routes = append(routes, fmt.Sprintf("POS(%s-%s)", entry.Origin, entry.Destination))
		}
		if len(parts) > 0 {
			parts = append(parts, " + "+strings.Join(routes, " + "))
		} else {
			parts = append(parts, strings.Join(routes, " + "))
		}
	}
	return strings.Join(parts, "")
}
