package pay

// applyEarnings walks the schedule in roster order pricing each row and
// filling its operational sectors column. Operational sectors below the
// contract threshold pay the plain sector value and sectors beyond it pay
// double; a row that straddles the threshold is split between the two rates.
// Positioning, airport duty and training sectors pay flat and never advance
// the operational total. TAXI rows are unpaid.
func applyEarnings(entries []ScheduleEntry, sectorValue, threshold float64) {
	operationalPrev := 0.0

	for i := range entries {
		entry := &entries[i]

		isOperational := entry.Activity == ActivityFlight && !entry.IsPositioning
		if isOperational {
			entry.OperationalSectors = entry.Sectors
		}

		if entry.Sectors <= 0 {
			continue
		}

		switch {
		case isOperational:
			cumulative := operationalPrev + entry.Sectors
			switch {
			case operationalPrev < threshold && cumulative > threshold:
				below := threshold - operationalPrev
				above := cumulative - threshold
				entry.Earnings = below*sectorValue + above*sectorValue*overtimeSectorMultiplier
			case operationalPrev >= threshold:
				entry.Earnings = entry.Sectors * sectorValue * overtimeSectorMultiplier
			default:
				entry.Earnings = entry.Sectors * sectorValue
			}
			operationalPrev = cumulative
		case entry.IsPositioning:
			entry.Earnings = entry.Sectors * sectorValue
		case entry.IsAirportDuty:
			entry.Earnings = entry.Sectors * sectorValue
		case entry.IsTraining:
			entry.Earnings = entry.Sectors * sectorValue
		case entry.IsTaxi:
			entry.Earnings = 0
		}
	}
}
