package pay

import "strings"

// SalaryCalculation is the final monthly salary breakdown.
type SalaryCalculation struct {
	GrossTotal                 float64
	NetEstimated               float64
	OperationalSectorsEarnings float64
	PositioningEarnings        float64
	FRVBonus                   float64
	SNCCompensation            float64
	VacationCompensation       float64
	VacationDays               int
	TaxableIncome              float64
	ContributionBase           float64
	EstimatedTax               float64
	SocialContributions        float64
	WorkingDays                int
	BaseWorkingDays            int
	MidnightStandbyDays        int
	MidnightStandbyDates       map[string]struct{}
}

// composeSalary combines the priced schedule, the daily rollup and the bonus
// scans into the final breakdown. Training and airport duty earnings stay
// visible per row but are not part of the sector earnings total; only
// operational and positioning rows feed it.
func composeSalary(entries []ScheduleEntry, days []DailySummary, profile PilotProfile,
	pos Position, nightStop, totalIDOBonus float64,
	midnightDays int, midnightDates map[string]struct{}) SalaryCalculation {

	extraPercentage := ExtraPositions[profile.ExtraPosition]
	finalBase := pos.BaseSalary + pos.BaseSalary*extraPercentage/100
	finalAllowance := pos.Allowance + pos.Allowance*extraPercentage/100

	operationalEarnings := 0.0
	positioningEarnings := 0.0
	for _, entry := range entries {
		if entry.IsPositioning {
			positioningEarnings += entry.Earnings
		} else if entry.Activity == ActivityFlight {
			operationalEarnings += entry.Earnings
		}
	}
	totalSectorEarnings := operationalEarnings + positioningEarnings

	frvBonus := 0.0
	if profile.Contract == "FRV" {
		frvBonus = (pos.BaseSalary + pos.Allowance) * frvContractIncreaseRate
	}

	sncCompensation := float64(profile.SNCUnits) * sncSectorMultiplier

	vacationDays := 0
	baseWorkingDays := 0
	for _, day := range days {
		if strings.Contains(day.Activities, "Leave") {
			vacationDays++
		}
		if strings.Contains(day.Activities, "Flight") ||
			strings.Contains(day.Activities, "Positioning") ||
			strings.Contains(day.Activities, "Training") ||
			strings.Contains(day.Activities, "Rest Day") {
			baseWorkingDays++
		}
	}
	vacationCompensation := float64(vacationDays) * vacationPayMultiplier * pos.SectorValue

	grossTotal := finalBase + finalAllowance + totalSectorEarnings +
		frvBonus + vacationCompensation + sncCompensation +
		nightStop + totalIDOBonus

	contributionBase := finalBase + finalAllowance/2 + totalSectorEarnings/2 +
		frvBonus/2 + vacationCompensation + nightStop +
		totalIDOBonus + sncCompensation

	socialContributions := contributionBase * totalContributionRate()
	taxableIncome := contributionBase - socialContributions
	estimatedTax := progressiveTax(taxableIncome)

	workingDays := baseWorkingDays + midnightDays

	netEstimated := taxableIncome - estimatedTax + finalAllowance/2 +
		totalSectorEarnings/2 + frvBonus/2

	return SalaryCalculation{
		GrossTotal:                 grossTotal,
		NetEstimated:               netEstimated,
		OperationalSectorsEarnings: operationalEarnings,
		PositioningEarnings:        positioningEarnings,
		FRVBonus:                   frvBonus,
		SNCCompensation:            sncCompensation,
		VacationCompensation:       vacationCompensation,
		VacationDays:               vacationDays,
		TaxableIncome:              taxableIncome,
		ContributionBase:           contributionBase,
		EstimatedTax:               estimatedTax,
		SocialContributions:        socialContributions,
		WorkingDays:                workingDays,
		BaseWorkingDays:            baseWorkingDays,
		MidnightStandbyDays:        midnightDays,
		MidnightStandbyDates:       midnightDates,
	}
}

// DiariaTotal is the tax free per diem for the month: every working day plus
// every extra diaria standby day pays one diaria at the position's rate.
func DiariaTotal(calc SalaryCalculation, pos Position, extraDiariaDays int) float64 {
	return float64(calc.WorkingDays+extraDiariaDays) * pos.Diaria
}

// EstimatedPayslipTotal is the net estimate with the per diem added, the
// figure a payslip bottom line shows.
func EstimatedPayslipTotal(calc SalaryCalculation, pos Position, extraDiariaDays int) float64 {
	return calc.NetEstimated + DiariaTotal(calc, pos, extraDiariaDays)
}
