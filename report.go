package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lfus93/roster-pay/pay"
)

// report logs the whole calculation: the daily rollup, the bonus lines and
// the salary breakdown with the payslip estimate.
func report(result *pay.Result, profile pay.PilotProfile) {
	pos := pay.Positions[profile.Position]
	uplift := pay.ExtraPositions[profile.ExtraPosition]

	log.Info("----- Daily summary -----")
	for i := 0; i < len(result.Days); i++ {
		day := result.Days[i]
		log.Info(fmt.Sprintf("%s  %-40s  sectors %4.1f  earnings %8.2f  %s",
			day.Date.Format("02/01/2006"), day.Activities, day.Sectors, day.Earnings, day.Itinerary))
	}

	totalSectors := 0.0
	totalOperational := 0.0
	for i := 0; i < len(result.Entries); i++ {
		totalSectors += result.Entries[i].Sectors
		totalOperational += result.Entries[i].OperationalSectors
	}
	log.Info(fmt.Sprintf("Total sectors: %.1f (%.1f operational)", totalSectors, totalOperational))

	if len(result.IDOBonuses) > 0 {
		log.Info("----- Rest violation bonuses -----")
		for i := 0; i < len(result.IDOBonuses); i++ {
			bonus := result.IDOBonuses[i]
			log.Info(fmt.Sprintf("%s %s %.2f EUR", bonus.Date.Format("02/01/2006"), bonus.Symbol, bonus.Amount))
		}
	}

	salary := result.Salary
	finalBase := pos.BaseSalary + pos.BaseSalary*uplift/100
	finalAllowance := pos.Allowance + pos.Allowance*uplift/100

	log.Info("----- Salary breakdown -----")
	log.Info(fmt.Sprintf("Base salary (+%.1f%%):         %10.2f EUR", uplift, finalBase))
	log.Info(fmt.Sprintf("Flight allowance (+%.1f%%):    %10.2f EUR", uplift, finalAllowance))
	log.Info(fmt.Sprintf("Operational sector earnings:  %10.2f EUR", salary.OperationalSectorsEarnings))
	log.Info(fmt.Sprintf("Positioning earnings:         %10.2f EUR", salary.PositioningEarnings))
	if salary.FRVBonus > 0 {
		log.Info(fmt.Sprintf("FRV bonus:                    %10.2f EUR", salary.FRVBonus))
	}
	if salary.SNCCompensation > 0 {
		log.Info(fmt.Sprintf("SNC compensation:             %10.2f EUR", salary.SNCCompensation))
	}
	if salary.VacationDays > 0 {
		log.Info(fmt.Sprintf("Vacation pay (%d days):        %10.2f EUR", salary.VacationDays, salary.VacationCompensation))
	}
	if result.NightStopBonus > 0 {
		log.Info(fmt.Sprintf("Night stop bonus:             %10.2f EUR", result.NightStopBonus))
	}
	log.Info(fmt.Sprintf("Gross total:                  %10.2f EUR", salary.GrossTotal))
	log.Info(fmt.Sprintf("Contribution base:            %10.2f EUR", salary.ContributionBase))
	log.Info(fmt.Sprintf("Social contributions:         %10.2f EUR", salary.SocialContributions))
	log.Info(fmt.Sprintf("Taxable income:               %10.2f EUR", salary.TaxableIncome))
	log.Info(fmt.Sprintf("Estimated tax:                %10.2f EUR", salary.EstimatedTax))
	log.Info(fmt.Sprintf("Net estimated:                %10.2f EUR", salary.NetEstimated))

	log.Info(fmt.Sprintf("Working days: %d (%d base + %d midnight standby)",
		salary.WorkingDays, salary.BaseWorkingDays, salary.MidnightStandbyDays))
	if len(salary.MidnightStandbyDates) > 0 {
		log.Info("Midnight standby dates: " + joinSortedDates(salary.MidnightStandbyDates))
	}
	extraDiaria := len(result.ExtraDiariaDates)
	if extraDiaria > 0 {
		log.Info("Extra diaria dates: " + joinSortedDates(result.ExtraDiariaDates))
	}
	log.Info(fmt.Sprintf("Diaria (%d days x %.2f):       %10.2f EUR",
		salary.WorkingDays+extraDiaria, pos.Diaria, pay.DiariaTotal(salary, pos, extraDiaria)))
	log.Info(fmt.Sprintf("Estimated payslip total:      %10.2f EUR", pay.EstimatedPayslipTotal(salary, pos, extraDiaria)))
}

func joinSortedDates(dates map[string]struct{}) string {
	list := make([]string, 0, len(dates))
	for date := range dates {
		list = append(list, date)
	}
	sort.Strings(list)
	return strings.Join(list, ", ")
}
