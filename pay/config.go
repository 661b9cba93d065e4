package pay

import "math"

// Position holds the monthly pay constants for a crew rank.
type Position struct {
	BaseSalary  float64
	Allowance   float64
	SectorValue float64
	Diaria      float64
	IDOValue    float64
}

// Positions maps each crew rank to its pay constants.
var Positions = map[string]Position{
	"SO":     {BaseSalary: 1192.15, Allowance: 2976.21, SectorValue: 20.85, Diaria: 46.95, IDOValue: 300},
	"FO":     {BaseSalary: 1520.161, Allowance: 3795.108, SectorValue: 21.48, Diaria: 46.95, IDOValue: 375},
	"SFO":    {BaseSalary: 1856.64, Allowance: 4635.13, SectorValue: 21.48, Diaria: 46.95, IDOValue: 469},
	"NewCPT": {BaseSalary: 2858.48, Allowance: 7136.21, SectorValue: 35.83, Diaria: 53.33, IDOValue: 750},
	"CPT":    {BaseSalary: 3176.09, Allowance: 7929.12, SectorValue: 35.83, Diaria: 53.33, IDOValue: 750},
}

// ExtraPositions maps an additional qualification to the percentage uplift
// it applies to both base salary and allowance.
var ExtraPositions = map[string]float64{
	"Nessuna":      0,
	"BSP":          5,
	"TFO":          5,
	"TFO + SIM":    9,
	"Line trainer": 12.5,
	"TRI":          15,
	"TRE/TRI":      17.5,
	"ABT":          20,
}

// Contract holds the constants that vary by contract type.
type Contract struct {
	SectorThreshold float64
}

// Contracts maps contract names to the sector count where overtime pay
// starts.
var Contracts = map[string]Contract{
	"Standard":       {SectorThreshold: 35},
	"5-4":            {SectorThreshold: 35},
	"FRV":            {SectorThreshold: 35},
	"50% (14-14)":    {SectorThreshold: 18},
	"Sesonale PPY50": {SectorThreshold: 18},
	"7-21":           {SectorThreshold: 27},
	"PPY 75 Summer":  {SectorThreshold: 35},
	"PPY 75 Winter":  {SectorThreshold: 18},
	"7-7":            {SectorThreshold: 27},
}

// sectorBand pays Value for leg distances in (Min, Max] nautical miles.
type sectorBand struct {
	Min   float64
	Max   float64
	Value float64
}

var sectorBands = []sectorBand{
	{0, 400, 0.8},
	{400, 1000, 1.2},
	{1000, 1500, 1.5},
	{1500, math.Inf(1), 2.5},
}

// taxBracket taxes the slice of income up to Threshold (cumulative) at Rate.
type taxBracket struct {
	Threshold float64
	Rate      float64
}

var taxBrackets = []taxBracket{
	{2333.33, 0.23},
	{4166.67, 0.35},
	{math.Inf(1), 0.43},
}

const (
	sncSectorMultiplier      = 3
	vacationPayMultiplier    = 3.5
	nightStopBonusMultiplier = 2
	overtimeSectorMultiplier = 2
	frvContractIncreaseRate  = 0.11
)

// Social security rates, always applied as one summed rate.
const (
	ivsFondoVolo  = 0.0919
	additionalIVS = 0.0359
	fap           = 0.003
	fis           = 0.00267
	ctrTO         = 0.00167
)

func totalContributionRate() float64 {
	return ivsFondoVolo + additionalIVS + fap + fis + ctrTO
}
