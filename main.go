package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/common-nighthawk/go-figure"
	"github.com/dhawton/log4g"
	"github.com/joho/godotenv"
	"golang.org/x/text/encoding/charmap"

	"github.com/lfus93/roster-pay/airports"
	"github.com/lfus93/roster-pay/pay"
	"github.com/lfus93/roster-pay/roster"
)

var log = log4g.Category("main")

func main() {
	intro := figure.NewFigure("RosterPay", "", false).Slicify()
	for i := 0; i < len(intro); i++ {
		log.Info(intro[i])
	}

	log.Info("Checking for .env, loading if exists")
	if _, err := os.Stat(".env"); err == nil {
		log.Info("Found, loading")
		err := godotenv.Load()
		if err != nil {
			log.Error("Error loading .env file: " + err.Error())
		}
	}
	log4g.SetLogLevel(log4g.DEBUG)

	profile, err := profileFromEnv()
	if err != nil {
		log.Fatal("Invalid pilot profile: " + err.Error())
	}
	log.Info(fmt.Sprintf("Pilot profile: %s / %s / %s, home base %s", profile.Position, profile.ExtraPosition, profile.Contract, profile.HomeBase))

	log.Info("Opening airport directory...")
	dir, err := airports.Open(Getenv("AIRPORTS_FILE", "airports.csv"))
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to open airport directory: %s", err.Error()))
	}

	rosterPath := Getenv("ROSTER_FILE", "roster.txt")
	log.Info("Reading roster " + rosterPath)
	content, err := readRosterFile(rosterPath)
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to read roster file: %s", err.Error()))
	}

	parsed, err := roster.Parse(content)
	if err != nil {
		log.Fatal("Failed to parse roster: " + err.Error())
	}
	log.Info(fmt.Sprintf("Parsed %d roster days", len(parsed.Days)))

	calc := pay.NewCalculator(dir)
	result := calculateWithRetries(calc, dir, parsed, profile)

	report(result, profile)
}

// calculateWithRetries reruns the calculation until every airport in the
// roster is known, asking on stdin for the coordinates of each missing one.
func calculateWithRetries(calc *pay.Calculator, dir *airports.Directory, parsed *roster.Roster, profile pay.PilotProfile) *pay.Result {
	reader := bufio.NewReader(os.Stdin)

	for {
		result, err := calc.Calculate(parsed, profile)
		if err == nil {
			return result
		}

		var missing *airports.MissingAirportError
		if !errors.As(err, &missing) {
			log.Fatal("Failed to calculate salary: " + err.Error())
		}

		log.Info(fmt.Sprintf("Airport %s is not in the directory", missing.Code))
		log.Info(fmt.Sprintf("Enter coordinates for %s as \"lat long\" in decimal degrees, empty line aborts:", missing.Code))
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			log.Fatal("No coordinates provided for " + missing.Code)
		}

		lat, long, perr := parseCoordinates(line)
		if perr != nil {
			log.Error("Could not read coordinates: " + perr.Error())
			continue
		}
		if err := dir.Add(missing.Code, lat, long); err != nil {
			log.Fatal("Failed to add airport " + missing.Code + ": " + err.Error())
		}
	}
}

func parseCoordinates(line string) (float64, float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"lat long\", got %q", line)
	}
	lat, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude %q", fields[0])
	}
	long, err := strconv.ParseFloat(strings.ReplaceAll(fields[1], ",", "."), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude %q", fields[1])
	}
	return lat, long, nil
}

// readRosterFile loads a roster export, trying UTF-8 first and falling back
// to the Windows encodings the roster tool actually produces.
func readRosterFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil {
		return string(decoded), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("could not decode roster file %s", path)
	}
	return string(decoded), nil
}
