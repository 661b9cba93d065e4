package airports

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dhawton/log4g"
	"golang.org/x/text/encoding/charmap"

	"github.com/lfus93/roster-pay/geo"
)

var log = log4g.Category("airports")

// MissingAirportError reports a lookup for an airport the directory does not
// know. Callers can recover by obtaining coordinates elsewhere, calling Add
// and retrying.
type MissingAirportError struct {
	Code string
}

func (e *MissingAirportError) Error() string {
	return "missing coordinates for airport " + e.Code
}

// Directory holds airport coordinates keyed by IATA code, backed by a
// delimited text file. Lookups never mutate it; Add updates both the map and
// the file so new airports survive a restart.
type Directory struct {
	mu     sync.RWMutex
	path   string
	coords map[string]geo.Coordinate

	// file dialect detected at load time, reused when appending
	sep     rune
	codeCol int
	latCol  int
	longCol int
	fields  int
}

var defaultAirports = []string{
	"IATA;Lat;Long",
	"MXP;45,6306;8,7281",
	"FCO;41,8003;12,2389",
	"BGY;45,6739;9,7042",
	"LIN;45,4450;9,2808",
}

// Open loads the directory from path. A missing file is first seeded with a
// small default set. The file may be delimited by semicolon, comma or tab and
// encoded as UTF-8, latin-1 or cp1252; coordinates accept both decimal comma
// and decimal point. If no combination yields a usable header the directory
// fails to initialize.
func Open(path string) (*Directory, error) {
	d := &Directory{path: path, coords: make(map[string]geo.Coordinate)}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info("Airport file " + path + " not found, creating default")
		if err := os.WriteFile(path, []byte(strings.Join(defaultAirports, "\n")), 0644); err != nil {
			return nil, fmt.Errorf("could not create default airport file %s: %w", path, err)
		}
	}

	if err := d.load(); err != nil {
		return nil, err
	}
	log.Info(fmt.Sprintf("Loaded %d airports from %s", len(d.coords), path))
	return d, nil
}

func (d *Directory) load() error {
	raw, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", d.path, err)
	}

	for _, sep := range []rune{';', ',', '\t'} {
		for _, enc := range []string{"utf-8", "latin1", "cp1252"} {
			text, err := decode(enc, raw)
			if err != nil {
				continue
			}
			if d.parse(text, sep) {
				return nil
			}
		}
	}
	return fmt.Errorf("could not parse airport file %s with any known format", d.path)
}

func decode(encoding string, raw []byte) (string, error) {
	switch encoding {
	case "utf-8":
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("not valid utf-8")
		}
		return string(raw), nil
	case "latin1":
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		return string(out), err
	default:
		out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		return string(out), err
	}
}

// parse attempts one delimiter against the decoded file text. It accepts the
// EU airport export header (iata_code/Lat/Long) and the legacy three column
// header (IATA/Lat/Long). Returns false when the header is not recognized.
func (d *Directory) parse(text string, sep rune) bool {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, "\uFEFF")))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil || len(records) < 1 {
		return false
	}

	header := records[0]
	codeCol := columnIndex(header, "iata_code")
	latCol := columnIndex(header, "Lat")
	longCol := columnIndex(header, "Long")
	if codeCol < 0 {
		codeCol = columnIndex(header, "IATA")
	}
	if codeCol < 0 || latCol < 0 || longCol < 0 {
		return false
	}

	coords := make(map[string]geo.Coordinate)
	for _, rec := range records[1:] {
		if len(rec) <= codeCol || len(rec) <= latCol || len(rec) <= longCol {
			continue
		}
		code := strings.TrimSpace(rec[codeCol])
		if code == "" {
			continue
		}
		lat, err := parseDecimal(rec[latCol])
		if err != nil {
			log.Debug("Skipping airport row with bad latitude: " + rec[latCol])
			continue
		}
		long, err := parseDecimal(rec[longCol])
		if err != nil {
			log.Debug("Skipping airport row with bad longitude: " + rec[longCol])
			continue
		}
		coords[code] = geo.Coordinate{Lat: lat, Long: long}
	}

	d.coords = coords
	d.sep = sep
	d.codeCol = codeCol
	d.latCol = latCol
	d.longCol = longCol
	d.fields = len(header)
	return true
}

func columnIndex(header []string, name string) int {
	for i := 0; i < len(header); i++ {
		if strings.TrimSpace(header[i]) == name {
			return i
		}
	}
	return -1
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// Lookup returns the coordinates for an IATA code. Unknown codes return a
// *MissingAirportError and leave the directory untouched.
func (d *Directory) Lookup(code string) (geo.Coordinate, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.coords[code]
	if !ok {
		return geo.Coordinate{}, &MissingAirportError{Code: code}
	}
	return c, nil
}

// Distance returns the great circle distance in nautical miles between two
// airports by code.
func (d *Directory) Distance(origin string, destination string) (float64, error) {
	from, err := d.Lookup(origin)
	if err != nil {
		return 0, err
	}
	to, err := d.Lookup(destination)
	if err != nil {
		return 0, err
	}
	return geo.Distance(from, to), nil
}

// Add stores coordinates for a new airport and appends a record to the
// backing file in the dialect detected at load, so the entry is still there
// after a restart.
func (d *Directory) Add(code string, lat float64, long float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.coords[code] = geo.Coordinate{Lat: lat, Long: long}

	row := make([]string, d.fields)
	row[d.codeCol] = code
	row[d.latCol] = formatDecimal(lat, d.sep)
	row[d.longCol] = formatDecimal(long, d.sep)

	f, err := os.OpenFile(d.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open airport file for append: %w", err)
	}
	defer f.Close()

	// Single write, led by a newline in case the file lacks a trailing one.
	if _, err := f.Write([]byte("\n" + strings.Join(row, string(d.sep)))); err != nil {
		return fmt.Errorf("could not save airport %s: %w", code, err)
	}

	log.Info(fmt.Sprintf("Added new airport %s: (%v, %v)", code, lat, long))
	return nil
}

func formatDecimal(v float64, sep rune) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if sep == ',' {
		return s
	}
	return strings.ReplaceAll(s, ".", ",")
}

// Len reports how many airports the directory currently holds.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.coords)
}
