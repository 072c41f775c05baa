package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ufabox/InfoViz-25W/internal/taxonomy"
)

// Date layouts accepted by the flexible date parser.
const (
	dateLayoutISO = "2006-01-02"
	dateLayoutUK  = "02/01/2006"
)

// Columns that must be present in the extract header.
var requiredColumns = []string{
	"collision_index",
	"collision_year",
	"collision_severity",
}

// ErrMissingColumn is returned when the extract header lacks a
// required column.
var ErrMissingColumn = errors.New("dataset: missing required column")

// ErrEmptyExtract is returned when the extract holds a header but no
// data rows.
var ErrEmptyExtract = errors.New("dataset: extract contains no rows")

// Load reads the merged casualty-level CSV extract at path and returns
// a populated store. Load failure is fatal to the caller; malformed
// values inside a row are never an error and coerce to the unknown
// sentinels instead.
func Load(path string, logger *slog.Logger) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open extract: %w", err)
	}

	defer file.Close()

	store, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read extract %s: %w", path, err)
	}

	if logger != nil {
		logger.Info("dataset loaded",
			"path", path,
			"records", store.Len(),
			"years", store.Years())
	}

	return store, nil
}

// Read parses a CSV extract from r into a store.
func Read(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var records []Record

	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("read row: %w", readErr)
		}

		records = append(records, coerceRow(cols, row))
	}

	if len(records) == 0 {
		return nil, ErrEmptyExtract
	}

	return NewStore(records), nil
}

// coerceRow performs the single type-coercion step for one raw row.
func coerceRow(cols map[string]int, row []string) Record {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[idx])
	}

	rec := Record{
		CollisionIndex: field("collision_index"),
		Year:           intOr(field("collision_year"), UnknownInt),
		Month:          intOr(field("month"), UnknownInt),
		Severity:       int(taxonomy.ParseSeverity(intOr(field("collision_severity"), UnknownInt))),
		SpeedLimit:     intOr(field("speed_limit"), UnknownInt),
		VehicleType:    intOr(field("vehicle_type"), UnknownInt),
		CasualtyClass:  intOr(field("casualty_class"), UnknownInt),
		CasualtyType:   intOr(field("casualty_type"), UnknownInt),
		Sex:            taxonomy.NormalizeGender(intOr(field("sex_of_casualty"), UnknownInt)),
		DriverAge:      intOr(field("age_of_driver"), UnknownInt),
		WeatherCode:    intOr(field("weather_conditions"), UnknownInt),
		ImpactCode:     intOr(field("first_point_of_impact"), UnknownInt),
		DistanceBand:   intOr(field("casualty_distance_banding"), UnknownInt),
		DayOfWeek:      intOr(field("day_of_week"), UnknownInt),

		EngineCapacityCC: floatOr(field("engine_capacity_cc")),
		VehicleAge:       floatOr(field("age_of_vehicle")),
	}

	// Negative ages carry no information beyond "unknown".
	if age := intOr(field("age_of_casualty"), UnknownInt); age >= 0 {
		rec.CasualtyAge = age
	} else {
		rec.CasualtyAge = UnknownInt
	}

	rec.Date = parseDateFlexible(field("date"))

	if rec.Month == UnknownInt && !rec.Date.IsZero() {
		rec.Month = int(rec.Date.Month())
	}

	if rec.Year == UnknownInt && !rec.Date.IsZero() {
		rec.Year = rec.Date.Year()
	}

	rec.Hour = parseHour(field("time"))

	lon, lonOK := parseCoord(field("longitude"))
	lat, latOK := parseCoord(field("latitude"))

	if lonOK && latOK {
		rec.Longitude = lon
		rec.Latitude = lat
		rec.HasCoords = true
	}

	return rec
}

// parseDateFlexible accepts ISO and DD/MM/YYYY dates, returning the
// zero time for anything else.
func parseDateFlexible(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	for _, layout := range []string{dateLayoutISO, dateLayoutUK} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t
		}
	}

	return time.Time{}
}

// parseHour extracts the hour from a "HH:MM" time field.
func parseHour(s string) int {
	const hhLen = 2

	if len(s) < hhLen || !strings.Contains(s, ":") {
		return UnknownHour
	}

	hour, err := strconv.Atoi(s[:hhLen])
	if err != nil || hour < 0 || hour > 23 {
		return UnknownHour
	}

	return hour
}

func parseCoord(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

func intOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		// Some extracts write integer codes as "3.0".
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fallback
		}

		return int(f)
	}

	return v
}

func floatOr(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}

	return v
}
