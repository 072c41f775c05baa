package server

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ufabox/InfoViz-25W/internal/dashboard/state"
)

// dateLayout is the query-parameter date format.
const dateLayout = "2006-01-02"

// allValues is the query value that clears a dimension back to wildcard.
const allValues = "all"

// dimensionParams maps query parameter names to state dimensions.
var dimensionParams = map[string]state.Dimension{
	"severity": state.DimSeverity,
	"speed":    state.DimSpeed,
	"age":      state.DimAgeBand,
	"class":    state.DimClass,
	"gender":   state.DimGender,
	"vehicle":  state.DimVehicleGroup,
	"engine":   state.DimEngineBand,
	"vage":     state.DimVehicleAgeBand,
}

// applyQuery replays the request's query parameters as state
// operations, so a URL fully describes a filtered view.
func applyQuery(c echo.Context, st *state.State) error {
	if c.QueryParam("reset") == "1" {
		st.Reset()
	}

	if err := applyYearPair(c, st); err != nil {
		return err
	}

	for param, dim := range dimensionParams {
		if !hasParam(c, param) {
			continue
		}

		raw := c.QueryParam(param)
		if raw == allValues {
			st.ClearDimension(dim)

			continue
		}

		st.SetDimension(dim, splitCSV(raw))
	}

	if err := applyDateRange(c, st); err != nil {
		return err
	}

	applyBrush(c, st)

	return nil
}

func applyYearPair(c echo.Context, st *state.State) error {
	yearParam := c.QueryParam("year")
	priorParam := c.QueryParam("prior")

	if yearParam == "" && priorParam == "" {
		return nil
	}

	current, prior := st.YearPair()

	if yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			return fmt.Errorf("year: %w", err)
		}

		current = parsed
	}

	if priorParam != "" {
		parsed, err := strconv.Atoi(priorParam)
		if err != nil {
			return fmt.Errorf("prior: %w", err)
		}

		prior = parsed
	}

	return st.SetYearPair(current, prior)
}

func applyDateRange(c echo.Context, st *state.State) error {
	fromParam := c.QueryParam("from")
	toParam := c.QueryParam("to")

	if fromParam == "" && toParam == "" {
		return nil
	}

	var from, to time.Time

	if fromParam != "" {
		parsed, err := time.Parse(dateLayout, fromParam)
		if err != nil {
			return fmt.Errorf("from: %w", err)
		}

		from = parsed
	}

	if toParam != "" {
		parsed, err := time.Parse(dateLayout, toParam)
		if err != nil {
			return fmt.Errorf("to: %w", err)
		}

		to = parsed
	}

	st.SetDateRange(from, to)

	return nil
}

// applyBrush rebuilds the brush selection from brush_kind and brush.
// The first value switches kind; the rest accumulate as multi toggles.
func applyBrush(c echo.Context, st *state.State) {
	kindParam := c.QueryParam("brush_kind")
	if kindParam == "" {
		return
	}

	st.ClearBrush()

	var kind state.BrushKind

	switch strings.ToUpper(kindParam) {
	case string(state.BrushSeverity):
		kind = state.BrushSeverity
	case string(state.BrushVehicle):
		kind = state.BrushVehicle
	default:
		return
	}

	for i, value := range splitCSV(c.QueryParam("brush")) {
		st.ToggleBrush(kind, value, i > 0)
	}
}

func hasParam(c echo.Context, name string) bool {
	_, ok := c.QueryParams()[name]

	return ok
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")

	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
