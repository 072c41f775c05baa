package plotpage

// Theme represents a color theme for dashboard pages.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// ThemeConfig holds all theme-specific styling values.
type ThemeConfig struct {
	// Base colors.
	Background   string
	Surface      string
	Border       string
	BorderSubtle string

	// Text colors.
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// Accent colors.
	Accent       string
	AccentSubtle string
	AccentText   string

	// Semantic colors.
	Success string
	Warning string
	Error   string
	Info    string

	// Chart-specific.
	ChartBackground string
	ChartGrid       string
	ChartAxis       string
	ChartText       string
	ChartTextMuted  string

	// ECharts theme name.
	EChartsTheme string
}

// SeverityPalette maps severity labels to their chart colors. The
// palette follows the Okabe-Ito colorblind-safe scheme used across
// every severity-colored chart.
type SeverityPalette struct {
	Fatal   string
	Serious string
	Slight  string
	Unknown string

	// Muted is the de-emphasis color applied to categories outside an
	// active brush selection.
	Muted string
}

// GenderPalette maps gender labels to their chart colors.
type GenderPalette struct {
	Male    string
	Female  string
	Unknown string
}

// GetThemeConfig returns the configuration for a given theme.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

// Severities returns the severity palette; it is theme-independent so
// severity reads the same on both themes.
func Severities() SeverityPalette {
	return SeverityPalette{
		Fatal:   "#dc2626",
		Serious: "#e69f00",
		Slight:  "#0072b2",
		Unknown: "#9ca3af",
		Muted:   "#d6d3d1",
	}
}

// SeverityColor returns the chart color for a severity label.
func (p SeverityPalette) SeverityColor(label string) string {
	switch label {
	case "Fatal":
		return p.Fatal
	case "Serious":
		return p.Serious
	case "Slight":
		return p.Slight
	default:
		return p.Unknown
	}
}

// Genders returns the gender palette.
func Genders() GenderPalette {
	return GenderPalette{
		Male:    "#0072b2",
		Female:  "#cc79a7",
		Unknown: "#9ca3af",
	}
}

// GenderColor returns the chart color for a gender label.
func (p GenderPalette) GenderColor(label string) string {
	switch label {
	case "Male":
		return p.Male
	case "Female":
		return p.Female
	default:
		return p.Unknown
	}
}

// CategoryPalette returns the rotating series palette for categorical
// charts without a semantic color mapping.
func CategoryPalette(theme Theme) []string {
	if theme == ThemeDark {
		return []string{
			"#38bdf8", // sky-400.
			"#fbbf24", // amber-400.
			"#a3e635", // lime-400.
			"#a78bfa", // violet-400.
			"#f472b6", // pink-400.
			"#22d3ee", // cyan-400.
			"#fb923c", // orange-400.
			"#818cf8", // indigo-400.
		}
	}

	return []string{
		"#0369a1", // sky-700.
		"#a16207", // amber-700.
		"#4d7c0f", // lime-700.
		"#7c3aed", // violet-600.
		"#be185d", // pink-700.
		"#0891b2", // cyan-600.
		"#c2410c", // orange-700.
		"#4338ca", // indigo-700.
	}
}

var lightTheme = ThemeConfig{
	Background:   "#fafaf9", // stone-50.
	Surface:      "#ffffff",
	Border:       "#e7e5e4", // stone-200.
	BorderSubtle: "#d6d3d1", // stone-300.

	TextPrimary:   "#1c1917", // stone-900.
	TextSecondary: "#44403c", // stone-700.
	TextMuted:     "#78716c", // stone-500.

	Accent:       "#0369a1", // sky-700.
	AccentSubtle: "#e0f2fe", // sky-100.
	AccentText:   "#ffffff",

	Success: "#16a34a", // green-600.
	Warning: "#ca8a04", // yellow-600.
	Error:   "#dc2626", // red-600.
	Info:    "#2563eb", // blue-600.

	ChartBackground: "transparent",
	ChartGrid:       "#e7e5e4", // stone-200.
	ChartAxis:       "#a8a29e", // stone-400.
	ChartText:       "#44403c", // stone-700.
	ChartTextMuted:  "#78716c", // stone-500.

	EChartsTheme: "",
}

var darkTheme = ThemeConfig{
	Background:   "#0c0a09", // stone-950.
	Surface:      "#1c1917", // stone-900.
	Border:       "#44403c", // stone-700.
	BorderSubtle: "#57534e", // stone-600.

	TextPrimary:   "#fafaf9", // stone-50.
	TextSecondary: "#d6d3d1", // stone-300.
	TextMuted:     "#a8a29e", // stone-400.

	Accent:       "#38bdf8", // sky-400.
	AccentSubtle: "#082f49", // sky-950.
	AccentText:   "#0c0a09",

	Success: "#22c55e", // green-500.
	Warning: "#eab308", // yellow-500.
	Error:   "#ef4444", // red-500.
	Info:    "#3b82f6", // blue-500.

	ChartBackground: "transparent",
	ChartGrid:       "#44403c", // stone-700.
	ChartAxis:       "#57534e", // stone-600.
	ChartText:       "#d6d3d1", // stone-300.
	ChartTextMuted:  "#a8a29e", // stone-400.

	EChartsTheme: "",
}
