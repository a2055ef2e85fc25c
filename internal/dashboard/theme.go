// Package dashboard renders the aggregation engine's outputs as a themed HTML
// dashboard: an activity timeline, per-repository PR status, commenter and
// reviewer leaderboards, and response-time statistics.
package dashboard

// Theme represents a color theme for the dashboard.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// ThemeConfig holds theme-specific styling values consumed by the page
// template and the chart options.
type ThemeConfig struct {
	Background    string
	Surface       string
	Border        string
	TextPrimary   string
	TextSecondary string
	TextMuted     string
	Accent        string

	ChartBackground string
	ChartGrid       string
	ChartAxis       string
	ChartText       string
	ChartTextMuted  string

	// ECharts built-in theme name.
	EChartsTheme string
}

// ConfigFor returns the configuration for a theme; unknown values fall back
// to the light theme.
func ConfigFor(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

// SeriesPalette returns the ordered series colors for a theme.
func SeriesPalette(theme Theme) []string {
	if theme == ThemeDark {
		return darkPalette
	}

	return lightPalette
}

var lightTheme = ThemeConfig{
	Background:    "#fafaf9",
	Surface:       "#ffffff",
	Border:        "#e7e5e4",
	TextPrimary:   "#1c1917",
	TextSecondary: "#44403c",
	TextMuted:     "#78716c",
	Accent:        "#2563eb",

	ChartBackground: "#ffffff",
	ChartGrid:       "#e7e5e4",
	ChartAxis:       "#a8a29e",
	ChartText:       "#1c1917",
	ChartTextMuted:  "#78716c",

	EChartsTheme: "white",
}

var darkTheme = ThemeConfig{
	Background:    "#0c0a09",
	Surface:       "#1c1917",
	Border:        "#292524",
	TextPrimary:   "#fafaf9",
	TextSecondary: "#d6d3d1",
	TextMuted:     "#a8a29e",
	Accent:        "#60a5fa",

	ChartBackground: "#1c1917",
	ChartGrid:       "#292524",
	ChartAxis:       "#57534e",
	ChartText:       "#fafaf9",
	ChartTextMuted:  "#a8a29e",

	EChartsTheme: "dark",
}

var lightPalette = []string{
	"#2563eb", "#16a34a", "#d97706", "#dc2626", "#7c3aed", "#0891b2",
}

var darkPalette = []string{
	"#60a5fa", "#4ade80", "#fbbf24", "#f87171", "#a78bfa", "#22d3ee",
}

// Semantic series colors shared by both themes.
const (
	colorOpen             = "#d97706"
	colorMerged           = "#7c3aed"
	colorClosed           = "#dc2626"
	colorApproved         = "#16a34a"
	colorChangesRequested = "#d97706"
)
