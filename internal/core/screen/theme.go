package screen

// Theme is one of the two style configurations of the screen.
type Theme struct {
	Name              string `json:"name"`
	Background        string `json:"background"`
	Card              string `json:"card"`
	City              string `json:"city"`
	Temperature       string `json:"temperature"`
	Description       string `json:"description"`
	Info              string `json:"info"`
	LoadingBackground string `json:"loading_background"`
	LoadingText       string `json:"loading_text"`
	Spinner           string `json:"spinner"`
	ToggleBackground  string `json:"toggle_background"`
	ToggleText        string `json:"toggle_text"`
	ToggleGlyph       string `json:"toggle_glyph"`
	StatusBar         string `json:"status_bar"`
}

var (
	LightTheme = Theme{
		Name:              "light",
		Background:        "#48C6EF",
		Card:              "#FFFFFF",
		City:              "#333333",
		Temperature:       "#217CAF",
		Description:       "#666666",
		Info:              "#444444",
		LoadingBackground: "#E0F7FA",
		LoadingText:       "#217CAF",
		Spinner:           "#00BFFF",
		ToggleBackground:  "#FFFFFFAA",
		ToggleText:        "#000000",
		ToggleGlyph:       "🌙",
		StatusBar:         "dark-content",
	}

	DarkTheme = Theme{
		Name:              "dark",
		Background:        "#003366",
		Card:              "#1E1E1E",
		City:              "#FFFFFF",
		Temperature:       "#4FC3F7",
		Description:       "#AAAAAA",
		Info:              "#CCCCCC",
		LoadingBackground: "#121212",
		LoadingText:       "#4FC3F7",
		Spinner:           "#00BFFF",
		ToggleBackground:  "#333333AA",
		ToggleText:        "#FFFFFF",
		ToggleGlyph:       "🌞",
		StatusBar:         "light-content",
	}
)

// SelectTheme returns the dark palette when dark is set, the light one otherwise.
func SelectTheme(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}
