// Package screen holds the weather screen: one explicit State value, the named events
// that transition it, the view routing over it and the event loop that owns it.
package screen

import "weatherscreen.app/internal/core/weather"

// State is the whole transient UI state of one mounted screen.
// IsLoading is true only while a fetch is outstanding; Result is nil before the first
// successful fetch and after any failed one.
type State struct {
	Result            *weather.Result `json:"result"`
	IsLoading         bool            `json:"is_loading"`
	IsDarkTheme       bool            `json:"is_dark_theme"`
	CityQuery         string          `json:"city_query"`
	SelectedCity      string          `json:"selected_city"`
	IsCityListVisible bool            `json:"is_city_list_visible"`
}

// InitialState is the state of a freshly mounted screen.
func InitialState(selectedCity string, dark bool) State {
	return State{
		IsLoading:    true,
		IsDarkTheme:  dark,
		SelectedCity: selectedCity,
	}
}
