package screen

import "weatherscreen.app/internal/core/weather"

// Event names, also used as metric labels.
const (
	EventFetchStart           = "fetch-start"
	EventFetchSuccess         = "fetch-success"
	EventFetchFailure         = "fetch-failure"
	EventThemeToggle          = "theme-toggle"
	EventCityChange           = "city-change"
	EventCityQueryChange      = "city-query-change"
	EventListVisibilityToggle = "list-visibility-toggle"
)

// Event is a named state transition.
type Event interface {
	EventName() string
}

type FetchStarted struct {
	Query weather.LocationQuery
}

type FetchSucceeded struct {
	Query  weather.LocationQuery
	Result *weather.Result
}

type FetchFailed struct {
	Query weather.LocationQuery
	Err   error
}

type ThemeToggled struct{}

// CityChanged is raised by a text submission or a shortlist tap.
type CityChanged struct {
	City string
}

// CityQueryChanged tracks the free-text field as the user types.
type CityQueryChanged struct {
	Text string
}

type CityListToggled struct{}

func (FetchStarted) EventName() string     { return EventFetchStart }
func (FetchSucceeded) EventName() string   { return EventFetchSuccess }
func (FetchFailed) EventName() string      { return EventFetchFailure }
func (ThemeToggled) EventName() string     { return EventThemeToggle }
func (CityChanged) EventName() string      { return EventCityChange }
func (CityQueryChanged) EventName() string { return EventCityQueryChange }
func (CityListToggled) EventName() string  { return EventListVisibilityToggle }

// Reduce returns the state that results from applying ev to s. It is pure: the fetch
// itself and failure logging are effects handled by the owner of the state.
// Fetch outcomes are applied in arrival order, so the last fetch to resolve wins.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case FetchStarted:
		s.IsLoading = true
	case FetchSucceeded:
		s.Result = e.Result
		s.IsLoading = false
	case FetchFailed:
		s.Result = nil
		s.IsLoading = false
	case ThemeToggled:
		s.IsDarkTheme = !s.IsDarkTheme
	case CityChanged:
		s.SelectedCity = e.City
		s.CityQuery = ""
		s.IsCityListVisible = false
	case CityQueryChanged:
		s.CityQuery = e.Text
	case CityListToggled:
		s.IsCityListVisible = !s.IsCityListVisible
	}
	return s
}
