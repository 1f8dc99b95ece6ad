package screen

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weatherscreen.app/internal/core/weather"
)

const (
	LoadingText = "Carregando clima..."
	EmptyText   = "Não foi possível obter as informações do clima."
)

// Labels are the captions of the populated card.
type Labels struct {
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
	Wind        string `json:"wind"`
	Humidity    string `json:"humidity"`
	SunriseHint string `json:"sunrise_hint,omitempty"`
	SunsetHint  string `json:"sunset_hint,omitempty"`
}

var defaultLabels = Labels{
	Sunrise:  "🌅 Nascer do Sol",
	Sunset:   "🌇 Pôr do Sol",
	Wind:     "💨 Velocidade do Vento",
	Humidity: "💧 Umidade do Ar",
}

// PageOptions carries the presentation settings that do not live in State.
type PageOptions struct {
	IconURLTemplate string
	Use24Hour       bool
	Shortlist       []string
}

// Page is the render-ready projection of a State.
type Page struct {
	View         View     `json:"view"`
	Theme        Theme    `json:"theme"`
	LoadingText  string   `json:"loading_text,omitempty"`
	EmptyText    string   `json:"empty_text,omitempty"`
	City         string   `json:"city,omitempty"`
	Temperature  string   `json:"temperature,omitempty"`
	Description  string   `json:"description,omitempty"`
	IconURL      string   `json:"icon_url,omitempty"`
	Sunrise      string   `json:"sunrise,omitempty"`
	Sunset       string   `json:"sunset,omitempty"`
	Wind         string   `json:"wind,omitempty"`
	Humidity     string   `json:"humidity,omitempty"`
	Labels       Labels   `json:"labels"`
	CityQuery    string   `json:"city_query"`
	SelectedCity string   `json:"selected_city"`
	Shortlist    []string `json:"shortlist"`
}

// BuildPage projects s into a Page.
func BuildPage(s State, opts PageOptions) Page {
	page := Page{
		View:         Route(s),
		Theme:        SelectTheme(s.IsDarkTheme),
		Labels:       defaultLabels,
		CityQuery:    s.CityQuery,
		SelectedCity: s.SelectedCity,
		Shortlist:    opts.Shortlist,
	}

	switch page.View.Kind {
	case ViewLoading:
		page.LoadingText = LoadingText
	case ViewEmpty:
		page.EmptyText = EmptyText
	case ViewPopulated:
		fillResult(&page, s.Result, opts)
	}

	return page
}

func fillResult(page *Page, r *weather.Result, opts PageOptions) {
	page.City = r.City
	page.Temperature = formatNumber(r.Temperature) + "°"
	page.Description = titleDescription(r.Description)
	page.IconURL = r.IconURL(opts.IconURLTemplate)
	page.Sunrise = FormatTime(r.Sunrise, opts.Use24Hour)
	page.Sunset = FormatTime(r.Sunset, opts.Use24Hour)
	page.Wind = r.WindSpeedy
	page.Humidity = formatNumber(r.Humidity) + "%"

	if !opts.Use24Hour {
		page.Labels.SunriseHint = "antes do meio-dia"
		page.Labels.SunsetHint = "depois do meio-dia"
	}
}

// titleDescription builds a Caser per call; a Caser keeps state and cannot be shared.
func titleDescription(s string) string {
	return cases.Title(language.BrazilianPortuguese, cases.NoLower).String(s)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
