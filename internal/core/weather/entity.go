package weather

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"weatherscreen.app/internal/ports"
)

// DefaultIconURLTemplate is the HG Brasil icon location; %s is the icon identifier.
const DefaultIconURLTemplate = "https://assets.hgbrasil.com/weather/images/%s.png"

const (
	ModeByID   = "id"
	ModeByName = "name"
)

// LocationQuery addresses a weather lookup. It is implemented only by ByID and ByName.
type LocationQuery interface {
	Mode() string
	String() string
	Validate() error
	Location() ports.Location
}

// ByID queries a fixed location by its provider WOEID.
type ByID struct {
	WOEID int
}

// ByName queries a location by free-text city name.
type ByName struct {
	Name string
}

func (q ByID) Mode() string   { return ModeByID }
func (q ByID) String() string { return "woeid:" + strconv.Itoa(q.WOEID) }

func (q ByID) Validate() error {
	if q.WOEID <= 0 {
		return fmt.Errorf("woeid must be positive")
	}
	return nil
}

func (q ByID) Location() ports.Location {
	return ports.Location{WOEID: q.WOEID}
}

func (q ByName) Mode() string   { return ModeByName }
func (q ByName) String() string { return q.Name }

func (q ByName) Validate() error {
	if strings.TrimSpace(q.Name) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

func (q ByName) Location() ports.Location {
	return ports.Location{CityName: strings.TrimSpace(q.Name)}
}

// Result is the current conditions payload the screen renders
type Result struct {
	City          string    `json:"city"`
	CityName      string    `json:"city_name,omitempty"`
	Temperature   float64   `json:"temp"`
	Description   string    `json:"description"`
	IconID        string    `json:"img_id,omitempty"`
	ImageURL      string    `json:"image,omitempty"`
	Sunrise       string    `json:"sunrise"`
	Sunset        string    `json:"sunset"`
	WindSpeedy    string    `json:"wind_speedy"`
	Humidity      float64   `json:"humidity"`
	Date          string    `json:"date,omitempty"`
	Time          string    `json:"time,omitempty"`
	ConditionSlug string    `json:"condition_slug,omitempty"`
	Currently     string    `json:"currently,omitempty"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// IsValid only checks presence: a payload without a city is treated as malformed.
func (r *Result) IsValid() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// IconURL prefers the icon identifier applied to template, falling back to the direct image URL.
func (r *Result) IconURL(template string) string {
	if r.IconID != "" {
		if template == "" {
			template = DefaultIconURLTemplate
		}
		return fmt.Sprintf(template, r.IconID)
	}
	return r.ImageURL
}

// IsNight reports whether the provider flagged the reading as a night-time one.
func (r *Result) IsNight() bool {
	return r.Currently == "noite"
}

// String returns a string representation of the result
func (r *Result) String() string {
	return fmt.Sprintf("%s: %.0f°C, %.0f%% humidity, %s", r.City, r.Temperature, r.Humidity, r.Description)
}
