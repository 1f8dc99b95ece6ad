// Package external provides adapters for external services
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherscreen.app/internal/ports"
	"weatherscreen.app/pkg/errors"
)

const (
	hgBrasilProviderName   = "hgbrasil"
	hgBrasilDefaultBaseURL = "https://api.hgbrasil.com"
	hgBrasilDefaultTimeout = 10 * time.Second
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HGBrasilProviderAdapter implements WeatherProvider port for the HG Brasil weather API
type HGBrasilProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
	now     func() time.Time
}

// HGBrasilProviderParams holds parameters for creating the HG Brasil provider
type HGBrasilProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// HGBrasilResponse represents the response from the HG Brasil weather endpoint
type HGBrasilResponse struct {
	ValidKey bool             `json:"valid_key"`
	Results  *HGBrasilResults `json:"results"`
	Error    bool             `json:"error"`
	Message  string           `json:"message"`
}

// HGBrasilResults is the "results" object; only the fields the screen uses are decoded.
type HGBrasilResults struct {
	Temp          float64 `json:"temp"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	ConditionCode string  `json:"condition_code"`
	Description   string  `json:"description"`
	Currently     string  `json:"currently"`
	City          string  `json:"city"`
	ImgID         string  `json:"img_id"`
	Image         string  `json:"image"`
	Humidity      float64 `json:"humidity"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
	WindSpeedy    string  `json:"wind_speedy"`
	ConditionSlug string  `json:"condition_slug"`
	CityName      string  `json:"city_name"`
}

// NewHGBrasilProviderAdapter creates a new HG Brasil provider adapter
func NewHGBrasilProviderAdapter(params HGBrasilProviderParams) (*HGBrasilProviderAdapter, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("HG Brasil API key is required", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = hgBrasilDefaultBaseURL
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = hgBrasilDefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HGBrasilProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
		now:     time.Now,
	}, nil
}

// GetCurrentWeather performs a single request for the location. It never retries.
func (p *HGBrasilProviderAdapter) GetCurrentWeather(ctx context.Context, location ports.Location) (*ports.WeatherData, error) {
	requestURL, err := p.buildURL(location)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build HG Brasil request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call HG Brasil", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close HG Brasil response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("HG Brasil returned status %d", resp.StatusCode), nil)
	}

	var apiResp HGBrasilResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode HG Brasil response", err)
	}

	if apiResp.Error {
		return nil, errors.NewExternalAPIError("HG Brasil reported an error: "+apiResp.Message, nil)
	}
	if apiResp.Results == nil || strings.TrimSpace(apiResp.Results.City) == "" {
		return nil, errors.NewExternalAPIError("HG Brasil response has no results.city", nil)
	}
	if !apiResp.ValidKey {
		p.logger.Warn("HG Brasil rejected the API key, results may be generic",
			ports.F("location", describeLocation(location)))
	}

	return p.toWeatherData(apiResp.Results), nil
}

// GetProviderName returns the name of this weather provider
func (p *HGBrasilProviderAdapter) GetProviderName() string {
	return hgBrasilProviderName
}

func (p *HGBrasilProviderAdapter) buildURL(location ports.Location) (string, error) {
	var selector string
	switch {
	case location.WOEID > 0:
		selector = "woeid=" + strconv.Itoa(location.WOEID)
	case strings.TrimSpace(location.CityName) != "":
		selector = "city_name=" + encodeQueryComponent(strings.TrimSpace(location.CityName))
	default:
		return "", errors.NewValidationError("location needs a woeid or a city name")
	}

	return fmt.Sprintf("%s/weather?key=%s&%s", p.baseURL, url.QueryEscape(p.apiKey), selector), nil
}

func (p *HGBrasilProviderAdapter) toWeatherData(r *HGBrasilResults) *ports.WeatherData {
	return &ports.WeatherData{
		City:          r.City,
		CityName:      r.CityName,
		Temperature:   r.Temp,
		Description:   r.Description,
		IconID:        r.ImgID,
		ImageURL:      r.Image,
		Sunrise:       r.Sunrise,
		Sunset:        r.Sunset,
		WindSpeedy:    r.WindSpeedy,
		Humidity:      r.Humidity,
		Date:          r.Date,
		Time:          r.Time,
		ConditionSlug: r.ConditionSlug,
		Currently:     r.Currently,
		Timestamp:     p.now(),
	}
}

// encodeQueryComponent percent-encodes s with spaces as %20, so
// "Rio de Janeiro" becomes "Rio%20de%20Janeiro".
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func describeLocation(location ports.Location) string {
	if location.WOEID > 0 {
		return "woeid:" + strconv.Itoa(location.WOEID)
	}
	return location.CityName
}
