package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherscreen.app/internal/core/screen"
	screenmocks "weatherscreen.app/internal/core/screen/mocks"
	"weatherscreen.app/internal/core/weather"
	"weatherscreen.app/internal/mocks"
)

var saoPaulo = weather.ByID{WOEID: 455824}

func sampleResult(city string) *weather.Result {
	return &weather.Result{
		City:        city,
		Temperature: 24,
		Description: "tempo nublado",
		IconID:      "28",
		Sunrise:     "05:52 am",
		Sunset:      "06:17 pm",
		WindSpeedy:  "3.09 km/h",
		Humidity:    83,
	}
}

func newTestModel(t *testing.T, fetcher *screenmocks.Fetcher) Model {
	t.Helper()

	mockLogger := mocks.NewLogger(t)
	mocks.AllowLogging(mockLogger, 4)
	mockMetrics := mocks.NewMetricsCollector(t)
	mocks.AllowMetrics(mockMetrics)

	m, err := New(Options{
		Fetcher:  fetcher,
		Logger:   mockLogger,
		Metrics:  mockMetrics,
		Initial:  saoPaulo,
		Selected: "São Paulo",
		Page:     screen.PageOptions{Shortlist: []string{"São Paulo", "Rio de Janeiro", "Curitiba"}},
	})
	require.NoError(t, err)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// fetchResults runs cmd and returns the fetch outcomes it produced, skipping other messages.
func fetchResults(cmd tea.Cmd) []fetchResultMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case fetchResultMsg:
		return []fetchResultMsg{msg}
	case tea.BatchMsg:
		var out []fetchResultMsg
		for _, c := range msg {
			if c == nil {
				continue
			}
			if r, ok := c().(fetchResultMsg); ok {
				out = append(out, r)
			}
		}
		return out
	}
	return nil
}

func mounted(t *testing.T, fetcher *screenmocks.Fetcher) Model {
	t.Helper()
	fetcher.EXPECT().Fetch(mock.Anything, saoPaulo).Return(sampleResult("São Paulo, SP"), nil).Once()

	m := newTestModel(t, fetcher)
	assert.True(t, m.State().IsLoading)

	results := fetchResults(m.Init())
	require.Len(t, results, 1)
	m, _ = send(t, m, results[0])
	require.False(t, m.State().IsLoading)
	return m
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{
		Fetcher: screenmocks.NewFetcher(t),
		Logger:  mocks.NewLogger(t),
		Metrics: mocks.NewMetricsCollector(t),
		Initial: weather.ByID{},
	})
	assert.Error(t, err)
}

func TestModel_InitialFetchPopulates(t *testing.T) {
	m := mounted(t, screenmocks.NewFetcher(t))

	assert.Equal(t, "São Paulo, SP", m.State().Result.City)
	view := m.View()
	assert.Contains(t, view, "São Paulo, SP")
	assert.Contains(t, view, "24°")
	assert.Contains(t, view, "Tempo Nublado")
	assert.Contains(t, view, "83%")
}

func TestModel_LoadingView(t *testing.T) {
	m := newTestModel(t, screenmocks.NewFetcher(t))
	assert.Contains(t, m.View(), screen.LoadingText)
}

func TestModel_FetchFailureShowsEmpty(t *testing.T) {
	m := mounted(t, screenmocks.NewFetcher(t))

	m, _ = send(t, m, fetchResultMsg{query: weather.ByName{Name: "Atlantis"}, err: errors.New("timeout")})

	assert.Nil(t, m.State().Result)
	assert.False(t, m.State().IsLoading)
	assert.Contains(t, m.View(), screen.EmptyText)
}

func TestModel_ThemeToggle(t *testing.T) {
	m := mounted(t, screenmocks.NewFetcher(t))
	before := m.State()

	m, cmd := send(t, m, key("t"))
	assert.Nil(t, cmd)
	assert.True(t, m.State().IsDarkTheme)
	assert.Contains(t, m.View(), screen.DarkTheme.ToggleGlyph)

	m, _ = send(t, m, key("t"))
	assert.Equal(t, before, m.State())
}

func TestModel_PickFromShortlist(t *testing.T) {
	fetcher := screenmocks.NewFetcher(t)
	m := mounted(t, fetcher)
	fetcher.EXPECT().Fetch(mock.Anything, weather.ByName{Name: "Rio de Janeiro"}).
		Return(sampleResult("Rio de Janeiro, RJ"), nil).Once()

	m, _ = send(t, m, key("l"))
	assert.True(t, m.State().IsCityListVisible)
	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("down"))
	m, _ = send(t, m, key("up"))
	assert.Contains(t, m.View(), "› Rio de Janeiro")

	m, cmd := send(t, m, key("enter"))
	assert.True(t, m.State().IsLoading, "loading as soon as the city is picked")
	assert.False(t, m.State().IsCityListVisible)
	assert.Equal(t, "Rio de Janeiro", m.State().SelectedCity)

	results := fetchResults(cmd)
	require.Len(t, results, 1)
	m, _ = send(t, m, results[0])

	assert.Equal(t, "Rio de Janeiro, RJ", m.State().Result.City)
	fetcher.AssertNumberOfCalls(t, "Fetch", 2)
}

func TestModel_SubmitTypedCity(t *testing.T) {
	fetcher := screenmocks.NewFetcher(t)
	m := mounted(t, fetcher)
	fetcher.EXPECT().Fetch(mock.Anything, weather.ByName{Name: "Porto Alegre"}).
		Return(sampleResult("Porto Alegre, RS"), nil).Once()

	m, _ = send(t, m, key("/"))
	require.True(t, m.input.Focused())

	m, _ = send(t, m, key("  Porto Alegre "))
	assert.Equal(t, "  Porto Alegre ", m.State().CityQuery)

	m, _ = send(t, m, key("t"))
	assert.False(t, m.State().IsDarkTheme, "keys go to the input while it has focus")

	m.input.SetValue("  Porto Alegre ")
	m, cmd := send(t, m, key("enter"))
	assert.False(t, m.input.Focused())
	assert.Equal(t, "", m.State().CityQuery)
	assert.Equal(t, "Porto Alegre", m.State().SelectedCity)

	results := fetchResults(cmd)
	require.Len(t, results, 1)
	m, _ = send(t, m, results[0])
	assert.Equal(t, "Porto Alegre, RS", m.State().Result.City)
}

func TestModel_BlankSubmitIgnored(t *testing.T) {
	fetcher := screenmocks.NewFetcher(t)
	m := mounted(t, fetcher)

	m, _ = send(t, m, key("/"))
	m, _ = send(t, m, key("   "))
	m, cmd := send(t, m, key("enter"))

	assert.Nil(t, cmd)
	assert.True(t, m.input.Focused())
	assert.False(t, m.State().IsLoading)

	m, _ = send(t, m, key("esc"))
	assert.False(t, m.input.Focused())
	fetcher.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestModel_Quit(t *testing.T) {
	m := mounted(t, screenmocks.NewFetcher(t))

	_, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, m, key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_FetchUsesContext(t *testing.T) {
	fetcher := screenmocks.NewFetcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher.EXPECT().Fetch(ctx, saoPaulo).Return(nil, context.Canceled).Once()

	mockLogger := mocks.NewLogger(t)
	mocks.AllowLogging(mockLogger, 4)
	mockMetrics := mocks.NewMetricsCollector(t)
	mocks.AllowMetrics(mockMetrics)

	m, err := New(Options{Context: ctx, Fetcher: fetcher, Logger: mockLogger, Metrics: mockMetrics, Initial: saoPaulo})
	require.NoError(t, err)

	results := fetchResults(m.Init())
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].err, context.Canceled)
}
