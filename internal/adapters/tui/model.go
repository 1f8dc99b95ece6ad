// Package tui renders the weather screen in a terminal with Bubble Tea.
// The Bubble Tea update loop owns the State; fetches run as commands and come back as messages.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"weatherscreen.app/internal/core/screen"
	"weatherscreen.app/internal/core/weather"
	"weatherscreen.app/internal/ports"
	"weatherscreen.app/pkg/errors"
	"weatherscreen.app/pkg/validation"
)

// fetchResultMsg carries the outcome of one fetch back into the update loop.
type fetchResultMsg struct {
	query  weather.LocationQuery
	result *weather.Result
	err    error
}

// Model is the tea.Model of the terminal screen.
type Model struct {
	ctx     context.Context
	fetcher screen.Fetcher
	logger  ports.Logger
	metrics ports.MetricsCollector
	initial weather.LocationQuery
	page    screen.PageOptions

	state   screen.State
	spinner spinner.Model
	input   textinput.Model
	cursor  int
	width   int
}

// Options configures a Model.
type Options struct {
	Context  context.Context
	Fetcher  screen.Fetcher
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
	Initial  weather.LocationQuery
	Selected string
	Dark     bool
	Page     screen.PageOptions
}

func New(opts Options) (Model, error) {
	if opts.Fetcher == nil {
		return Model{}, errors.NewValidationError("fetcher is required")
	}
	if opts.Logger == nil {
		return Model{}, errors.NewValidationError("logger is required")
	}
	if opts.Metrics == nil {
		return Model{}, errors.NewValidationError("metrics is required")
	}
	if opts.Initial == nil || opts.Initial.Validate() != nil {
		return Model{}, errors.NewValidationError("a valid initial location is required")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Placeholder = "Digite uma cidade"
	input.CharLimit = validation.MaxCityNameLength
	input.Prompt = "🔎 "

	return Model{
		ctx:     ctx,
		fetcher: opts.Fetcher,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		initial: opts.Initial,
		page:    opts.Page,
		state:   screen.InitialState(opts.Selected, opts.Dark),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		input:   input,
	}, nil
}

// State returns the current screen state.
func (m Model) State() screen.State {
	return m.state
}

// Init starts the initial fetch; the fresh state is already loading.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.initial), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case fetchResultMsg:
		if msg.err != nil {
			m.logger.Error("Weather fetch failed",
				ports.F("mode", msg.query.Mode()),
				ports.F("query", msg.query.String()),
				ports.F("error", msg.err.Error()))
			m.apply(screen.FetchFailed{Query: msg.query, Err: msg.err})
		} else {
			m.apply(screen.FetchSucceeded{Query: msg.query, Result: msg.result})
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "t":
		m.apply(screen.ThemeToggled{})
	case "l":
		m.apply(screen.CityListToggled{})
		m.cursor = 0
	case "/":
		cmd := m.input.Focus()
		return m, cmd
	case "up", "k":
		if m.pickerVisible() && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.pickerVisible() && m.cursor < len(m.page.Shortlist)-1 {
			m.cursor++
		}
	case "enter":
		if m.pickerVisible() && m.cursor < len(m.page.Shortlist) {
			return m.changeCity(m.page.Shortlist[m.cursor])
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		return m, nil
	case "enter":
		city, ok := validation.TrimAndValidate(m.input.Value())
		if !ok || !validation.IsValidCityName(city) {
			return m, nil
		}
		m.input.Blur()
		m.input.Reset()
		return m.changeCity(city)
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.apply(screen.CityQueryChanged{Text: after})
	}
	return m, cmd
}

func (m Model) changeCity(city string) (tea.Model, tea.Cmd) {
	query := weather.ByName{Name: city}
	m.apply(screen.CityChanged{City: city})
	m.apply(screen.FetchStarted{Query: query})
	m.cursor = 0
	return m, tea.Batch(m.fetch(query), m.spinner.Tick)
}

func (m *Model) apply(ev screen.Event) {
	m.state = screen.Reduce(m.state, ev)
	m.metrics.RecordEvent(ev.EventName())
}

func (m Model) pickerVisible() bool {
	return screen.Route(m.state).ShowCityPicker
}

// fetch performs exactly one lookup and reports it as a message.
func (m Model) fetch(query weather.LocationQuery) tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		result, err := fetcher.Fetch(ctx, query)
		return fetchResultMsg{query: query, result: result, err: err}
	}
}
