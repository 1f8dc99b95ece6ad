package screen

import (
	"context"
	"sync"
	"sync/atomic"

	"weatherscreen.app/internal/core/weather"
	"weatherscreen.app/internal/ports"
	"weatherscreen.app/pkg/errors"
	"weatherscreen.app/pkg/validation"
)

// Screen owns one State. A single loop goroutine applies every event, fetches run in
// their own goroutines and report back through the loop, so State is never shared.
// In-flight fetches are neither cancelled nor coalesced by newer triggers.
type Screen struct {
	fetcher Fetcher
	logger  ports.Logger
	metrics ports.MetricsCollector
	initial weather.LocationQuery
	page    PageOptions

	// loop-owned
	state     State
	unmounted bool

	current atomic.Pointer[State]
	events  chan envelope

	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup
	done     chan struct{}
	stopped  chan struct{}

	mountOnce sync.Once
	closeOnce sync.Once
}

// Options configures a Screen.
type Options struct {
	Fetcher  Fetcher
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
	Initial  weather.LocationQuery
	Selected string
	Dark     bool
	Page     PageOptions
}

type envelope struct {
	event Event
	ack   chan struct{}
}

type unmounted struct{}

func (unmounted) EventName() string { return "unmount" }

func New(opts Options) (*Screen, error) {
	if opts.Fetcher == nil {
		return nil, errors.NewValidationError("fetcher is required")
	}
	if opts.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if opts.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if opts.Initial == nil {
		return nil, errors.NewValidationError("initial location is required")
	}
	if err := opts.Initial.Validate(); err != nil {
		return nil, errors.NewValidationError("invalid initial location: " + err.Error())
	}

	s := &Screen{
		fetcher: opts.Fetcher,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		initial: opts.Initial,
		page:    opts.Page,
		state:   InitialState(opts.Selected, opts.Dark),
		events:  make(chan envelope),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	s.publish()
	return s, nil
}

// Mount starts the event loop and issues the initial fetch. Calls after the first are no-ops.
func (s *Screen) Mount(ctx context.Context) {
	s.mountOnce.Do(func() {
		s.ctx, s.cancel = context.WithCancel(ctx)
		go s.run()
		s.dispatch(FetchStarted{Query: s.initial})
	})
}

// ToggleTheme flips between the light and dark palettes.
func (s *Screen) ToggleTheme() {
	s.dispatch(ThemeToggled{})
}

// ToggleCityList shows or hides the shortlist.
func (s *Screen) ToggleCityList() {
	s.dispatch(CityListToggled{})
}

// SetCityQuery records the current content of the free-text field.
func (s *Screen) SetCityQuery(text string) {
	s.dispatch(CityQueryChanged{Text: text})
}

// SubmitCity changes the city to the trimmed free-text value and fetches it.
func (s *Screen) SubmitCity(name string) error {
	city, ok := validation.TrimAndValidate(name)
	if !ok || !validation.IsValidCityName(city) {
		return errors.NewValidationError("city name is invalid")
	}
	s.changeCity(city)
	return nil
}

// SelectCity changes the city to exactly name, as tapped in the shortlist, and fetches it.
func (s *Screen) SelectCity(name string) error {
	if !validation.IsNotEmpty(name) {
		return errors.NewValidationError("city name is required")
	}
	s.changeCity(name)
	return nil
}

func (s *Screen) changeCity(city string) {
	s.dispatch(CityChanged{City: city})
	s.dispatch(FetchStarted{Query: weather.ByName{Name: city}})
}

// Snapshot returns the latest published state.
func (s *Screen) Snapshot() State {
	return *s.current.Load()
}

// Render projects the latest state into a Page.
func (s *Screen) Render() Page {
	return BuildPage(s.Snapshot(), s.page)
}

// Wait blocks until every fetch started so far has reported its outcome.
func (s *Screen) Wait() {
	s.inflight.Wait()
}

// Close unmounts the screen: no new fetches start, in-flight ones are cancelled and
// drained, then the loop stops.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		if s.cancel == nil {
			return
		}
		s.dispatch(unmounted{})
		s.cancel()
		s.inflight.Wait()
		close(s.done)
		<-s.stopped
	})
}

func (s *Screen) run() {
	defer close(s.stopped)
	for {
		select {
		case env := <-s.events:
			s.apply(env.event)
			close(env.ack)
		case <-s.done:
			return
		}
	}
}

// dispatch hands ev to the loop and waits until it has been applied.
func (s *Screen) dispatch(ev Event) bool {
	if s.cancel == nil {
		s.logger.Warn("Event dropped, screen not mounted", ports.F("event", ev.EventName()))
		return false
	}

	env := envelope{event: ev, ack: make(chan struct{})}
	select {
	case s.events <- env:
	case <-s.done:
		return false
	}
	<-env.ack
	return true
}

func (s *Screen) apply(ev Event) {
	if _, ok := ev.(unmounted); ok {
		s.unmounted = true
		return
	}

	if start, ok := ev.(FetchStarted); ok && s.unmounted {
		s.logger.Debug("Fetch skipped, screen unmounted", ports.F("query", start.Query.String()))
		return
	}

	s.state = Reduce(s.state, ev)
	s.publish()
	s.metrics.RecordEvent(ev.EventName())

	if start, ok := ev.(FetchStarted); ok {
		s.startFetch(start.Query)
	}
}

func (s *Screen) startFetch(query weather.LocationQuery) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		result, err := s.fetcher.Fetch(s.ctx, query)
		if err != nil {
			s.logger.Error("Weather fetch failed",
				ports.F("mode", query.Mode()),
				ports.F("query", query.String()),
				ports.F("error", err.Error()))
			s.dispatch(FetchFailed{Query: query, Err: err})
			return
		}
		s.dispatch(FetchSucceeded{Query: query, Result: result})
	}()
}

func (s *Screen) publish() {
	snapshot := s.state
	s.current.Store(&snapshot)
}
