package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/illmade-knight/great-circle/pkg/geo"
	"github.com/rs/zerolog"
)

// ErrSessionClosed is returned by Session methods after Close.
var ErrSessionClosed = errors.New("session closed")

// ReleaseHook is called once for every value a Session tracked, when the
// Session closes.
type ReleaseHook func(v any)

// LogReleaseHook logs each released value at debug level. Coordinates are
// logged as radians to two decimals, distances as nautical miles.
func LogReleaseHook(logger zerolog.Logger) ReleaseHook {
	return func(v any) {
		var short string
		switch val := v.(type) {
		case geo.Coordinate:
			short = fmt.Sprintf("%.2f", val)
		case geo.Distance:
			short = val.String()
		default:
			short = fmt.Sprint(val)
		}
		logger.Debug().Str("value", short).Msg("Value released")
	}
}

// Session scopes the values an App hands out so they can be traced when
// the caller is done with them. Close runs the release hook for each
// tracked value, most recent first.
type Session struct {
	app *App

	mu     sync.Mutex
	values []any
	closed bool
}

// NewSession starts a Session bound to the App's release hook.
func (a *App) NewSession() *Session {
	return &Session{app: a}
}

// Track records v for release on Close.
func (s *Session) Track(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.values = append(s.values, v)
	return nil
}

// Measure is App.Measure with both endpoints and the distance tracked.
func (s *Session) Measure(ctx context.Context, from, to string) (Measurement, error) {
	m, err := s.app.Measure(ctx, from, to)
	if err != nil {
		return Measurement{}, err
	}
	for _, v := range []any{m.From.Position, m.To.Position, m.Distance} {
		if err := s.Track(v); err != nil {
			return Measurement{}, err
		}
	}
	return m, nil
}

// Close releases every tracked value. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	values := s.values
	s.values = nil
	s.mu.Unlock()

	hook := s.app.Config.ReleaseHook
	if hook == nil {
		return
	}
	for i := len(values) - 1; i >= 0; i-- {
		hook(values[i])
	}
}
