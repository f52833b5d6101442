package courier

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type logger struct {
	log     zerolog.Logger
	started sync.Map
}

// NewLogger returns a plugin that logs every request and its outcome.
func NewLogger(log zerolog.Logger) LoggerPlugins {
	return &logger{log: log}
}

func (l *logger) Type() string {
	return "logger"
}

func (l *logger) OnRequestStart(req *http.Request) {
	l.started.Store(req, time.Now())

	l.log.Info().
		Str("direction", "outbound").
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("courier request")
}

func (l *logger) OnRequestEnd(req *http.Request, res *http.Response) {
	l.log.Info().
		Str("direction", "inbound").
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", res.StatusCode).
		Dur("elapsed", l.elapsed(req)).
		Msg("courier response")
}

func (l *logger) OnRequestError(req *http.Request, err error) {
	l.log.Error().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Dur("elapsed", l.elapsed(req)).
		Msg("courier request failed")
}

func (l *logger) elapsed(req *http.Request) time.Duration {
	v, ok := l.started.LoadAndDelete(req)
	if !ok {
		return 0
	}
	return time.Since(v.(time.Time))
}
