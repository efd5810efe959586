package store

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric label names used by Instrument.
const (
	LabelBackend = "backend"
	LabelOp      = "op"
)

type instrumentedStore struct {
	backend   string
	next      Store
	opCount   *prometheus.CounterVec
	errCount  *prometheus.CounterVec
	opLatency *prometheus.HistogramVec
}

// Instrument wraps next so that every operation is counted and timed. The
// vectors must be labelled with LabelBackend and LabelOp.
func Instrument(
	next Store,
	backend string,
	opCount *prometheus.CounterVec,
	errCount *prometheus.CounterVec,
	opLatency *prometheus.HistogramVec,
) Store {
	return &instrumentedStore{
		backend:   backend,
		next:      next,
		opCount:   opCount,
		errCount:  errCount,
		opLatency: opLatency,
	}
}

func (s *instrumentedStore) Increment(ctx context.Context, key string) (count int64, err error) {
	defer func(begin time.Time) {
		s.track("incr", begin, err)
	}(time.Now())

	return s.next.Increment(ctx, key)
}

func (s *instrumentedStore) Get(ctx context.Context, key string) (count int64, err error) {
	defer func(begin time.Time) {
		s.track("get", begin, err)
	}(time.Now())

	return s.next.Get(ctx, key)
}

func (s *instrumentedStore) Reset(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.track("del", begin, err)
	}(time.Now())

	return s.next.Reset(ctx, key)
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}

func (s *instrumentedStore) track(op string, begin time.Time, err error) {
	labels := prometheus.Labels{
		LabelBackend: s.backend,
		LabelOp:      op,
	}

	if err != nil {
		s.errCount.With(labels).Inc()
		return
	}

	s.opCount.With(labels).Inc()
	s.opLatency.With(labels).Observe(time.Since(begin).Seconds())
}
