package wc

import (
	"errors"
)

var ErrMetric = errors.New("nil metric")

// Counter runs a fixed list of metrics over the contents of a file and
// merges their results.
type Counter struct {
	metrics []Metric
}

func New(options ...Option) (*Counter, error) {
	var c Counter
	for _, o := range options {
		if err := o(&c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (c *Counter) Metrics() int {
	return len(c.metrics)
}

// Count always sets the name of the report. Counts are set only for the
// registered metrics.
func (c *Counter) Count(name string, fc Contents) Report {
	rs := make([]Report, 0, len(c.metrics)+1)
	rs = append(rs, Named(name))
	for _, m := range c.metrics {
		rs = append(rs, m(fc))
	}
	return Merge(rs...)
}
