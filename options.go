package wc

type Option func(*Counter) error

func WithMetric(m Metric) Option {
	return func(c *Counter) error {
		if m == nil {
			return ErrMetric
		}
		c.metrics = append(c.metrics, m)
		return nil
	}
}

func WithBytes() Option {
	return WithMetric(Bytes)
}

func WithLines() Option {
	return WithMetric(Lines)
}

func WithWords() Option {
	return WithMetric(Words)
}

func WithAll() Option {
	return func(c *Counter) error {
		for _, o := range []Option{WithBytes(), WithLines(), WithWords()} {
			if err := o(c); err != nil {
				return err
			}
		}
		return nil
	}
}
