package gen

import (
	"errors"
	"log/slog"
)

type (
	// Option applies an option to a generator configuration instance
	Option func(*config) error

	config struct {
		logger *slog.Logger
	}
)

var (
	ErrNilLogger = errors.New("logger must not be nil")
)

// Generate renders the definition into formatted Go source. Derived
// constants are resolved here, so a derived lookup whose key has no
// matching entry fails Generate with the definition's message
func Generate(f *File, o ...Option) ([]byte, error) {
	cfg, err := makeConfig(o...)
	if err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	m, err := f.emitModel(cfg.logger)
	if err != nil {
		return nil, err
	}
	return m.render()
}

// WithLogger directs the generator's diagnostics to the provided Logger
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return ErrNilLogger
		}
		c.logger = l
		return nil
	}
}

func makeConfig(o ...Option) (*config, error) {
	res := &config{
		logger: slog.Default(),
	}
	for _, opt := range o {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}
