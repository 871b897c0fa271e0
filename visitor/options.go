package visitor

import "go.uber.org/zap"

type options struct {
	Logger *zap.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type Option func(*options)

// Logger traces construction and destruction to logger.
func Logger(logger *zap.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}
