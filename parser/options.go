package parser

// Logger receives debug events. *log.Logger from github.com/charmbracelet/log
// satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}

type parseOpts struct {
	logger   Logger
	maxDepth int
}

// Option configures a Parser.
type Option func(*parseOpts)

// WithLogger sends debug events to l.
func WithLogger(l Logger) Option {
	return func(o *parseOpts) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxDepth limits how deeply lists and quote forms may nest. Zero means
// no limit.
func WithMaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newParseOpts(opts []Option) parseOpts {
	o := parseOpts{logger: nopLogger{}}
	for _, f := range opts {
		f(&o)
	}
	return o
}
