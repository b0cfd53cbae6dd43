package parser

// Version selects the Python language version whose grammar the parser
// accepts. Later versions are supersets for the constructs this package
// understands.
type Version int

const (
	// Py35 accepts the 3.5 grammar, including the `@` matrix-multiplication
	// operator.
	Py35 Version = iota
	// Py38 adds assignment expressions (`:=`) and positional-only parameter
	// markers (`/`).
	Py38
	// Py312 is the default.
	Py312
)

func (v Version) String() string {
	switch v {
	case Py35:
		return "3.5"
	case Py38:
		return "3.8"
	case Py312:
		return "3.12"
	}
	return "unknown"
}

type config struct {
	version Version
}

// Option customizes parsing behavior.
type Option func(*config)

// WithVersion sets the grammar version. The default is [Py312].
func WithVersion(v Version) Option {
	return func(c *config) { c.version = v }
}

func newConfig(opts []Option) config {
	c := config{version: Py312}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
