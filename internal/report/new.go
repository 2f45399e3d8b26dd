package report

// Options controls report layout.
type Options struct {
	Title           string
	ExcerptLimit    int
	TopTerms        int
	TopTermsPerFile int
}

type implBuilder struct {
	opts Options
}

// New creates a Builder. Zero limits fall back to 1000 characters, 20 and 10 terms.
func New(opts Options) Builder {
	if opts.ExcerptLimit <= 0 {
		opts.ExcerptLimit = 1000
	}
	if opts.TopTerms <= 0 {
		opts.TopTerms = 20
	}
	if opts.TopTermsPerFile <= 0 {
		opts.TopTermsPerFile = 10
	}
	return &implBuilder{opts: opts}
}
