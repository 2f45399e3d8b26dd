package analyzer

import "strings"

// Options configures header parsing, body detection and term counting.
type Options struct {
	Terms           []string
	HeaderLines     int
	SeparatorChar   string
	SeparatorLength int
}

type implAnalyzer struct {
	counter     *TermCounter
	headerLines int
	sepChar     string
	separator   string
}

// New creates an Analyzer. Nil Terms selects DefaultTerms; an empty
// non-nil slice disables term counting.
func New(opts Options) Analyzer {
	terms := opts.Terms
	if terms == nil {
		terms = DefaultTerms()
	}

	var separator string
	if opts.SeparatorChar != "" && opts.SeparatorLength > 0 {
		separator = strings.Repeat(opts.SeparatorChar, opts.SeparatorLength)
	}

	return &implAnalyzer{
		counter:     NewTermCounter(terms),
		headerLines: opts.HeaderLines,
		sepChar:     opts.SeparatorChar,
		separator:   separator,
	}
}
