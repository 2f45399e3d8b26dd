package analyzer

import "strings"

// DefaultTerms returns the procurement, HR and staffing vocabulary counted
// when no term list is configured.
func DefaultTerms() []string {
	return []string{
		"procurement", "purchase order", "PO", "RFP", "RFQ", "RFI",
		"ATS", "applicant tracking", "HRIS", "HCM", "HRMS",
		"contingent workforce", "VMS", "MSP", "staffing",
		"SOW", "statement of work", "contractor", "freelancer",
		"vendor", "vendor management", "supplier", "requisition",
		"time-to-hire", "cost per hire", "candidate pipeline",
		"payroll", "benefits", "onboarding", "compliance",
	}
}

// TermCounter counts case-insensitive, non-overlapping occurrences of a
// fixed term list. Counts are keyed by the term as configured.
type TermCounter struct {
	terms   []string
	lowered []string
}

// NewTermCounter builds a counter. Empty terms are dropped.
func NewTermCounter(terms []string) *TermCounter {
	c := &TermCounter{}
	for _, term := range terms {
		if term == "" {
			continue
		}
		c.terms = append(c.terms, term)
		c.lowered = append(c.lowered, strings.ToLower(term))
	}
	return c
}

// Count scans text once per term. Terms that do not occur are omitted.
// TODO: swap in a single Aho-Corasick pass if term lists grow past a few hundred entries.
func (c *TermCounter) Count(text string) map[string]int {
	lower := strings.ToLower(text)
	found := make(map[string]int)
	for i, term := range c.lowered {
		if n := strings.Count(lower, term); n > 0 {
			found[c.terms[i]] = n
		}
	}
	return found
}
