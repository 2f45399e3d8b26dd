package categorizer

import (
	"strings"

	"github.com/nguyentantai21042004/kb-organizer/internal/domain"
)

type implCategorizer struct {
	table domain.KeywordTable
}

// New creates a Categorizer over table. Keywords are lowercased; the table
// order is kept as the tie-break order. A nil table selects DefaultTable.
func New(table domain.KeywordTable) Categorizer {
	if table == nil {
		table = DefaultTable()
	}

	lowered := make(domain.KeywordTable, 0, len(table))
	for _, cat := range table {
		keywords := make([]string, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			if kw == "" {
				continue
			}
			keywords = append(keywords, strings.ToLower(kw))
		}
		lowered = append(lowered, domain.CategoryKeywords{Name: cat.Name, Keywords: keywords})
	}

	return &implCategorizer{table: lowered}
}

// DefaultTable returns the built-in topic table in declaration order.
func DefaultTable() domain.KeywordTable {
	return domain.KeywordTable{
		{Name: "Procurement", Keywords: []string{"procurement", "purchase", "supplier", "vendor", "rfp", "rfq", "sourcing"}},
		{Name: "ATS & Recruitment", Keywords: []string{"ats", "applicant", "recruitment", "hiring", "candidate", "resume"}},
		{Name: "HRIS & HR Systems", Keywords: []string{"hris", "hrms", "hcm", "payroll", "benefits", "employee data"}},
		{Name: "Contingent Workforce", Keywords: []string{"contingent", "contractor", "freelancer", "gig", "temp", "agency"}},
		{Name: "VMS & MSP", Keywords: []string{"vms", "msp", "vendor management", "managed service"}},
		{Name: "Staffing & SOW", Keywords: []string{"staffing", "sow", "statement of work", "bill rate", "markup"}},
		{Name: "General HR", Keywords: []string{"onboarding", "performance", "compliance", "training", "workforce"}},
	}
}
