package etl

import "fmt"

// ParseFailure records one field-level coercion that fell back to its domain
// default. The raw string is kept so data-quality issues stay visible even
// though the row itself is never rejected.
type ParseFailure struct {
	Domain string
	Field  string
	Row    int // zero-based data row in the source table
	Raw    string
}

// QualityReport aggregates parse failures for one pipeline run.
type QualityReport struct {
	Failures []ParseFailure
}

func (q *QualityReport) Record(domain, field string, row int, raw string) {
	q.Failures = append(q.Failures, ParseFailure{Domain: domain, Field: field, Row: row, Raw: raw})
}

// CountByField returns failure counts keyed by "domain.field".
func (q *QualityReport) CountByField() map[string]int {
	counts := make(map[string]int)
	for _, f := range q.Failures {
		counts[fmt.Sprintf("%s.%s", f.Domain, f.Field)]++
	}
	return counts
}

func (q *QualityReport) Total() int {
	return len(q.Failures)
}
