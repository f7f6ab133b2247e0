// Package dashboard contains dashboard-related use cases.
package dashboard

import "time"

// DateFilter narrows the dashboard aggregation to a calendar window.
// Either Year (optionally with Month) or both DateFrom and DateTo are set;
// the controller validates mutual consistency before building one.
type DateFilter struct {
	Year     *int
	Month    *int
	DateFrom *time.Time
	DateTo   *time.Time
}

// Window resolves the filter into a half-open [start, end) interval.
// Rules:
//   - explicit range: [DateFrom, DateTo+1d) so DateTo is inclusive at day level
//   - year+month: [first of month, first of next month), rolling December over
//   - year only: [Jan 1, Jan 1 of next year)
//   - empty filter: (nil, nil), meaning no date restriction
func (f DateFilter) Window() (start, end *time.Time) {
	if f.DateFrom != nil && f.DateTo != nil {
		s := *f.DateFrom
		e := f.DateTo.AddDate(0, 0, 1)
		return &s, &e
	}
	if f.Year != nil && f.Month != nil {
		s := time.Date(*f.Year, time.Month(*f.Month), 1, 0, 0, 0, 0, time.UTC)
		e := s.AddDate(0, 1, 0)
		return &s, &e
	}
	if f.Year != nil {
		s := time.Date(*f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		e := s.AddDate(1, 0, 0)
		return &s, &e
	}
	return nil, nil
}
