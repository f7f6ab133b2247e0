package dashboard

import (
	"testing"
	"time"
)

func TestDateFilterWindow(t *testing.T) {
	intPtr := func(v int) *int { return &v }
	timePtr := func(v time.Time) *time.Time { return &v }

	tests := []struct {
		name      string
		filter    DateFilter
		wantStart time.Time
		wantEnd   time.Time
		unbounded bool
	}{
		{
			name:      "empty filter is unbounded",
			filter:    DateFilter{},
			unbounded: true,
		},
		{
			name:      "year only covers the calendar year",
			filter:    DateFilter{Year: intPtr(2024)},
			wantStart: day(2024, time.January, 1),
			wantEnd:   day(2025, time.January, 1),
		},
		{
			name:      "year and month cover one month",
			filter:    DateFilter{Year: intPtr(2024), Month: intPtr(6)},
			wantStart: day(2024, time.June, 1),
			wantEnd:   day(2024, time.July, 1),
		},
		{
			name:      "december rolls into the next year",
			filter:    DateFilter{Year: intPtr(2024), Month: intPtr(12)},
			wantStart: day(2024, time.December, 1),
			wantEnd:   day(2025, time.January, 1),
		},
		{
			name: "explicit range keeps date_to inclusive",
			filter: DateFilter{
				DateFrom: timePtr(day(2024, time.March, 10)),
				DateTo:   timePtr(day(2024, time.March, 20)),
			},
			wantStart: day(2024, time.March, 10),
			wantEnd:   day(2024, time.March, 21),
		},
		{
			name: "single day range spans exactly one day",
			filter: DateFilter{
				DateFrom: timePtr(day(2024, time.March, 10)),
				DateTo:   timePtr(day(2024, time.March, 10)),
			},
			wantStart: day(2024, time.March, 10),
			wantEnd:   day(2024, time.March, 11),
		},
		{
			name: "explicit range wins over year",
			filter: DateFilter{
				Year:     intPtr(2020),
				DateFrom: timePtr(day(2024, time.March, 10)),
				DateTo:   timePtr(day(2024, time.March, 20)),
			},
			wantStart: day(2024, time.March, 10),
			wantEnd:   day(2024, time.March, 21),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.filter.Window()

			if tt.unbounded {
				if start != nil || end != nil {
					t.Fatalf("expected unbounded window, got [%v, %v)", start, end)
				}
				return
			}

			if start == nil || end == nil {
				t.Fatalf("expected bounded window, got [%v, %v)", start, end)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start: expected %s, got %s", tt.wantStart, start)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end: expected %s, got %s", tt.wantEnd, end)
			}
		})
	}
}
