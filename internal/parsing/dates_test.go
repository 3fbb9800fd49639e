package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedStart string
		expectedEnd   string
	}{
		{"month-year to month-year", "Jun 2018 - Dec 2019", "Jun 2018", "Dec 2019"},
		{"month-year with en dash", "Jun 2018 – Dec 2019", "Jun 2018", "Dec 2019"},
		{"full month names", "January 2018 - December 2019", "January 2018", "December 2019"},
		{"year to year", "2018 - 2020", "2018", "2020"},
		{"month-year to present", "Jan 2020 - Present", "Jan 2020", "Present"},
		{"month-year to current", "Jan 2020 - Current", "Jan 2020", "Current"},
		{"present lowercase", "Jan 2020 - present", "Jan 2020", "present"},
		{"empty input", "", "", ""},
		{"unparseable input", "a while back", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := parseDateRange(tt.input)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestEndDateOrdinal_PresentSortsAboveEverything(t *testing.T) {
	assert.Greater(t, endDateOrdinal("Present"), endDateOrdinal("Dec 2099"))
	assert.Greater(t, endDateOrdinal("Current"), endDateOrdinal("Dec 2099"))
	assert.Greater(t, endDateOrdinal("present"), endDateOrdinal("Dec 2099"))
}

func TestEndDateOrdinal_OrdersByYearThenMonth(t *testing.T) {
	assert.Greater(t, endDateOrdinal("Jan 2021"), endDateOrdinal("Dec 2020"))
	assert.Greater(t, endDateOrdinal("Dec 2020"), endDateOrdinal("Jun 2020"))
}

func TestEndDateOrdinal_BareYearReadsAsDecember(t *testing.T) {
	assert.Greater(t, endDateOrdinal("2020"), endDateOrdinal("Jun 2020"))
	assert.Equal(t, endDateOrdinal("2020"), endDateOrdinal("Dec 2020"))
}

func TestEndDateOrdinal_UnresolvableSortsLast(t *testing.T) {
	assert.Equal(t, -1, endDateOrdinal(""))
	assert.Equal(t, -1, endDateOrdinal("someday"))
	assert.Less(t, endDateOrdinal(""), endDateOrdinal("Jan 1990"))
}
