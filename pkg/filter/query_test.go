package filter_test

import (
	"net/url"
	"testing"
	"time"

	"project-calendar-service/pkg/filter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		query    string
		expected *filter.IntegerFilter
		err      error
	}{
		{
			name:     "absent field",
			query:    "projectId.equals=4",
			expected: nil,
		},
		{
			name:     "equals",
			query:    "dayNumber.equals=3",
			expected: (&filter.IntegerFilter{}).SetEquals(3),
		},
		{
			name:     "bounds",
			query:    "dayNumber.greaterThanOrEqual=2&dayNumber.lessThan=7",
			expected: (&filter.IntegerFilter{}).SetGreaterThanOrEqual(2).SetLessThan(7),
		},
		{
			name:     "comma separated and repeated list",
			query:    "dayNumber.in=1,2&dayNumber.in=5",
			expected: (&filter.IntegerFilter{}).SetIn(1, 2, 5),
		},
		{
			name:     "empty list",
			query:    "dayNumber.notIn=",
			expected: (&filter.IntegerFilter{}).SetNotIn(),
		},
		{
			name:     "specified",
			query:    "dayNumber.specified=false",
			expected: (&filter.IntegerFilter{}).SetSpecified(false),
		},
		{
			name:  "bad value",
			query: "dayNumber.equals=three",
			err:   filter.ErrInvalidFilter,
		},
		{
			name:  "bad specified",
			query: "dayNumber.specified=maybe",
			err:   filter.ErrInvalidFilter,
		},
		{
			name:  "unsupported operator",
			query: "dayNumber.contains=3",
			err:   filter.ErrInvalidFilter,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			values, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			actual, err := filter.ParseRange(values, "dayNumber", filter.ParseInt)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseRange_Instant(t *testing.T) {
	t.Parallel()

	values := url.Values{"startTime.greaterThan": {"2024-01-01T10:00:00Z"}}

	actual, err := filter.ParseRange(values, "startTime", filter.ParseInstant)
	require.NoError(t, err)
	require.NotNil(t, actual.GreaterThan)
	require.True(t, actual.GreaterThan.Equal(time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)))

	_, err = filter.ParseRange(url.Values{"startTime.lessThan": {"yesterday"}}, "startTime", filter.ParseInstant)
	require.ErrorIs(t, err, filter.ErrInvalidFilter)
}

func TestParseBase(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	values := url.Values{"userId.equals": {id.String()}}

	actual, err := filter.ParseBase(values, "userId", filter.ParseUUID)
	require.NoError(t, err)
	require.Equal(t, (&filter.UUIDFilter{}).SetEquals(id), actual)

	_, err = filter.ParseBase(url.Values{"userId.greaterThan": {id.String()}}, "userId", filter.ParseUUID)
	require.ErrorIs(t, err, filter.ErrInvalidFilter)
}

func TestParseStringFilter(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"action.contains":       {"calendar"},
		"action.doesNotContain": {"delete"},
	}

	actual, err := filter.ParseStringFilter(values, "action")
	require.NoError(t, err)
	require.Equal(t, (&filter.StringFilter{}).SetContains("calendar").SetDoesNotContain("delete"), actual)

	_, err = filter.ParseStringFilter(url.Values{"action.lessThan": {"x"}}, "action")
	require.ErrorIs(t, err, filter.ErrInvalidFilter)
}
