package specification_test

import (
	"testing"

	"project-calendar-service/pkg/filter"
	"project-calendar-service/pkg/specification"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type slot struct {
	ID        int64
	DayNumber *int
	Label     *string
}

func dryRun(t *testing.T, spec specification.Specification) (string, []interface{}) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DryRun: true,
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	stmt := db.Scopes(spec.Scope()).Find(&[]slot{}).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestSpecification_Empty(t *testing.T) {
	t.Parallel()

	spec := specification.Where()
	require.True(t, spec.IsEmpty())

	sql, vars := dryRun(t, spec)
	require.NotContains(t, sql, "WHERE")
	require.Empty(t, vars)
}

func TestSpecification_AndIsImmutable(t *testing.T) {
	t.Parallel()

	base := specification.Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: 1})
	extended := base.And(clause.Gt{Column: clause.Column{Name: "day_number"}, Value: 2}, nil)

	require.Len(t, base.Expressions(), 1)
	require.Len(t, extended.Expressions(), 2)
	require.Len(t, base.AndSpec(specification.Specification{}).Expressions(), 1)
}

func TestBuildRangeSpecification(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		filter    *filter.IntegerFilter
		fragments []string
		absent    []string
		vars      []interface{}
	}{
		{
			name:   "nil filter",
			filter: nil,
			absent: []string{"WHERE"},
		},
		{
			name:      "equals wins",
			filter:    (&filter.IntegerFilter{}).SetEquals(3).SetGreaterThan(5).SetIn(1, 2),
			fragments: []string{"`day_number` = ?"},
			absent:    []string{">", "IN"},
			vars:      []interface{}{3},
		},
		{
			name:      "in wins over bounds",
			filter:    (&filter.IntegerFilter{}).SetIn(1, 2).SetLessThan(9),
			fragments: []string{"`day_number` IN (?,?)"},
			absent:    []string{"<"},
			vars:      []interface{}{1, 2},
		},
		{
			name:      "bounds are conjoined",
			filter:    (&filter.IntegerFilter{}).SetGreaterThanOrEqual(2).SetLessThan(7),
			fragments: []string{"`day_number` >= ?", "`day_number` < ?", " AND "},
			vars:      []interface{}{2, 7},
		},
		{
			name:      "specified",
			filter:    (&filter.IntegerFilter{}).SetSpecified(true),
			fragments: []string{"`day_number` IS NOT NULL"},
		},
		{
			name:      "not specified",
			filter:    (&filter.IntegerFilter{}).SetSpecified(false),
			fragments: []string{"`day_number` IS NULL"},
		},
		{
			name:      "not equals and not in",
			filter:    (&filter.IntegerFilter{}).SetNotEquals(4).SetNotIn(1, 2),
			fragments: []string{"`day_number` <> ?", "`day_number` NOT IN (?,?)"},
			vars:      []interface{}{4, 1, 2},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sql, vars := dryRun(t, specification.BuildRangeSpecification(tc.filter, "day_number"))
			for _, fragment := range tc.fragments {
				require.Contains(t, sql, fragment)
			}
			for _, fragment := range tc.absent {
				require.NotContains(t, sql, fragment)
			}
			if tc.vars != nil {
				require.Equal(t, tc.vars, vars)
			}
		})
	}
}

func TestBuildStringSpecification(t *testing.T) {
	t.Parallel()

	sql, vars := dryRun(t, specification.BuildStringSpecification(
		(&filter.StringFilter{}).SetContains("mon").SetDoesNotContain("x"), "label"))

	require.Contains(t, sql, "UPPER(`label`) LIKE ?")
	require.Contains(t, sql, "UPPER(`label`) NOT LIKE ?")
	require.Equal(t, []interface{}{"%MON%", "%X%"}, vars)
}
