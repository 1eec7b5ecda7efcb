package entity

import (
	"fmt"
	"strings"

	"project-calendar-service/pkg/filter"
)

// ProjectCalendarCriteria carries one optional filter per queryable ProjectCalendar attribute.
// A nil filter puts no constraint on its attribute.
type ProjectCalendarCriteria struct {
	ID        *filter.LongFilter
	DayNumber *filter.IntegerFilter
	StartTime *filter.InstantFilter
	EndTime   *filter.InstantFilter
	ProjectID *filter.LongFilter
}

func (c *ProjectCalendarCriteria) String() string {
	if c == nil {
		return "ProjectCalendarCriteria{}"
	}
	var parts []string
	if c.ID != nil {
		parts = append(parts, fmt.Sprintf("id=%s", c.ID))
	}
	if c.DayNumber != nil {
		parts = append(parts, fmt.Sprintf("dayNumber=%s", c.DayNumber))
	}
	if c.StartTime != nil {
		parts = append(parts, fmt.Sprintf("startTime=%s", c.StartTime))
	}
	if c.EndTime != nil {
		parts = append(parts, fmt.Sprintf("endTime=%s", c.EndTime))
	}
	if c.ProjectID != nil {
		parts = append(parts, fmt.Sprintf("projectId=%s", c.ProjectID))
	}
	return "ProjectCalendarCriteria{" + strings.Join(parts, ", ") + "}"
}
