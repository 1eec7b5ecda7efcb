package entity

import "time"

// ProjectCalendar is one working-day slot of a project's calendar.
// ProjectID references a project owned by the project service, so there is no relation here.
type ProjectCalendar struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	DayNumber *int       `gorm:"index" json:"day_number"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	ProjectID *int64     `gorm:"index" json:"project_id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProjectCalendar) TableName() string {
	return "project_calendars"
}

// Logical field names, as used in query parameters and sort orders.
const (
	ProjectCalendarFieldID        = "id"
	ProjectCalendarFieldDayNumber = "dayNumber"
	ProjectCalendarFieldStartTime = "startTime"
	ProjectCalendarFieldEndTime   = "endTime"
	ProjectCalendarFieldProjectID = "projectId"
)
