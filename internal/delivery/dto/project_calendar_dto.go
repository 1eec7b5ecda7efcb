package dto

import "time"

// Request DTOs

type CreateProjectCalendarRequest struct {
	DayNumber *int       `json:"day_number" validate:"omitempty,gte=0"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	ProjectID *int64     `json:"project_id" validate:"omitempty,gte=1"`
}

type UpdateProjectCalendarRequest struct {
	DayNumber *int       `json:"day_number" validate:"omitempty,gte=0"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	ProjectID *int64     `json:"project_id" validate:"omitempty,gte=1"`
}

// PageQuery holds the paging parameters of list endpoints.
type PageQuery struct {
	Page int `form:"page" validate:"gte=1"`
	Size int `form:"size" validate:"gte=1,lte=2000"`
}

// Response DTOs

type ProjectCalendarResponse struct {
	ID        int64      `json:"id"`
	DayNumber *int       `json:"day_number"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	ProjectID *int64     `json:"project_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ProjectCalendarListResponse struct {
	Calendars []ProjectCalendarResponse `json:"calendars"`
	Total     int                       `json:"total"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
