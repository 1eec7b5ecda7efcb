package converter

import (
	"project-calendar-service/internal/delivery/dto"
	"project-calendar-service/internal/domain/entity"
)

// ProjectCalendarToResponse converts a ProjectCalendar entity to ProjectCalendarResponse DTO
func ProjectCalendarToResponse(calendar *entity.ProjectCalendar) *dto.ProjectCalendarResponse {
	if calendar == nil {
		return nil
	}

	return &dto.ProjectCalendarResponse{
		ID:        calendar.ID,
		DayNumber: calendar.DayNumber,
		StartTime: calendar.StartTime,
		EndTime:   calendar.EndTime,
		ProjectID: calendar.ProjectID,
		CreatedAt: calendar.CreatedAt,
		UpdatedAt: calendar.UpdatedAt,
	}
}

// ProjectCalendarsToResponses converts a slice of ProjectCalendar entities to slice of ProjectCalendarResponse DTOs
func ProjectCalendarsToResponses(calendars []entity.ProjectCalendar) []dto.ProjectCalendarResponse {
	responses := make([]dto.ProjectCalendarResponse, len(calendars))
	for i := range calendars {
		responses[i] = *ProjectCalendarToResponse(&calendars[i])
	}
	return responses
}
