package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"project-calendar-service/internal/delivery/dto"
	"project-calendar-service/internal/delivery/http/middleware"
	"project-calendar-service/internal/domain/entity"
	"project-calendar-service/internal/usecase"
	"project-calendar-service/pkg/filter"
	"project-calendar-service/pkg/pagination"
	"project-calendar-service/pkg/response"
	"project-calendar-service/pkg/validator"

	"github.com/gorilla/mux"
)

type ProjectCalendarHandler struct {
	queryUsecase    usecase.ProjectCalendarQueryUsecase
	calendarUsecase usecase.ProjectCalendarUsecase
	validator       *validator.CustomValidator
}

func NewProjectCalendarHandler(
	queryUsecase usecase.ProjectCalendarQueryUsecase,
	calendarUsecase usecase.ProjectCalendarUsecase,
	validator *validator.CustomValidator,
) *ProjectCalendarHandler {
	return &ProjectCalendarHandler{
		queryUsecase:    queryUsecase,
		calendarUsecase: calendarUsecase,
		validator:       validator,
	}
}

// GetCalendars returns every matching calendar, or one page of them when page, size or sort is given.
func (h *ProjectCalendarHandler) GetCalendars(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	criteria, err := parseProjectCalendarCriteria(values)
	if err != nil {
		response.BadRequest(w, "Invalid filter", err.Error())
		return
	}

	if !isPaged(values) {
		calendars, err := h.queryUsecase.FindByCriteria(r.Context(), criteria)
		if err != nil {
			response.InternalServerError(w, "Failed to get project calendars")
			return
		}
		response.Success(w, http.StatusOK, "Project calendars retrieved successfully", dto.ProjectCalendarListResponse{
			Calendars: calendars,
			Total:     len(calendars),
		})
		return
	}

	pageRequest, validationErrors, err := parsePageRequest(values, h.validator)
	if err != nil {
		response.BadRequest(w, "Invalid sort", err.Error())
		return
	}
	if validationErrors != nil {
		response.ValidationError(w, validationErrors)
		return
	}

	page, err := h.queryUsecase.FindPageByCriteria(r.Context(), criteria, pageRequest)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidSort) {
			response.BadRequest(w, "Invalid sort", err.Error())
			return
		}
		response.InternalServerError(w, "Failed to get project calendars")
		return
	}

	response.Page(w, "Project calendars retrieved successfully", page.Content, pageMeta(page))
}

func (h *ProjectCalendarHandler) CountCalendars(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseProjectCalendarCriteria(r.URL.Query())
	if err != nil {
		response.BadRequest(w, "Invalid filter", err.Error())
		return
	}

	total, err := h.queryUsecase.CountByCriteria(r.Context(), criteria)
	if err != nil {
		response.InternalServerError(w, "Failed to count project calendars")
		return
	}

	response.Success(w, http.StatusOK, "Project calendars counted successfully", dto.CountResponse{Count: total})
}

func (h *ProjectCalendarHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := calendarID(w, r)
	if !ok {
		return
	}

	calendar, err := h.calendarUsecase.GetCalendar(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProjectCalendarNotFound) {
			response.NotFound(w, "Project calendar not found")
			return
		}
		response.InternalServerError(w, "Failed to get project calendar")
		return
	}

	response.Success(w, http.StatusOK, "Project calendar retrieved successfully", calendar)
}

func (h *ProjectCalendarHandler) CreateCalendar(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	calendar, err := h.calendarUsecase.CreateCalendar(r.Context(), middleware.ActorFromContext(r.Context()), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTimeRange) {
			response.BadRequest(w, "End time must not be before start time", nil)
			return
		}
		response.InternalServerError(w, "Failed to create project calendar")
		return
	}

	response.Success(w, http.StatusCreated, "Project calendar created successfully", calendar)
}

func (h *ProjectCalendarHandler) UpdateCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := calendarID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProjectCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	calendar, err := h.calendarUsecase.UpdateCalendar(r.Context(), middleware.ActorFromContext(r.Context()), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProjectCalendarNotFound):
			response.NotFound(w, "Project calendar not found")
		case errors.Is(err, usecase.ErrInvalidTimeRange):
			response.BadRequest(w, "End time must not be before start time", nil)
		default:
			response.InternalServerError(w, "Failed to update project calendar")
		}
		return
	}

	response.Success(w, http.StatusOK, "Project calendar updated successfully", calendar)
}

func (h *ProjectCalendarHandler) DeleteCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := calendarID(w, r)
	if !ok {
		return
	}

	if err := h.calendarUsecase.DeleteCalendar(r.Context(), middleware.ActorFromContext(r.Context()), id); err != nil {
		if errors.Is(err, usecase.ErrProjectCalendarNotFound) {
			response.NotFound(w, "Project calendar not found")
			return
		}
		response.InternalServerError(w, "Failed to delete project calendar")
		return
	}

	response.Success(w, http.StatusOK, "Project calendar deleted successfully", nil)
}

func calendarID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid project calendar ID", nil)
		return 0, false
	}
	return id, true
}

// parseProjectCalendarCriteria reads "<field>.<operator>=<value>" parameters,
// e.g. dayNumber.greaterThan=3 or projectId.in=1,2.
func parseProjectCalendarCriteria(values url.Values) (*entity.ProjectCalendarCriteria, error) {
	if err := checkCriteriaFields(values, usecase.ProjectCalendarCriteriaFields()); err != nil {
		return nil, err
	}

	var (
		criteria entity.ProjectCalendarCriteria
		err      error
	)
	if criteria.ID, err = filter.ParseRange(values, entity.ProjectCalendarFieldID, filter.ParseInt64); err != nil {
		return nil, err
	}
	if criteria.DayNumber, err = filter.ParseRange(values, entity.ProjectCalendarFieldDayNumber, filter.ParseInt); err != nil {
		return nil, err
	}
	if criteria.StartTime, err = filter.ParseRange(values, entity.ProjectCalendarFieldStartTime, filter.ParseInstant); err != nil {
		return nil, err
	}
	if criteria.EndTime, err = filter.ParseRange(values, entity.ProjectCalendarFieldEndTime, filter.ParseInstant); err != nil {
		return nil, err
	}
	if criteria.ProjectID, err = filter.ParseRange(values, entity.ProjectCalendarFieldProjectID, filter.ParseInt64); err != nil {
		return nil, err
	}
	return &criteria, nil
}
