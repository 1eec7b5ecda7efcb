package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"project-calendar-service/internal/domain/entity"
	"project-calendar-service/internal/usecase"
	"project-calendar-service/pkg/filter"
	"project-calendar-service/pkg/pagination"
	"project-calendar-service/pkg/response"
	"project-calendar-service/pkg/validator"

	"github.com/gorilla/mux"
)

var auditLogCriteriaFields = []string{
	entity.AuditLogFieldID,
	entity.AuditLogFieldAction,
	entity.AuditLogFieldUserID,
	entity.AuditLogFieldCreatedAt,
}

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	validator       *validator.CustomValidator
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, validator *validator.CustomValidator) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		validator:       validator,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID", nil)
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	criteria, err := parseAuditLogCriteria(values)
	if err != nil {
		response.BadRequest(w, "Invalid filter", err.Error())
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

	page, err := h.auditLogUsecase.FindPageByCriteria(r.Context(), criteria, pageRequest)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidSort) {
			response.BadRequest(w, "Invalid sort", err.Error())
			return
		}
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Page(w, "Audit logs retrieved successfully", page.Content, pageMeta(page))
}

func parseAuditLogCriteria(values url.Values) (*entity.AuditLogCriteria, error) {
	if err := checkCriteriaFields(values, auditLogCriteriaFields); err != nil {
		return nil, err
	}

	var (
		criteria entity.AuditLogCriteria
		err      error
	)
	if criteria.ID, err = filter.ParseRange(values, entity.AuditLogFieldID, filter.ParseInt64); err != nil {
		return nil, err
	}
	if criteria.Action, err = filter.ParseStringFilter(values, entity.AuditLogFieldAction); err != nil {
		return nil, err
	}
	if criteria.UserID, err = filter.ParseBase(values, entity.AuditLogFieldUserID, filter.ParseUUID); err != nil {
		return nil, err
	}
	if criteria.CreatedAt, err = filter.ParseRange(values, entity.AuditLogFieldCreatedAt, filter.ParseInstant); err != nil {
		return nil, err
	}
	return &criteria, nil
}
