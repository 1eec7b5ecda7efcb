package usecase

import (
	"context"
	"errors"
	"strconv"

	"project-calendar-service/internal/converter"
	"project-calendar-service/internal/delivery/dto"
	"project-calendar-service/internal/domain/entity"
	"project-calendar-service/internal/domain/repository"
	"project-calendar-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProjectCalendarNotFound = errors.New("project calendar not found")
	ErrInvalidTimeRange        = errors.New("end time must not be before start time")
)

const projectCalendarEntityName = "project_calendar"

type ProjectCalendarUsecase interface {
	CreateCalendar(ctx context.Context, actorID *uuid.UUID, req *dto.CreateProjectCalendarRequest) (*dto.ProjectCalendarResponse, error)
	GetCalendar(ctx context.Context, id int64) (*dto.ProjectCalendarResponse, error)
	UpdateCalendar(ctx context.Context, actorID *uuid.UUID, id int64, req *dto.UpdateProjectCalendarRequest) (*dto.ProjectCalendarResponse, error)
	DeleteCalendar(ctx context.Context, actorID *uuid.UUID, id int64) error
}

type projectCalendarUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	calendarRepo repository.ProjectCalendarRepository
	auditService service.AuditService
}

func NewProjectCalendarUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	calendarRepo repository.ProjectCalendarRepository,
	auditService service.AuditService,
) ProjectCalendarUsecase {
	return &projectCalendarUsecase{
		db:           db,
		log:          log,
		calendarRepo: calendarRepo,
		auditService: auditService,
	}
}

func (u *projectCalendarUsecase) CreateCalendar(ctx context.Context, actorID *uuid.UUID, req *dto.CreateProjectCalendarRequest) (*dto.ProjectCalendarResponse, error) {
	calendar := &entity.ProjectCalendar{
		DayNumber: req.DayNumber,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		ProjectID: req.ProjectID,
	}
	if !validTimeRange(calendar) {
		return nil, ErrInvalidTimeRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.calendarRepo.Create(ctx, tx, calendar); err != nil {
		u.log.Warnf("Failed to create project calendar: %+v", err)
		return nil, err
	}

	// Audit log - create calendar
	if err := u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionCalendarCreate,
		projectCalendarEntityName, formatID(calendar.ID), converter.ProjectCalendarToResponse(calendar)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProjectCalendarToResponse(calendar), nil
}

func (u *projectCalendarUsecase) GetCalendar(ctx context.Context, id int64) (*dto.ProjectCalendarResponse, error) {
	calendar, err := u.calendarRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find project calendar: %+v", err)
		return nil, err
	}
	if calendar == nil {
		return nil, ErrProjectCalendarNotFound
	}

	return converter.ProjectCalendarToResponse(calendar), nil
}

// UpdateCalendar replaces only the fields present in req.
func (u *projectCalendarUsecase) UpdateCalendar(ctx context.Context, actorID *uuid.UUID, id int64, req *dto.UpdateProjectCalendarRequest) (*dto.ProjectCalendarResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	calendar, err := u.calendarRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find project calendar: %+v", err)
		return nil, err
	}
	if calendar == nil {
		return nil, ErrProjectCalendarNotFound
	}
	oldValue := converter.ProjectCalendarToResponse(calendar)

	if req.DayNumber != nil {
		calendar.DayNumber = req.DayNumber
	}
	if req.StartTime != nil {
		calendar.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		calendar.EndTime = req.EndTime
	}
	if req.ProjectID != nil {
		calendar.ProjectID = req.ProjectID
	}
	if !validTimeRange(calendar) {
		return nil, ErrInvalidTimeRange
	}

	if err := u.calendarRepo.Update(ctx, tx, calendar); err != nil {
		u.log.Warnf("Failed to update project calendar: %+v", err)
		return nil, err
	}

	// Audit log - update calendar
	newValue := converter.ProjectCalendarToResponse(calendar)
	if err := u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionCalendarUpdate,
		projectCalendarEntityName, formatID(id), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *projectCalendarUsecase) DeleteCalendar(ctx context.Context, actorID *uuid.UUID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	calendar, err := u.calendarRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find project calendar: %+v", err)
		return err
	}
	if calendar == nil {
		return ErrProjectCalendarNotFound
	}

	if _, err := u.calendarRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete project calendar: %+v", err)
		return err
	}

	// Audit log - delete calendar
	if err := u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionCalendarDelete,
		projectCalendarEntityName, formatID(id), converter.ProjectCalendarToResponse(calendar)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func validTimeRange(calendar *entity.ProjectCalendar) bool {
	if calendar.StartTime == nil || calendar.EndTime == nil {
		return true
	}
	return !calendar.EndTime.Before(*calendar.StartTime)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
