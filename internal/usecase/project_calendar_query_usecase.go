package usecase

import (
	"context"

	"project-calendar-service/internal/converter"
	"project-calendar-service/internal/delivery/dto"
	"project-calendar-service/internal/domain/entity"
	"project-calendar-service/internal/domain/repository"
	"project-calendar-service/pkg/pagination"
	"project-calendar-service/pkg/specification"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProjectCalendarQueryUsecase runs ProjectCalendarCriteria against the database.
// All filters of a criteria must hold for a calendar to match.
type ProjectCalendarQueryUsecase interface {
	FindByCriteria(ctx context.Context, criteria *entity.ProjectCalendarCriteria) ([]dto.ProjectCalendarResponse, error)
	FindPageByCriteria(ctx context.Context, criteria *entity.ProjectCalendarCriteria, page pagination.PageRequest) (*pagination.Page[dto.ProjectCalendarResponse], error)
	CountByCriteria(ctx context.Context, criteria *entity.ProjectCalendarCriteria) (int64, error)
}

type projectCalendarField struct {
	name  string
	build func(c *entity.ProjectCalendarCriteria) specification.Specification
}

// projectCalendarFields is applied in order, one entry per queryable attribute.
var projectCalendarFields = []projectCalendarField{
	{
		name: entity.ProjectCalendarFieldID,
		build: func(c *entity.ProjectCalendarCriteria) specification.Specification {
			return specification.BuildRangeSpecification(c.ID, "id")
		},
	},
	{
		name: entity.ProjectCalendarFieldDayNumber,
		build: func(c *entity.ProjectCalendarCriteria) specification.Specification {
			return specification.BuildRangeSpecification(c.DayNumber, "day_number")
		},
	},
	{
		name: entity.ProjectCalendarFieldStartTime,
		build: func(c *entity.ProjectCalendarCriteria) specification.Specification {
			return specification.BuildRangeSpecification(c.StartTime, "start_time")
		},
	},
	{
		name: entity.ProjectCalendarFieldEndTime,
		build: func(c *entity.ProjectCalendarCriteria) specification.Specification {
			return specification.BuildRangeSpecification(c.EndTime, "end_time")
		},
	},
	{
		name: entity.ProjectCalendarFieldProjectID,
		build: func(c *entity.ProjectCalendarCriteria) specification.Specification {
			return specification.BuildRangeSpecification(c.ProjectID, "project_id")
		},
	},
}

// ProjectCalendarCriteriaFields lists the logical names of the queryable attributes.
func ProjectCalendarCriteriaFields() []string {
	names := make([]string, len(projectCalendarFields))
	for i, field := range projectCalendarFields {
		names[i] = field.name
	}
	return names
}

// ProjectCalendarSpecification converts criteria into a specification requiring every supplied filter.
// A nil criteria matches every calendar.
func ProjectCalendarSpecification(criteria *entity.ProjectCalendarCriteria) specification.Specification {
	spec := specification.Where()
	if criteria == nil {
		return spec
	}
	for _, field := range projectCalendarFields {
		spec = spec.AndSpec(field.build(criteria))
	}
	return spec
}

type projectCalendarQueryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	calendarRepo repository.ProjectCalendarRepository
}

func NewProjectCalendarQueryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	calendarRepo repository.ProjectCalendarRepository,
) ProjectCalendarQueryUsecase {
	return &projectCalendarQueryUsecase{
		db:           db,
		log:          log,
		calendarRepo: calendarRepo,
	}
}

func (u *projectCalendarQueryUsecase) FindByCriteria(ctx context.Context, criteria *entity.ProjectCalendarCriteria) ([]dto.ProjectCalendarResponse, error) {
	u.log.Debugf("Find by criteria: %s", criteria)
	spec := ProjectCalendarSpecification(criteria)

	var calendars []entity.ProjectCalendar
	err := readOnly(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		calendars, err = u.calendarRepo.FindAll(ctx, tx, spec)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find project calendars by criteria: %+v", err)
		return nil, err
	}

	return converter.ProjectCalendarsToResponses(calendars), nil
}

func (u *projectCalendarQueryUsecase) FindPageByCriteria(ctx context.Context, criteria *entity.ProjectCalendarCriteria, page pagination.PageRequest) (*pagination.Page[dto.ProjectCalendarResponse], error) {
	u.log.Debugf("Find by criteria: %s, page: %s", criteria, page)
	spec := ProjectCalendarSpecification(criteria)

	var result *pagination.Page[entity.ProjectCalendar]
	err := readOnly(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		result, err = u.calendarRepo.FindPage(ctx, tx, spec, page)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find project calendar page by criteria: %+v", err)
		return nil, err
	}

	return pagination.Map(result, func(c entity.ProjectCalendar) dto.ProjectCalendarResponse {
		return *converter.ProjectCalendarToResponse(&c)
	}), nil
}

func (u *projectCalendarQueryUsecase) CountByCriteria(ctx context.Context, criteria *entity.ProjectCalendarCriteria) (int64, error) {
	u.log.Debugf("Count by criteria: %s", criteria)
	spec := ProjectCalendarSpecification(criteria)

	var total int64
	err := readOnly(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		total, err = u.calendarRepo.Count(ctx, tx, spec)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to count project calendars by criteria: %+v", err)
		return 0, err
	}

	return total, nil
}
