package repository

import (
	"context"

	"project-calendar-service/internal/domain/entity"
	"project-calendar-service/pkg/pagination"
	"project-calendar-service/pkg/specification"

	"gorm.io/gorm"
)

type ProjectCalendarRepository interface {
	Create(ctx context.Context, db *gorm.DB, calendar *entity.ProjectCalendar) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.ProjectCalendar, error)
	Update(ctx context.Context, db *gorm.DB, calendar *entity.ProjectCalendar) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)

	FindAll(ctx context.Context, db *gorm.DB, spec specification.Specification) ([]entity.ProjectCalendar, error)
	FindPage(ctx context.Context, db *gorm.DB, spec specification.Specification, page pagination.PageRequest) (*pagination.Page[entity.ProjectCalendar], error)
	Count(ctx context.Context, db *gorm.DB, spec specification.Specification) (int64, error)
}
