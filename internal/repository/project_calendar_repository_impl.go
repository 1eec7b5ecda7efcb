package repository

import (
	"context"
	"errors"

	"project-calendar-service/internal/domain/entity"
	domainRepo "project-calendar-service/internal/domain/repository"
	"project-calendar-service/pkg/pagination"
	"project-calendar-service/pkg/specification"

	"gorm.io/gorm"
)

var projectCalendarSortColumns = map[string]string{
	entity.ProjectCalendarFieldID:        "id",
	entity.ProjectCalendarFieldDayNumber: "day_number",
	entity.ProjectCalendarFieldStartTime: "start_time",
	entity.ProjectCalendarFieldEndTime:   "end_time",
	entity.ProjectCalendarFieldProjectID: "project_id",
}

type projectCalendarRepository struct{}

func NewProjectCalendarRepository() domainRepo.ProjectCalendarRepository {
	return &projectCalendarRepository{}
}

func (r *projectCalendarRepository) Create(ctx context.Context, db *gorm.DB, calendar *entity.ProjectCalendar) error {
	return db.WithContext(ctx).Create(calendar).Error
}

func (r *projectCalendarRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.ProjectCalendar, error) {
	var calendar entity.ProjectCalendar
	err := db.WithContext(ctx).Where("id = ?", id).First(&calendar).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &calendar, nil
}

func (r *projectCalendarRepository) Update(ctx context.Context, db *gorm.DB, calendar *entity.ProjectCalendar) error {
	return db.WithContext(ctx).Save(calendar).Error
}

func (r *projectCalendarRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ProjectCalendar{})
	return result.RowsAffected, result.Error
}

// FindAll returns every calendar matching spec in storage order.
func (r *projectCalendarRepository) FindAll(ctx context.Context, db *gorm.DB, spec specification.Specification) ([]entity.ProjectCalendar, error) {
	var calendars []entity.ProjectCalendar
	err := db.WithContext(ctx).Scopes(spec.Scope()).Find(&calendars).Error
	if err != nil {
		return nil, err
	}
	return calendars, nil
}

func (r *projectCalendarRepository) FindPage(ctx context.Context, db *gorm.DB, spec specification.Specification, page pagination.PageRequest) (*pagination.Page[entity.ProjectCalendar], error) {
	return findPage[entity.ProjectCalendar](ctx, db, spec, page, projectCalendarSortColumns, "id")
}

func (r *projectCalendarRepository) Count(ctx context.Context, db *gorm.DB, spec specification.Specification) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.ProjectCalendar{}).Scopes(spec.Scope()).Count(&total).Error
	return total, err
}
