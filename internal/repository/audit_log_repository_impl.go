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

var auditLogSortColumns = map[string]string{
	entity.AuditLogFieldID:        "id",
	entity.AuditLogFieldAction:    "action",
	entity.AuditLogFieldCreatedAt: "created_at",
}

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.WithContext(ctx).First(&log, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *auditLogRepository) FindPage(ctx context.Context, db *gorm.DB, spec specification.Specification, page pagination.PageRequest) (*pagination.Page[entity.AuditLog], error) {
	return findPage[entity.AuditLog](ctx, db, spec, page, auditLogSortColumns, "id")
}
