package repository

import (
	"context"

	"project-calendar-service/internal/domain/entity"
	"project-calendar-service/pkg/pagination"
	"project-calendar-service/pkg/specification"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error)
	FindPage(ctx context.Context, db *gorm.DB, spec specification.Specification, page pagination.PageRequest) (*pagination.Page[entity.AuditLog], error)
}
