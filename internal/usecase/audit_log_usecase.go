package usecase

import (
	"context"
	"errors"

	"project-calendar-service/internal/converter"
	"project-calendar-service/internal/delivery/dto"
	"project-calendar-service/internal/domain/entity"
	"project-calendar-service/internal/domain/repository"
	"project-calendar-service/pkg/pagination"
	"project-calendar-service/pkg/specification"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	FindPageByCriteria(ctx context.Context, criteria *entity.AuditLogCriteria, page pagination.PageRequest) (*pagination.Page[dto.AuditLogResponse], error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

// AuditLogSpecification converts criteria into a specification requiring every supplied filter.
func AuditLogSpecification(criteria *entity.AuditLogCriteria) specification.Specification {
	spec := specification.Where()
	if criteria == nil {
		return spec
	}
	return spec.
		AndSpec(specification.BuildRangeSpecification(criteria.ID, "id")).
		AndSpec(specification.BuildStringSpecification(criteria.Action, "action")).
		AndSpec(specification.BuildSpecification(criteria.UserID, "user_id")).
		AndSpec(specification.BuildRangeSpecification(criteria.CreatedAt, "created_at"))
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) FindPageByCriteria(ctx context.Context, criteria *entity.AuditLogCriteria, page pagination.PageRequest) (*pagination.Page[dto.AuditLogResponse], error) {
	u.log.Debugf("Find audit logs by criteria: %s, page: %s", criteria, page)
	spec := AuditLogSpecification(criteria)

	var result *pagination.Page[entity.AuditLog]
	err := readOnly(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		result, err = u.auditLogRepo.FindPage(ctx, tx, spec, page)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return pagination.Map(result, func(l entity.AuditLog) dto.AuditLogResponse {
		return *converter.AuditLogToResponse(&l)
	}), nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
