package usecase_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"project-calendar-service/internal/delivery/dto"
	"project-calendar-service/internal/domain/entity"
	"project-calendar-service/internal/repository"
	"project-calendar-service/internal/service"
	"project-calendar-service/internal/testutil"
	"project-calendar-service/internal/usecase"
	"project-calendar-service/pkg/filter"
	"project-calendar-service/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type calendarFixture struct {
	calendars usecase.ProjectCalendarUsecase
	auditLogs usecase.AuditLogUsecase
}

func newCalendarFixture(t *testing.T) calendarFixture {
	t.Helper()

	db := testutil.NewDB(t)
	log := testutil.NewLogger()
	auditRepo := repository.NewAuditLogRepository()
	auditService := service.NewAuditService(log, auditRepo)

	return calendarFixture{
		calendars: usecase.NewProjectCalendarUsecase(db, log, repository.NewProjectCalendarRepository(), auditService),
		auditLogs: usecase.NewAuditLogUsecase(db, log, auditRepo),
	}
}

func auditActions(t *testing.T, uc usecase.AuditLogUsecase, criteria *entity.AuditLogCriteria) []string {
	t.Helper()

	page, err := uc.FindPageByCriteria(context.Background(), criteria, pagination.NewPageRequest(1, 50))
	require.NoError(t, err)

	actions := make([]string, len(page.Content))
	for i, l := range page.Content {
		actions[i] = l.Action
	}
	return actions
}

func TestProjectCalendarUsecase_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newCalendarFixture(t)
	actor := uuid.New()

	created, err := f.calendars.CreateCalendar(ctx, &actor, &dto.CreateProjectCalendarRequest{
		DayNumber: testutil.Ptr(1),
		StartTime: testutil.Ptr(testutil.Hour(8)),
		EndTime:   testutil.Ptr(testutil.Hour(16)),
		ProjectID: testutil.Ptr(int64(7)),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := f.calendars.UpdateCalendar(ctx, &actor, created.ID, &dto.UpdateProjectCalendarRequest{
		DayNumber: testutil.Ptr(2),
	})
	require.NoError(t, err)
	require.Equal(t, 2, *updated.DayNumber)
	require.Equal(t, int64(7), *updated.ProjectID)
	require.True(t, updated.StartTime.Equal(testutil.Hour(8)))

	fetched, err := f.calendars.GetCalendar(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 2, *fetched.DayNumber)

	require.NoError(t, f.calendars.DeleteCalendar(ctx, &actor, created.ID))

	_, err = f.calendars.GetCalendar(ctx, created.ID)
	require.ErrorIs(t, err, usecase.ErrProjectCalendarNotFound)

	require.Equal(t, []string{
		entity.AuditActionCalendarCreate,
		entity.AuditActionCalendarUpdate,
		entity.AuditActionCalendarDelete,
	}, auditActions(t, f.auditLogs, nil))

	byActor := &entity.AuditLogCriteria{UserID: (&filter.UUIDFilter{}).SetEquals(actor)}
	require.Len(t, auditActions(t, f.auditLogs, byActor), 3)

	byAction := &entity.AuditLogCriteria{Action: (&filter.StringFilter{}).SetContains("UPDATE")}
	require.Equal(t, []string{entity.AuditActionCalendarUpdate}, auditActions(t, f.auditLogs, byAction))
}

func TestProjectCalendarUsecase_InvalidTimeRange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newCalendarFixture(t)

	_, err := f.calendars.CreateCalendar(ctx, nil, &dto.CreateProjectCalendarRequest{
		StartTime: testutil.Ptr(testutil.Hour(10)),
		EndTime:   testutil.Ptr(testutil.Hour(9)),
	})
	require.ErrorIs(t, err, usecase.ErrInvalidTimeRange)

	created, err := f.calendars.CreateCalendar(ctx, nil, &dto.CreateProjectCalendarRequest{
		StartTime: testutil.Ptr(testutil.Hour(10)),
		EndTime:   testutil.Ptr(testutil.Hour(12)),
	})
	require.NoError(t, err)

	_, err = f.calendars.UpdateCalendar(ctx, nil, created.ID, &dto.UpdateProjectCalendarRequest{
		EndTime: testutil.Ptr(testutil.Hour(9)),
	})
	require.ErrorIs(t, err, usecase.ErrInvalidTimeRange)

	fetched, err := f.calendars.GetCalendar(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, fetched.EndTime.Equal(testutil.Hour(12)))

	require.Equal(t, []string{entity.AuditActionCalendarCreate}, auditActions(t, f.auditLogs, nil))
}

func TestProjectCalendarUsecase_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newCalendarFixture(t)

	_, err := f.calendars.GetCalendar(ctx, 42)
	require.ErrorIs(t, err, usecase.ErrProjectCalendarNotFound)

	_, err = f.calendars.UpdateCalendar(ctx, nil, 42, &dto.UpdateProjectCalendarRequest{DayNumber: testutil.Ptr(1)})
	require.ErrorIs(t, err, usecase.ErrProjectCalendarNotFound)

	err = f.calendars.DeleteCalendar(ctx, nil, 42)
	require.ErrorIs(t, err, usecase.ErrProjectCalendarNotFound)

	_, err = f.auditLogs.GetAuditLog(ctx, 42)
	require.ErrorIs(t, err, usecase.ErrAuditLogNotFound)
}

func TestAuditLogUsecase_GetAuditLog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newCalendarFixture(t)
	actor := uuid.New()

	created, err := f.calendars.CreateCalendar(ctx, &actor, &dto.CreateProjectCalendarRequest{DayNumber: testutil.Ptr(4)})
	require.NoError(t, err)

	page, err := f.auditLogs.FindPageByCriteria(ctx, nil, pagination.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)

	auditLog, err := f.auditLogs.GetAuditLog(ctx, page.Content[0].ID)
	require.NoError(t, err)
	require.Equal(t, entity.AuditActionCalendarCreate, auditLog.Action)
	require.NotNil(t, auditLog.UserID)
	require.Equal(t, actor, *auditLog.UserID)
	require.Equal(t, "project_calendar", auditLog.Metadata["entity"])
	require.Equal(t, strconv.FormatInt(created.ID, 10), auditLog.Metadata["entity_id"])
}

func TestAuditLogUsecase_FindPageByCriteria(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newCalendarFixture(t)
	alice, bob := uuid.New(), uuid.New()
	hourAgo, hourAhead := time.Now().Add(-time.Hour), time.Now().Add(time.Hour)

	first, err := f.calendars.CreateCalendar(ctx, &alice, &dto.CreateProjectCalendarRequest{DayNumber: testutil.Ptr(1)})
	require.NoError(t, err)
	_, err = f.calendars.UpdateCalendar(ctx, &alice, first.ID, &dto.UpdateProjectCalendarRequest{DayNumber: testutil.Ptr(2)})
	require.NoError(t, err)

	second, err := f.calendars.CreateCalendar(ctx, &bob, &dto.CreateProjectCalendarRequest{DayNumber: testutil.Ptr(3)})
	require.NoError(t, err)
	require.NoError(t, f.calendars.DeleteCalendar(ctx, &bob, second.ID))

	create, update, del := entity.AuditActionCalendarCreate, entity.AuditActionCalendarUpdate, entity.AuditActionCalendarDelete

	testCases := []struct {
		name     string
		criteria *entity.AuditLogCriteria
		expected []string
	}{
		{
			name:     "user equals",
			criteria: &entity.AuditLogCriteria{UserID: (&filter.UUIDFilter{}).SetEquals(alice)},
			expected: []string{create, update},
		},
		{
			name:     "user equals unknown",
			criteria: &entity.AuditLogCriteria{UserID: (&filter.UUIDFilter{}).SetEquals(uuid.New())},
			expected: []string{},
		},
		{
			name:     "user in",
			criteria: &entity.AuditLogCriteria{UserID: (&filter.UUIDFilter{}).SetIn(bob, uuid.New())},
			expected: []string{create, del},
		},
		{
			name:     "created within range",
			criteria: &entity.AuditLogCriteria{CreatedAt: (&filter.InstantFilter{}).SetGreaterThanOrEqual(hourAgo).SetLessThan(hourAhead)},
			expected: []string{create, update, create, del},
		},
		{
			name:     "created before range",
			criteria: &entity.AuditLogCriteria{CreatedAt: (&filter.InstantFilter{}).SetLessThan(hourAgo)},
			expected: []string{},
		},
		{
			name:     "action does not contain",
			criteria: &entity.AuditLogCriteria{Action: (&filter.StringFilter{}).SetDoesNotContain("delete")},
			expected: []string{create, update, create},
		},
		{
			name: "user and action combined",
			criteria: &entity.AuditLogCriteria{
				UserID: (&filter.UUIDFilter{}).SetEquals(bob),
				Action: (&filter.StringFilter{}).SetDoesNotContain("create"),
			},
			expected: []string{del},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, auditActions(t, f.auditLogs, tc.criteria))
		})
	}
}
