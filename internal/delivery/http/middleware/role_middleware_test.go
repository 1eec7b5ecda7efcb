package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-calendar-service/internal/delivery/http/middleware"
	"project-calendar-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		ctx      context.Context
		expected int
	}{
		{name: "admin", ctx: context.WithValue(context.Background(), middleware.RoleIDKey, entity.RoleIDAdmin), expected: http.StatusNoContent},
		{name: "user", ctx: context.WithValue(context.Background(), middleware.RoleIDKey, entity.RoleIDUser), expected: http.StatusForbidden},
		{name: "no role", ctx: context.Background(), expected: http.StatusUnauthorized},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(tc.ctx)
			rec := httptest.NewRecorder()
			middleware.RequireAdmin(next).ServeHTTP(rec, req)
			require.Equal(t, tc.expected, rec.Code)
		})
	}
}

func TestActorFromContext(t *testing.T) {
	t.Parallel()

	require.Nil(t, middleware.ActorFromContext(context.Background()))

	userID := uuid.New()
	actor := middleware.ActorFromContext(context.WithValue(context.Background(), middleware.UserIDKey, userID))
	require.NotNil(t, actor)
	require.Equal(t, userID, *actor)
}
