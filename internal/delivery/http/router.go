package http

import (
	"net/http"

	"project-calendar-service/internal/delivery/http/handler"
	"project-calendar-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	calendarHandler *handler.ProjectCalendarHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	calendarHandler *handler.ProjectCalendarHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		calendarHandler: calendarHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Project calendars: queries for any authenticated user, changes for admins
	calendars := api.PathPrefix("/project-calendars").Subrouter()
	calendars.Use(r.authMiddleware.Authenticate)
	calendars.HandleFunc("", r.calendarHandler.GetCalendars).Methods(http.MethodGet)
	calendars.HandleFunc("/count", r.calendarHandler.CountCalendars).Methods(http.MethodGet)
	calendars.HandleFunc("/{id:[0-9]+}", r.calendarHandler.GetCalendar).Methods(http.MethodGet)
	calendars.Handle("", adminOnly(r.calendarHandler.CreateCalendar)).Methods(http.MethodPost)
	calendars.Handle("/{id:[0-9]+}", adminOnly(r.calendarHandler.UpdateCalendar)).Methods(http.MethodPut)
	calendars.Handle("/{id:[0-9]+}", adminOnly(r.calendarHandler.DeleteCalendar)).Methods(http.MethodDelete)

	// Audit trail (admin only)
	auditLogs := api.PathPrefix("/audit-logs").Subrouter()
	auditLogs.Use(r.authMiddleware.Authenticate)
	auditLogs.Use(middleware.RequireAdmin)
	auditLogs.HandleFunc("", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)
	auditLogs.HandleFunc("/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func adminOnly(fn http.HandlerFunc) http.Handler {
	return middleware.RequireAdmin(fn)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
