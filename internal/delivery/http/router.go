package http

import (
	"net/http"

	"hospital-management-system/internal/delivery/http/handler"
	"hospital-management-system/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	billHandler        *handler.BillHandler
	profileHandler     *handler.ProfileHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	billHandler *handler.BillHandler,
	profileHandler *handler.ProfileHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		billHandler:        billHandler,
		profileHandler:     profileHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Public doctor directory
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)

	// Doctor management (admin only)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Use(middleware.RequireAdmin)
	doctors.HandleFunc("", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	doctors.HandleFunc("/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patient listing for doctors, registered before the admin routes so
	// "/for-doctor" is matched ahead of the "/{id}" pattern
	patientsDoctor := api.PathPrefix("/patients").Subrouter()
	patientsDoctor.Use(r.authMiddleware.Authenticate)
	patientsDoctor.Use(middleware.RequireDoctor)
	patientsDoctor.HandleFunc("/for-doctor", r.patientHandler.ListPatientsForDoctor).Methods(http.MethodGet)

	// Patient management (admin only)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireAdmin)
	patients.HandleFunc("", r.patientHandler.ListPatients).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Appointment booking and listing (patient)
	appointmentsPatient := api.PathPrefix("/appointments").Subrouter()
	appointmentsPatient.Use(r.authMiddleware.Authenticate)
	appointmentsPatient.Use(middleware.RequirePatient)
	appointmentsPatient.HandleFunc("/my", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	appointmentsPatient.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)

	// Appointment listing and status transitions (doctor, admin)
	appointmentsDoctor := api.PathPrefix("/appointments").Subrouter()
	appointmentsDoctor.Use(r.authMiddleware.Authenticate)
	appointmentsDoctor.Use(middleware.RequireDoctor)
	appointmentsDoctor.HandleFunc("/for-me", r.appointmentHandler.GetAppointmentsForMe).Methods(http.MethodGet)

	appointmentsStatus := api.PathPrefix("/appointments").Subrouter()
	appointmentsStatus.Use(r.authMiddleware.Authenticate)
	appointmentsStatus.Use(middleware.RequireDoctorOrAdmin)
	appointmentsStatus.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)

	// Profile self-service (any authenticated role)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("/me", r.profileHandler.GetOwnProfile).Methods(http.MethodGet)
	profile.HandleFunc("/me", r.profileHandler.UpdateOwnProfile).Methods(http.MethodPut)

	// Bills (patient only)
	bills := api.PathPrefix("/bills").Subrouter()
	bills.Use(r.authMiddleware.Authenticate)
	bills.Use(middleware.RequirePatient)
	bills.HandleFunc("/my-bills", r.billHandler.GetMyBills).Methods(http.MethodGet)

	// Audit trail (admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
