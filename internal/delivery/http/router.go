package http

import (
	"net/http"

	"hospital-admin-backend/internal/delivery/http/handler"
	"hospital-admin-backend/internal/delivery/http/middleware"
	"hospital-admin-backend/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	patientHandler       *handler.PatientHandler
	appointmentHandler   *handler.AppointmentHandler
	availabilityHandler  *handler.AvailabilityHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	medicationHandler    *handler.MedicationHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	medicationHandler *handler.MedicationHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		userHandler:          userHandler,
		patientHandler:       patientHandler,
		appointmentHandler:   appointmentHandler,
		availabilityHandler:  availabilityHandler,
		medicalRecordHandler: medicalRecordHandler,
		medicationHandler:    medicationHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// User management (admin only)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireCapability(entity.CapManageUsers))
	users.HandleFunc("", r.userHandler.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("", r.userHandler.ListUsers).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	users.HandleFunc("/{id}/active", r.userHandler.SetUserActive).Methods(http.MethodPatch)

	// Doctor directory and availability. Reads need the appointment view
	// capability; the availability matrix edit is gated separately.
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)

	doctorReads := doctors.NewRoute().Subrouter()
	doctorReads.Use(middleware.RequireCapability(entity.CapViewAppointments))
	doctorReads.HandleFunc("", r.userHandler.ListDoctors).Methods(http.MethodGet)
	doctorReads.HandleFunc("/{id}/slots", r.availabilityHandler.GetAvailableSlots).Methods(http.MethodGet)
	doctorReads.HandleFunc("/{id}/availability", r.availabilityHandler.GetWeeklyAvailability).Methods(http.MethodGet)

	doctorWrites := doctors.NewRoute().Subrouter()
	doctorWrites.Use(middleware.RequireCapability(entity.CapManageAvailability))
	doctorWrites.HandleFunc("/{id}/availability", r.availabilityHandler.ReplaceWeeklyAvailability).Methods(http.MethodPut)

	// Patients
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)

	patientReads := patients.NewRoute().Subrouter()
	patientReads.Use(middleware.RequireCapability(entity.CapViewPatients))
	patientReads.HandleFunc("", r.patientHandler.ListPatients).Methods(http.MethodGet)
	patientReads.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	patientWrites := patients.NewRoute().Subrouter()
	patientWrites.Use(middleware.RequireCapability(entity.CapManagePatients))
	patientWrites.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)

	patientRegistrations := patients.NewRoute().Subrouter()
	patientRegistrations.Use(middleware.RequireCapability(entity.CapRegisterPatients))
	patientRegistrations.HandleFunc("", r.patientHandler.RegisterPatient).Methods(http.MethodPost)

	patientDeletes := patients.NewRoute().Subrouter()
	patientDeletes.Use(middleware.RequireCapability(entity.CapDeletePatients))
	patientDeletes.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Appointments
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)

	appointmentReads := appointments.NewRoute().Subrouter()
	appointmentReads.Use(middleware.RequireCapability(entity.CapViewAppointments))
	appointmentReads.HandleFunc("", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	appointmentReads.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	appointmentWrites := appointments.NewRoute().Subrouter()
	appointmentWrites.Use(middleware.RequireCapability(entity.CapBookAppointments))
	appointmentWrites.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)

	// Status changes are clinical as much as clerical: the doctor seeing the
	// patient confirms, completes, or marks no-show, so the transition gate is
	// wider than the booking gate.
	appointmentTransitions := appointments.NewRoute().Subrouter()
	appointmentTransitions.Use(middleware.RequireCapability(entity.CapTransitionAppointments))
	appointmentTransitions.HandleFunc("/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Medical records
	records := api.PathPrefix("/medical-records").Subrouter()
	records.Use(r.authMiddleware.Authenticate)

	recordReads := records.NewRoute().Subrouter()
	recordReads.Use(middleware.RequireCapability(entity.CapViewRecords))
	recordReads.HandleFunc("", r.medicalRecordHandler.ListRecords).Methods(http.MethodGet)
	recordReads.HandleFunc("/{id}", r.medicalRecordHandler.GetRecord).Methods(http.MethodGet)
	recordReads.HandleFunc("/{id}/prescriptions", r.medicalRecordHandler.ListPrescriptions).Methods(http.MethodGet)
	recordReads.HandleFunc("/{id}/lab-results", r.medicalRecordHandler.ListLabResults).Methods(http.MethodGet)

	recordWrites := records.NewRoute().Subrouter()
	recordWrites.Use(middleware.RequireCapability(entity.CapWriteRecords))
	recordWrites.HandleFunc("", r.medicalRecordHandler.CreateRecord).Methods(http.MethodPost)
	recordWrites.HandleFunc("/{id}", r.medicalRecordHandler.UpdateRecord).Methods(http.MethodPut)
	recordWrites.HandleFunc("/{id}/prescriptions", r.medicalRecordHandler.AddPrescription).Methods(http.MethodPost)
	recordWrites.HandleFunc("/{id}/lab-results", r.medicalRecordHandler.AddLabResult).Methods(http.MethodPost)

	// Medication catalog
	medications := api.PathPrefix("/medications").Subrouter()
	medications.Use(r.authMiddleware.Authenticate)

	medicationReads := medications.NewRoute().Subrouter()
	medicationReads.Use(middleware.RequireCapability(entity.CapViewMedications))
	medicationReads.HandleFunc("", r.medicationHandler.ListMedications).Methods(http.MethodGet)
	medicationReads.HandleFunc("/{id}", r.medicationHandler.GetMedication).Methods(http.MethodGet)

	medicationWrites := medications.NewRoute().Subrouter()
	medicationWrites.Use(middleware.RequireCapability(entity.CapManageMedications))
	medicationWrites.HandleFunc("", r.medicationHandler.CreateMedication).Methods(http.MethodPost)
	medicationWrites.HandleFunc("/{id}", r.medicationHandler.UpdateMedication).Methods(http.MethodPut)

	// Audit trail (admin only)
	audit := api.PathPrefix("/audit-logs").Subrouter()
	audit.Use(r.authMiddleware.Authenticate)
	audit.Use(middleware.RequireCapability(entity.CapViewAuditLogs))
	audit.HandleFunc("", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
