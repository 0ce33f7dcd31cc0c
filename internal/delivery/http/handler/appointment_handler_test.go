package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-admin-backend/internal/delivery/dto"
	"hospital-admin-backend/internal/domain/entity"
	"hospital-admin-backend/internal/usecase"
	"hospital-admin-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubAppointmentUsecase struct {
	created    *dto.AppointmentResponse
	createErr  error
	got        *dto.AppointmentResponse
	getErr     error
	list       *dto.AppointmentListResponse
	listErr    error
	updated    *dto.AppointmentResponse
	updateErr  error
	lastFilter *entity.AppointmentFilter
	lastStatus entity.AppointmentStatus
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, actorID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.created, s.createErr
}

func (s *stubAppointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return s.got, s.getErr
}

func (s *stubAppointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	s.lastFilter = filter
	return s.list, s.listErr
}

func (s *stubAppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, actorID, id uuid.UUID, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	s.lastStatus = status
	return s.updated, s.updateErr
}

func validCreateRequest() dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		Date:      "2026-09-07",
		Time:      "09:30",
		Type:      "consultation",
	}
}

func TestCreateAppointment(t *testing.T) {
	tests := []struct {
		name       string
		stub       *stubAppointmentUsecase
		wantStatus int
	}{
		{
			name: "created",
			stub: &stubAppointmentUsecase{created: &dto.AppointmentResponse{
				ID:      uuid.New(),
				HumanID: "APT-2026-001",
				Status:  "scheduled",
			}},
			wantStatus: http.StatusCreated,
		},
		{"slot taken", &stubAppointmentUsecase{createErr: usecase.ErrSlotTaken}, http.StatusConflict},
		{"patient missing", &stubAppointmentUsecase{createErr: usecase.ErrPatientNotFound}, http.StatusNotFound},
		{"doctor missing", &stubAppointmentUsecase{createErr: usecase.ErrDoctorNotFound}, http.StatusNotFound},
		{"patient inactive", &stubAppointmentUsecase{createErr: usecase.ErrPatientInactive}, http.StatusBadRequest},
		{"date in the past", &stubAppointmentUsecase{createErr: usecase.ErrDatePast}, http.StatusBadRequest},
		{"bad time", &stubAppointmentUsecase{createErr: usecase.ErrInvalidTime}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(tt.stub, validator.NewValidator())

			payload, _ := json.Marshal(validCreateRequest())
			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(payload))
			req = authedRequest(req, uuid.New(), entity.RoleReceptionist)

			rec := httptest.NewRecorder()
			h.CreateAppointment(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	// Missing required fields must never reach the usecase.
	payload, _ := json.Marshal(dto.CreateAppointmentRequest{Date: "2026-09-07"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(payload))
	req = authedRequest(req, uuid.New(), entity.RoleReceptionist)

	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateAppointmentUnauthenticated(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentUsecase{}, validator.NewValidator())

	payload, _ := json.Marshal(validCreateRequest())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(payload))

	rec := httptest.NewRecorder()
	h.CreateAppointment(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestGetAppointment(t *testing.T) {
	id := uuid.New()
	stub := &stubAppointmentUsecase{got: &dto.AppointmentResponse{ID: id, HumanID: "APT-2026-042"}}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})

	rec := httptest.NewRecorder()
	h.GetAppointment(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	stub = &stubAppointmentUsecase{getErr: usecase.ErrAppointmentNotFound}
	h = NewAppointmentHandler(stub, validator.NewValidator())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})

	rec = httptest.NewRecorder()
	h.GetAppointment(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestListAppointmentsFilter(t *testing.T) {
	doctorID := uuid.New()
	stub := &stubAppointmentUsecase{list: &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/appointments?doctor_id="+doctorID.String()+"&date=2026-09-07&status=scheduled", nil)

	rec := httptest.NewRecorder()
	h.ListAppointments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if stub.lastFilter.DoctorID != doctorID {
		t.Errorf("filter doctor = %s, want %s", stub.lastFilter.DoctorID, doctorID)
	}
	if stub.lastFilter.Date != "2026-09-07" || stub.lastFilter.Status != entity.AppointmentStatusScheduled {
		t.Errorf("unexpected filter: %+v", stub.lastFilter)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/appointments?doctor_id=garbage", nil)
	rec = httptest.NewRecorder()
	h.ListAppointments(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d for bad doctor_id", rec.Code, http.StatusBadRequest)
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		body       string
		stub       *stubAppointmentUsecase
		wantStatus int
	}{
		{
			name:       "confirmed",
			body:       `{"status":"confirmed"}`,
			stub:       &stubAppointmentUsecase{updated: &dto.AppointmentResponse{ID: id, Status: "confirmed"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "transition out of terminal state",
			body:       `{"status":"scheduled"}`,
			stub:       &stubAppointmentUsecase{updateErr: usecase.ErrInvalidTransition},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown status rejected by validation",
			body:       `{"status":"archived"}`,
			stub:       &stubAppointmentUsecase{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "appointment missing",
			body:       `{"status":"cancelled"}`,
			stub:       &stubAppointmentUsecase{updateErr: usecase.ErrAppointmentNotFound},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(tt.stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+id.String()+"/status",
				bytes.NewReader([]byte(tt.body)))
			req = mux.SetURLVars(req, map[string]string{"id": id.String()})
			req = authedRequest(req, uuid.New(), entity.RoleReceptionist)

			rec := httptest.NewRecorder()
			h.UpdateAppointmentStatus(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
