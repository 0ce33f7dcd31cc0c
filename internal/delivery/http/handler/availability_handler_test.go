package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-admin-backend/internal/delivery/dto"
	"hospital-admin-backend/internal/delivery/http/middleware"
	"hospital-admin-backend/internal/domain/entity"
	"hospital-admin-backend/internal/usecase"
	"hospital-admin-backend/pkg/response"
	"hospital-admin-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubAvailabilityUsecase struct {
	slots       *dto.AvailableSlotsResponse
	slotsErr    error
	weekly      *dto.WeeklyAvailabilityResponse
	weeklyErr   error
	replaced    *dto.WeeklyAvailabilityResponse
	replaceErr  error
	lastDoctor  uuid.UUID
	lastDate    string
	lastReplace *dto.ReplaceWeeklyAvailabilityRequest
}

func (s *stubAvailabilityUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	s.lastDoctor = doctorID
	s.lastDate = date
	return s.slots, s.slotsErr
}

func (s *stubAvailabilityUsecase) GetWeeklyAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.WeeklyAvailabilityResponse, error) {
	s.lastDoctor = doctorID
	return s.weekly, s.weeklyErr
}

func (s *stubAvailabilityUsecase) ReplaceWeeklyAvailability(ctx context.Context, actorID, doctorID uuid.UUID, req *dto.ReplaceWeeklyAvailabilityRequest) (*dto.WeeklyAvailabilityResponse, error) {
	s.lastDoctor = doctorID
	s.lastReplace = req
	return s.replaced, s.replaceErr
}

func authedRequest(req *http.Request, userID uuid.UUID, role entity.Role) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UserRoleKey, role)
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return envelope
}

func TestGetAvailableSlots(t *testing.T) {
	doctorID := uuid.New()

	tests := []struct {
		name       string
		doctorVar  string
		date       string
		stub       *stubAvailabilityUsecase
		wantStatus int
	}{
		{
			name:      "happy path",
			doctorVar: doctorID.String(),
			date:      "2026-09-07",
			stub: &stubAvailabilityUsecase{slots: &dto.AvailableSlotsResponse{
				DoctorID:    doctorID,
				Date:        "2026-09-07",
				SlotMinutes: 30,
				Slots:       []string{"09:00", "09:30", "10:00"},
				Total:       3,
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid date",
			doctorVar:  doctorID.String(),
			date:       "07-09-2026",
			stub:       &stubAvailabilityUsecase{slotsErr: usecase.ErrInvalidDate},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "doctor not found",
			doctorVar:  doctorID.String(),
			date:       "2026-09-07",
			stub:       &stubAvailabilityUsecase{slotsErr: usecase.ErrDoctorNotFound},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing date parameter",
			doctorVar:  doctorID.String(),
			date:       "",
			stub:       &stubAvailabilityUsecase{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid doctor id",
			doctorVar:  "not-a-uuid",
			date:       "2026-09-07",
			stub:       &stubAvailabilityUsecase{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAvailabilityHandler(tt.stub, validator.NewValidator())

			url := "/api/v1/doctors/" + tt.doctorVar + "/slots"
			if tt.date != "" {
				url += "?date=" + tt.date
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.doctorVar})

			rec := httptest.NewRecorder()
			h.GetAvailableSlots(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				envelope := decodeEnvelope(t, rec)
				if !envelope.Success {
					t.Error("success = false on a 200 response")
				}
				if tt.stub.lastDate != tt.date {
					t.Errorf("usecase received date %q, want %q", tt.stub.lastDate, tt.date)
				}
			}
		})
	}
}

func TestGetWeeklyAvailability(t *testing.T) {
	doctorID := uuid.New()
	week := make([]dto.AvailabilityWindowResponse, 7)
	for day := range week {
		week[day] = dto.AvailabilityWindowResponse{DayOfWeek: day, StartTime: "09:00", EndTime: "17:00"}
	}

	stub := &stubAvailabilityUsecase{weekly: &dto.WeeklyAvailabilityResponse{DoctorID: doctorID, Windows: week}}
	h := NewAvailabilityHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/"+doctorID.String()+"/availability", nil)
	req = mux.SetURLVars(req, map[string]string{"id": doctorID.String()})

	rec := httptest.NewRecorder()
	h.GetWeeklyAvailability(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var envelope struct {
		Data dto.WeeklyAvailabilityResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if len(envelope.Data.Windows) != 7 {
		t.Errorf("got %d windows, want 7", len(envelope.Data.Windows))
	}
}

func TestReplaceWeeklyAvailabilityOwnership(t *testing.T) {
	ownID := uuid.New()
	otherID := uuid.New()

	body := dto.ReplaceWeeklyAvailabilityRequest{
		Windows: []dto.AvailabilityWindowRequest{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsEnabled: true},
		},
	}
	payload, _ := json.Marshal(body)

	tests := []struct {
		name       string
		actor      uuid.UUID
		role       entity.Role
		target     uuid.UUID
		wantStatus int
	}{
		{"doctor edits own matrix", ownID, entity.RoleDoctor, ownID, http.StatusOK},
		{"doctor edits someone else", ownID, entity.RoleDoctor, otherID, http.StatusForbidden},
		{"admin edits anyone", ownID, entity.RoleAdmin, otherID, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAvailabilityUsecase{replaced: &dto.WeeklyAvailabilityResponse{DoctorID: tt.target}}
			h := NewAvailabilityHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPut, "/api/v1/doctors/"+tt.target.String()+"/availability", bytes.NewReader(payload))
			req = mux.SetURLVars(req, map[string]string{"id": tt.target.String()})
			req = authedRequest(req, tt.actor, tt.role)

			rec := httptest.NewRecorder()
			h.ReplaceWeeklyAvailability(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusForbidden && stub.lastReplace != nil {
				t.Error("usecase reached despite ownership rejection")
			}
		})
	}
}

func TestReplaceWeeklyAvailabilityErrors(t *testing.T) {
	doctorID := uuid.New()
	body := dto.ReplaceWeeklyAvailabilityRequest{
		Windows: []dto.AvailabilityWindowRequest{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsEnabled: true},
		},
	}
	payload, _ := json.Marshal(body)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate day", usecase.ErrDuplicateDay, http.StatusBadRequest},
		{"bad clock", entity.ErrInvalidClock, http.StatusBadRequest},
		{"inverted range", entity.ErrInvalidTimeRange, http.StatusBadRequest},
		{"doctor missing", usecase.ErrDoctorNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAvailabilityUsecase{replaceErr: tt.err}
			h := NewAvailabilityHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPut, "/api/v1/doctors/"+doctorID.String()+"/availability", bytes.NewReader(payload))
			req = mux.SetURLVars(req, map[string]string{"id": doctorID.String()})
			req = authedRequest(req, doctorID, entity.RoleDoctor)

			rec := httptest.NewRecorder()
			h.ReplaceWeeklyAvailability(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
