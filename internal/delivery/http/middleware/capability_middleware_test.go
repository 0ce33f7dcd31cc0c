package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-admin-backend/internal/domain/entity"
)

func requestWithRole(role entity.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireCapability(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		capability entity.Capability
		wantStatus int
	}{
		{"receptionist may book", entity.RoleReceptionist, entity.CapBookAppointments, http.StatusOK},
		{"doctor may transition status", entity.RoleDoctor, entity.CapTransitionAppointments, http.StatusOK},
		{"doctor may not book", entity.RoleDoctor, entity.CapBookAppointments, http.StatusForbidden},
		{"doctor may write records", entity.RoleDoctor, entity.CapWriteRecords, http.StatusOK},
		{"nurse may not write records", entity.RoleNurse, entity.CapWriteRecords, http.StatusForbidden},
		{"nurse may not register patients", entity.RoleNurse, entity.CapRegisterPatients, http.StatusForbidden},
		{"receptionist may register patients", entity.RoleReceptionist, entity.CapRegisterPatients, http.StatusOK},
		{"receptionist may not delete patients", entity.RoleReceptionist, entity.CapDeletePatients, http.StatusForbidden},
		{"admin may delete patients", entity.RoleAdmin, entity.CapDeletePatients, http.StatusOK},
		{"pharmacist may not view patients", entity.RolePharmacist, entity.CapViewPatients, http.StatusForbidden},
		{"admin may not read records", entity.RoleAdmin, entity.CapViewRecords, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireCapability(tt.capability)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWithRole(tt.role))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if wantCalled := tt.wantStatus == http.StatusOK; called != wantCalled {
				t.Errorf("handler called = %v, want %v", called, wantCalled)
			}
		})
	}
}

func TestRequireCapabilityMissingRole(t *testing.T) {
	handler := RequireCapability(entity.CapViewPatients)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a role in context")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
