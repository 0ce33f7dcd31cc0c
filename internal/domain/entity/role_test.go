package entity

import "testing"

func TestRoleIsValid(t *testing.T) {
	for _, r := range AllRoles() {
		if !r.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", r)
		}
	}
	for _, r := range []Role{"", "patient", "Admin", "superuser"} {
		if r.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", r)
		}
	}
}

func TestRoleCan(t *testing.T) {
	tests := []struct {
		role Role
		cap  Capability
		want bool
	}{
		{RoleAdmin, CapManageUsers, true},
		{RoleAdmin, CapViewAuditLogs, true},
		{RoleAdmin, CapManagePatients, true},
		{RoleAdmin, CapRegisterPatients, true},
		{RoleAdmin, CapDeletePatients, true},
		{RoleAdmin, CapTransitionAppointments, true},
		// Chart access stays with clinical staff.
		{RoleAdmin, CapViewRecords, false},
		{RoleAdmin, CapWriteRecords, false},

		{RoleDoctor, CapManageAvailability, true},
		{RoleDoctor, CapWriteRecords, true},
		{RoleDoctor, CapViewRecords, true},
		{RoleDoctor, CapTransitionAppointments, true},
		{RoleDoctor, CapBookAppointments, false},
		{RoleDoctor, CapRegisterPatients, false},
		{RoleDoctor, CapDeletePatients, false},
		{RoleDoctor, CapManageUsers, false},

		{RoleNurse, CapViewRecords, true},
		{RoleNurse, CapViewPatients, true},
		{RoleNurse, CapTransitionAppointments, true},
		{RoleNurse, CapWriteRecords, false},
		{RoleNurse, CapBookAppointments, false},
		{RoleNurse, CapRegisterPatients, false},
		{RoleNurse, CapDeletePatients, false},

		{RoleReceptionist, CapBookAppointments, true},
		{RoleReceptionist, CapTransitionAppointments, true},
		{RoleReceptionist, CapRegisterPatients, true},
		{RoleReceptionist, CapViewRecords, true},
		{RoleReceptionist, CapDeletePatients, false},
		{RoleReceptionist, CapWriteRecords, false},
		{RoleReceptionist, CapManageAvailability, false},
		{RoleReceptionist, CapViewAuditLogs, false},

		{RolePharmacist, CapViewMedications, true},
		{RolePharmacist, CapManageMedications, true},
		{RolePharmacist, CapViewPatients, false},
		{RolePharmacist, CapViewAppointments, false},

		{Role("unknown"), CapViewPatients, false},
		{Role(""), CapViewMedications, false},
	}

	for _, tt := range tests {
		if got := tt.role.Can(tt.cap); got != tt.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tt.role, tt.cap, got, tt.want)
		}
	}
}

func TestAllRoles(t *testing.T) {
	roles := AllRoles()
	if len(roles) != 5 {
		t.Fatalf("AllRoles() returned %d roles, want 5", len(roles))
	}
	seen := make(map[Role]bool, len(roles))
	for _, r := range roles {
		if seen[r] {
			t.Errorf("AllRoles() lists %s twice", r)
		}
		seen[r] = true
		if _, ok := roleCapabilities[r]; !ok {
			t.Errorf("role %s has no capability entry", r)
		}
	}
}
