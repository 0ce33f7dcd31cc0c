package entity

// Role is the closed set of staff roles. Roles are compile-time constants,
// not database rows, so the capability table below is statically checkable.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RolePharmacist   Role = "pharmacist"
)

// AllRoles lists every valid role, in display order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePharmacist}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePharmacist:
		return true
	}
	return false
}

// Capability names a guarded operation group.
type Capability string

const (
	CapViewPatients           Capability = "patients.view"
	CapManagePatients         Capability = "patients.manage"
	CapRegisterPatients       Capability = "patients.register"
	CapDeletePatients         Capability = "patients.delete"
	CapViewAppointments       Capability = "appointments.view"
	CapBookAppointments       Capability = "appointments.book"
	CapTransitionAppointments Capability = "appointments.transition"
	CapManageAvailability     Capability = "availability.manage"
	CapViewRecords            Capability = "records.view"
	CapWriteRecords           Capability = "records.write"
	CapViewMedications        Capability = "medications.view"
	CapManageMedications      Capability = "medications.manage"
	CapManageUsers            Capability = "users.manage"
	CapViewAuditLogs          Capability = "audit.view"
)

// roleCapabilities is the static capability table. Admin holds every
// administrative capability but not the clinical record ones: chart access
// stays with clinical staff. Patient registration belongs to the front desk
// and admin; hard delete is admin only.
var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapViewPatients, CapManagePatients, CapRegisterPatients, CapDeletePatients,
		CapViewAppointments, CapBookAppointments, CapTransitionAppointments,
		CapManageAvailability,
		CapViewMedications, CapManageMedications,
		CapManageUsers, CapViewAuditLogs,
	},
	RoleDoctor: {
		CapViewPatients, CapManagePatients,
		CapViewAppointments, CapTransitionAppointments,
		CapManageAvailability,
		CapViewRecords, CapWriteRecords,
		CapViewMedications,
	},
	RoleNurse: {
		CapViewPatients, CapManagePatients,
		CapViewAppointments, CapTransitionAppointments,
		CapViewRecords,
		CapViewMedications,
	},
	RoleReceptionist: {
		CapViewPatients, CapManagePatients, CapRegisterPatients,
		CapViewAppointments, CapBookAppointments, CapTransitionAppointments,
		CapViewRecords,
	},
	RolePharmacist: {
		CapViewMedications, CapManageMedications,
	},
}

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}
