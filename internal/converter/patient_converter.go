package converter

import (
	"hospital-admin-backend/internal/delivery/dto"
	"hospital-admin-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                    patient.ID,
		HumanID:               patient.HumanID,
		FirstName:             patient.FirstName,
		LastName:              patient.LastName,
		DateOfBirth:           patient.DateOfBirth.Format("2006-01-02"),
		Gender:                patient.Gender,
		Email:                 patient.Email,
		Phone:                 patient.Phone,
		Address:               patient.Address,
		EmergencyContactName:  patient.EmergencyContactName,
		EmergencyContactPhone: patient.EmergencyContactPhone,
		BloodGroup:            patient.BloodGroup,
		Allergies:             patient.Allergies,
		MedicalHistory:        patient.MedicalHistory,
		InsuranceProvider:     patient.InsuranceProvider,
		InsuranceNumber:       patient.InsuranceNumber,
		Status:                string(patient.Status),
		RegisteredAt:          patient.RegisteredAt.Format("2006-01-02"),
		CreatedAt:             patient.CreatedAt,
		UpdatedAt:             patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
