package converter

import (
	"hospital-admin-backend/internal/delivery/dto"
	"hospital-admin-backend/internal/domain/entity"
)

// MedicationToResponse converts a Medication entity to MedicationResponse DTO
func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	return &dto.MedicationResponse{
		ID:           medication.ID,
		Name:         medication.Name,
		Form:         medication.Form,
		Strength:     medication.Strength,
		Manufacturer: medication.Manufacturer,
		IsActive:     medication.IsActive,
		CreatedAt:    medication.CreatedAt,
		UpdatedAt:    medication.UpdatedAt,
	}
}

// MedicationsToResponses converts a slice of Medication entities to DTOs
func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i, medication := range medications {
		resp := MedicationToResponse(&medication)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
