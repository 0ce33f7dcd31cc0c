package converter

import (
	"github.com/google/uuid"

	"hospital-admin-backend/internal/delivery/dto"
	"hospital-admin-backend/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:                record.ID,
		HumanID:           record.HumanID,
		PatientID:         record.PatientID,
		DoctorID:          record.DoctorID,
		VisitDate:         record.VisitDate.Format("2006-01-02"),
		VisitType:         record.VisitType,
		ChiefComplaint:    record.ChiefComplaint,
		Diagnosis:         record.Diagnosis,
		TreatmentPlan:     record.TreatmentPlan,
		Notes:             record.Notes,
		VitalSigns:        map[string]interface{}(record.VitalSigns),
		Version:           record.Version,
		PreviousVersionID: record.PreviousVersionID,
		CreatedBy:         record.CreatedBy,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}

	// Include related records if preloaded
	if record.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&record.Patient)
	}
	if record.Doctor.ID != uuid.Nil {
		response.Doctor = UserToResponse(&record.Doctor)
	}
	if len(record.Prescriptions) > 0 {
		response.Prescriptions = PrescriptionsToResponses(record.Prescriptions)
	}
	if len(record.LabResults) > 0 {
		response.LabResults = LabResultsToResponses(record.LabResults)
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		resp := MedicalRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PrescriptionToResponse converts a Prescription entity to its DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:             prescription.ID,
		MedicationName: prescription.MedicationName,
		Dosage:         prescription.Dosage,
		Frequency:      prescription.Frequency,
		Duration:       prescription.Duration,
		Instructions:   prescription.Instructions,
		PrescribedBy:   prescription.PrescribedBy,
		PrescribedAt:   prescription.PrescribedAt,
	}
}

// PrescriptionsToResponses converts a slice of Prescription entities to DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		resp := PrescriptionToResponse(&prescription)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// LabResultToResponse converts a LabResult entity to its DTO
func LabResultToResponse(result *entity.LabResult) *dto.LabResultResponse {
	if result == nil {
		return nil
	}

	return &dto.LabResultResponse{
		ID:         result.ID,
		TestName:   result.TestName,
		TestResult: result.TestResult,
		TestDate:   result.TestDate.Format("2006-01-02"),
		LabName:    result.LabName,
		FilePath:   result.FilePath,
		UploadedAt: result.UploadedAt,
	}
}

// LabResultsToResponses converts a slice of LabResult entities to DTOs
func LabResultsToResponses(results []entity.LabResult) []dto.LabResultResponse {
	responses := make([]dto.LabResultResponse, len(results))
	for i, result := range results {
		resp := LabResultToResponse(&result)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
