package converter

import (
	"hospital-admin-backend/internal/delivery/dto"
	"hospital-admin-backend/internal/domain/entity"
)

// Defaults synthesized for days the doctor has never configured.
const (
	defaultWindowStart = "09:00"
	defaultWindowEnd   = "17:00"
)

// WindowToResponse converts an AvailabilityWindow entity to its DTO
func WindowToResponse(window *entity.AvailabilityWindow) *dto.AvailabilityWindowResponse {
	if window == nil {
		return nil
	}

	return &dto.AvailabilityWindowResponse{
		DayOfWeek: window.DayOfWeek,
		StartTime: window.StartTime,
		EndTime:   window.EndTime,
		IsEnabled: window.IsEnabled,
	}
}

// WindowsToWeekResponses returns exactly seven rows, Sunday (0) through
// Saturday (6). Days the doctor has stored windows for keep their values;
// the rest come back as disabled defaults so clients always render a full
// week without null checks.
func WindowsToWeekResponses(windows []entity.AvailabilityWindow) []dto.AvailabilityWindowResponse {
	week := make([]dto.AvailabilityWindowResponse, 7)
	for day := range week {
		week[day] = dto.AvailabilityWindowResponse{
			DayOfWeek: day,
			StartTime: defaultWindowStart,
			EndTime:   defaultWindowEnd,
			IsEnabled: false,
		}
	}

	for _, window := range windows {
		if window.DayOfWeek < 0 || window.DayOfWeek > 6 {
			continue
		}
		week[window.DayOfWeek] = dto.AvailabilityWindowResponse{
			DayOfWeek: window.DayOfWeek,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
			IsEnabled: window.IsEnabled,
		}
	}

	return week
}
