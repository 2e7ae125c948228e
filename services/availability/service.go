package availability

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	allocationRepo "inspectra/database/repository/allocation"
	staffRepo "inspectra/database/repository/staff"
	"inspectra/models"
	"inspectra/services/scheduling"
	"inspectra/utils"
)

// Service supplies per-inspector availability for a date.
type Service interface {
	ForDate(ctx context.Context, date string) ([]models.InspectorAvailability, error)
}

// DefaultService derives availability from the staff directory and the day's
// work allocations: allocated intervals are occupied, and free slots are the
// complement within business hours.
type DefaultService struct {
	Staff       staffRepo.StaffRepository
	Allocations allocationRepo.WorkAllocationRepository
}

// ForDate returns availability for every active inspector on the given date.
func (s *DefaultService) ForDate(ctx context.Context, date string) ([]models.InspectorAvailability, error) {
	staff, err := s.Staff.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff directory: %w", err)
	}

	logger := utils.GetLogger()
	availability := make([]models.InspectorAvailability, 0, len(staff))
	for _, member := range staff {
		allocations, err := s.Allocations.ListByStaffAndDate(ctx, member.ID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to load allocations for %s: %w", member.Email, err)
		}

		occupied := occupiedSlots(allocations, logger)
		free := freeSlots(occupied)

		var totalOccupied float64
		for _, slot := range occupied {
			totalOccupied += slot.DurationHours
		}

		availability = append(availability, models.InspectorAvailability{
			InspectorID:        member.ID,
			DisplayName:        member.DisplayName,
			Email:              member.Email,
			Date:               date,
			OccupiedSlots:      occupied,
			FreeSlots:          free,
			IsCompletelyFree:   len(occupied) == 0,
			TotalOccupiedHours: totalOccupied,
		})
	}
	return availability, nil
}

// occupiedSlots converts a day's allocations into sorted occupied intervals,
// clamped to business hours.
func occupiedSlots(allocations []models.WorkAllocation, logger *zap.Logger) []models.AvailabilitySlot {
	occupied := make([]models.AvailabilitySlot, 0, len(allocations))
	for _, alloc := range allocations {
		start, err := utils.ToMinutes(alloc.StartTime)
		if err != nil {
			logger.Warn("skipping allocation with malformed start time",
				zap.String("allocationId", alloc.ID), zap.Error(err))
			continue
		}
		end, err := utils.ToMinutes(alloc.EndTime)
		if err != nil {
			logger.Warn("skipping allocation with malformed end time",
				zap.String("allocationId", alloc.ID), zap.Error(err))
			continue
		}

		if start < scheduling.BusinessOpenMinutes {
			start = scheduling.BusinessOpenMinutes
		}
		if end > scheduling.BusinessCloseMinutes {
			end = scheduling.BusinessCloseMinutes
		}
		if end <= start {
			continue
		}

		occupied = append(occupied, models.AvailabilitySlot{
			Start:         start,
			End:           end,
			DurationHours: scheduling.Duration(start, end),
		})
	}

	sort.Slice(occupied, func(i, j int) bool { return occupied[i].Start < occupied[j].Start })
	return occupied
}

// freeSlots returns the complement of the occupied intervals within business
// hours. Occupied slots are sorted; overlap is tolerated by advancing a cursor.
func freeSlots(occupied []models.AvailabilitySlot) []models.AvailabilitySlot {
	free := make([]models.AvailabilitySlot, 0, len(occupied)+1)
	cursor := scheduling.BusinessOpenMinutes

	for _, slot := range occupied {
		if slot.Start > cursor {
			free = append(free, models.AvailabilitySlot{
				Start:         cursor,
				End:           slot.Start,
				DurationHours: scheduling.Duration(cursor, slot.Start),
			})
		}
		if slot.End > cursor {
			cursor = slot.End
		}
	}

	if cursor < scheduling.BusinessCloseMinutes {
		free = append(free, models.AvailabilitySlot{
			Start:         cursor,
			End:           scheduling.BusinessCloseMinutes,
			DurationHours: scheduling.Duration(cursor, scheduling.BusinessCloseMinutes),
		})
	}
	return free
}
