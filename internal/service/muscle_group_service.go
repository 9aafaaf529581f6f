package service

import (
	"context"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/repository"
)

// MuscleGroupService exposes the static muscle group catalog.
type MuscleGroupService interface {
	GetMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error)
}

type muscleGroupService struct {
	muscleGroupRepo repository.MuscleGroupRepository
}

// NewMuscleGroupService creates a new instance of muscleGroupService.
func NewMuscleGroupService(muscleGroupRepo repository.MuscleGroupRepository) MuscleGroupService {
	return &muscleGroupService{muscleGroupRepo: muscleGroupRepo}
}

func (s *muscleGroupService) GetMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	return s.muscleGroupRepo.GetAll(ctx)
}
