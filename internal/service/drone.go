package service

import (
	"context"
	"fmt"
	"strings"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
)

type droneService struct {
	droneRepo repository.DroneRepository
}

func NewDroneService(droneRepo repository.DroneRepository) DroneService {
	return &droneService{droneRepo: droneRepo}
}

func (s *droneService) CreateDrone(ctx context.Context, d *domain.Drone) (*domain.Drone, error) {
	d.Model = strings.TrimSpace(d.Model)
	if d.Model == "" {
		return nil, fmt.Errorf("%w: model is required", ErrInvalidArgument)
	}
	if d.PricePerHourCents <= 0 {
		return nil, fmt.Errorf("%w: hourly price must be positive", ErrInvalidArgument)
	}
	if d.DronePriceCents <= 0 {
		return nil, fmt.Errorf("%w: drone price must be positive", ErrInvalidArgument)
	}

	exists, err := s.droneRepo.ExistsByModel(ctx, d.Model)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("drone model %s: %w", d.Model, ErrAlreadyExists)
	}

	if d.Status == "" {
		d.Status = domain.DroneStatusAvailable
	}
	if err := s.droneRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create drone: %w", err)
	}
	return d, nil
}

func (s *droneService) GetDrone(ctx context.Context, id int64) (*domain.Drone, error) {
	d, err := s.droneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "drone")
	}
	return d, nil
}

func (s *droneService) ListDrones(ctx context.Context) ([]domain.Drone, error) {
	return s.droneRepo.List(ctx)
}

func (s *droneService) UpdateDrone(ctx context.Context, d *domain.Drone) error {
	if _, err := s.droneRepo.GetByID(ctx, d.ID); err != nil {
		return asNotFound(err, "drone")
	}
	if err := s.droneRepo.Update(ctx, d); err != nil {
		return fmt.Errorf("update drone: %w", err)
	}
	return nil
}

func (s *droneService) DeleteDrone(ctx context.Context, id int64) error {
	if err := s.droneRepo.Delete(ctx, id); err != nil {
		return asNotFound(err, "drone")
	}
	return nil
}
