package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"roadtrip/internal/models/db_models"
	"roadtrip/internal/models/request_models"
	"roadtrip/internal/repositories"
	"roadtrip/pkg/utils"
)

type DestinationServiceInterface interface {
	CreateDestination(ctx context.Context, req request_models.CreateDestinationRequest) (*db_models.Destination, error)
	GetDestination(ctx context.Context, id string) (*db_models.Destination, error)
	ListDestinations(ctx context.Context, skip, limit int) ([]db_models.Destination, error)
	UpdateDestination(ctx context.Context, id string, patch request_models.UpdateDestinationRequest) (*db_models.Destination, error)
	DeleteDestination(ctx context.Context, id string) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
	}
}

func validCoordinates(lat, long float64) bool {
	return lat >= -90 && lat <= 90 && long >= -180 && long <= 180
}

func (s *DestinationService) CreateDestination(ctx context.Context, req request_models.CreateDestinationRequest) (*db_models.Destination, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, utils.ErrInvalidName
	}
	if req.Lat == nil || req.Long == nil || !validCoordinates(*req.Lat, *req.Long) {
		return nil, utils.ErrInvalidCoordinates
	}

	dest := &db_models.Destination{
		ID:        db_models.GenerateID(*req.Lat, *req.Long),
		Name:      req.Name,
		Lat:       *req.Lat,
		Long:      *req.Long,
		ImageURLs: req.ImageURLs,
		CreatedAt: utils.NowUnixMillis(),
	}
	if dest.ImageURLs == nil {
		dest.ImageURLs = []string{}
	}

	existing, err := s.destinationRepo.GetByID(ctx, dest.ID)
	if err != nil {
		logrus.Errorf("Error checking destination %s: %v", dest.ID, err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDestinationConflict
	}

	if err := s.destinationRepo.Create(ctx, dest); err != nil {
		// Concurrent create of the same coordinates lands here via the
		// primary-key constraint.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDestinationConflict
		}
		logrus.Errorf("Error creating destination %s: %v", dest.ID, err)
		return nil, utils.ErrDatabaseError
	}

	return dest, nil
}

func (s *DestinationService) GetDestination(ctx context.Context, id string) (*db_models.Destination, error) {
	dest, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		logrus.Errorf("Error fetching destination %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if dest == nil {
		return nil, utils.ErrDestinationNotFound
	}
	return dest, nil
}

func (s *DestinationService) ListDestinations(ctx context.Context, skip, limit int) ([]db_models.Destination, error) {
	if skip < 0 || limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidPage
	}

	dests, err := s.destinationRepo.List(ctx, skip, limit)
	if err != nil {
		logrus.Errorf("Error listing destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return dests, nil
}

// UpdateDestination applies a partial patch. When either coordinate is
// present the id is recomputed from the resulting pair; a recomputed id
// that collides with a different record rejects the whole update.
func (s *DestinationService) UpdateDestination(ctx context.Context, id string, patch request_models.UpdateDestinationRequest) (*db_models.Destination, error) {
	existing, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		logrus.Errorf("Error fetching destination %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrDestinationNotFound
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, utils.ErrInvalidName
		}
		existing.Name = *patch.Name
	}
	if patch.Lat != nil {
		existing.Lat = *patch.Lat
	}
	if patch.Long != nil {
		existing.Long = *patch.Long
	}
	if patch.ImageURLs != nil {
		existing.ImageURLs = *patch.ImageURLs
	}

	if patch.Lat != nil || patch.Long != nil {
		if !validCoordinates(existing.Lat, existing.Long) {
			return nil, utils.ErrInvalidCoordinates
		}
		existing.ID = db_models.GenerateID(existing.Lat, existing.Long)
	}

	if err := s.destinationRepo.Update(ctx, id, existing); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, utils.ErrDestinationConflict
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, utils.ErrDestinationNotFound
		default:
			logrus.Errorf("Error updating destination %s: %v", id, err)
			return nil, utils.ErrDatabaseError
		}
	}

	return existing, nil
}

func (s *DestinationService) DeleteDestination(ctx context.Context, id string) error {
	if err := s.destinationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrDestinationNotFound
		}
		logrus.Errorf("Error deleting destination %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}
