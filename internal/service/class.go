package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AbbasJay/be-well-web-sub000/internal/domain"
	"github.com/AbbasJay/be-well-web-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ClassService struct {
	repo    ports.ClassRepo
	mirror  ports.CalendarMirror
	alerter ports.OperatorAlerter
	logger  logger.Logger
}

func NewClassService(
	repo ports.ClassRepo,
	mirror ports.CalendarMirror,
	alerter ports.OperatorAlerter,
	logger logger.Logger,
) *ClassService {
	return &ClassService{
		repo:    repo,
		mirror:  mirror,
		alerter: alerter,
		logger:  logger,
	}
}

func (s *ClassService) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClassService) Update(ctx context.Context, id, userID string, input domain.UpdateClassInput) (*domain.Class, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.ClassTimeLayout, input.Time); err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)
	}
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	if err := s.checkOwner(ctx, id, userID); err != nil {
		return nil, err
	}

	class, err := s.repo.UpdateDetails(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}

	if err = s.mirror.SyncClassUpdate(ctx, userID, class); err != nil {
		reportMirrorFailure(ctx, s.logger, s.alerter, "update", userID, class.ID, err)
	}

	return class, nil
}

func (s *ClassService) Delete(ctx context.Context, id, userID string) error {
	if err := s.checkOwner(ctx, id, userID); err != nil {
		return err
	}

	class, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get class: %w", err)
	}

	if err = s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	s.logger.Info("class deleted",
		logger.String("class_id", id),
		logger.String("user_id", userID),
	)

	if err = s.mirror.RemoveClassEvent(ctx, userID, class); err != nil {
		reportMirrorFailure(ctx, s.logger, s.alerter, "delete", userID, class.ID, err)
	}

	return nil
}

// checkOwner hides classes the caller does not own behind not-found.
func (s *ClassService) checkOwner(ctx context.Context, id, userID string) error {
	owned, err := s.repo.IsOwnedBy(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("check class owner: %w", err)
	}
	if !owned {
		return domain.ErrClassNotFound
	}

	return nil
}
