package service

import (
	"context"
	"errors"
	"strings"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/repository"
	"go.uber.org/zap"
)

const defaultRestrictionRedirect = "/support"

type RestrictionService interface {
	// Check returns the active restriction of the given type, or nil.
	Check(ctx context.Context, userID int64, kind models.RestrictionType) (*models.SellRestriction, error)
	// Enforce returns a RestrictionError for the first active restriction among kinds.
	Enforce(ctx context.Context, userID int64, kinds ...models.RestrictionType) error
	Upsert(ctx context.Context, operatorID int64, req models.RestrictionRequest) (*models.SellRestriction, error)
	Delete(ctx context.Context, operatorID, id int64) error
	List(ctx context.Context) ([]models.SellRestriction, error)
}

type restrictionService struct {
	repo repository.RestrictionRepository
}

func NewRestrictionService(repo repository.RestrictionRepository) RestrictionService {
	return &restrictionService{repo: repo}
}

func (s *restrictionService) Check(ctx context.Context, userID int64, kind models.RestrictionType) (*models.SellRestriction, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("type", "must be one of sell, withdraw, deposit")
	}
	rs, err := s.repo.GetActive(ctx, userID, kind)
	if errors.Is(err, apperrors.ErrRestrictionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *restrictionService) Enforce(ctx context.Context, userID int64, kinds ...models.RestrictionType) error {
	for _, kind := range kinds {
		rs, err := s.Check(ctx, userID, kind)
		if err != nil {
			return err
		}
		if rs != nil {
			logger.Log.Info("request blocked by restriction",
				zap.Int64("user_id", userID), zap.String("type", string(kind)), zap.Int64("restriction_id", rs.ID))
			return &apperrors.RestrictionError{Message: rs.Message, RedirectTo: rs.RedirectTo}
		}
	}
	return nil
}

func (s *restrictionService) Upsert(ctx context.Context, operatorID int64, req models.RestrictionRequest) (*models.SellRestriction, error) {
	if req.UserID <= 0 {
		return nil, apperrors.NewValidationError("user_id", "is required")
	}
	if !req.Type.Valid() {
		return nil, apperrors.NewValidationError("type", "must be one of sell, withdraw, deposit")
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.NewValidationError("message", "is required")
	}
	redirect := strings.TrimSpace(req.RedirectTo)
	if redirect == "" {
		redirect = defaultRestrictionRedirect
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	rs := &models.SellRestriction{
		UserID:     req.UserID,
		Type:       req.Type,
		Active:     active,
		Message:    message,
		RedirectTo: redirect,
		CreatedBy:  operatorID,
	}
	if err := s.repo.Upsert(ctx, rs); err != nil {
		return nil, err
	}

	logger.Log.Info("restriction saved",
		zap.Int64("operator_id", operatorID), zap.Int64("user_id", rs.UserID),
		zap.String("type", string(rs.Type)), zap.Bool("active", rs.Active))
	return rs, nil
}

// Delete removes a restriction and logs whose access it lifted.
func (s *restrictionService) Delete(ctx context.Context, operatorID, id int64) error {
	rs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("restriction deleted",
		zap.Int64("operator_id", operatorID), zap.Int64("restriction_id", id),
		zap.Int64("user_id", rs.UserID), zap.String("type", string(rs.Type)), zap.Bool("was_active", rs.Active))
	return nil
}

func (s *restrictionService) List(ctx context.Context) ([]models.SellRestriction, error) {
	return s.repo.List(ctx)
}
