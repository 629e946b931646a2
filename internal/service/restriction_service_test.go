package service

import (
	"context"
	"errors"
	"testing"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/mocks/repository_mocks"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestrictionService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockRestrictionRepository(ctrl)
	svc := NewRestrictionService(repo)

	active := &models.SellRestriction{ID: 1, UserID: 7, Type: models.RestrictSell, Active: true, Message: "no"}
	repo.EXPECT().GetActive(gomock.Any(), int64(7), models.RestrictSell).Return(active, nil)
	repo.EXPECT().GetActive(gomock.Any(), int64(7), models.RestrictDeposit).Return(nil, apperrors.ErrRestrictionNotFound)

	rs, err := svc.Check(context.Background(), 7, models.RestrictSell)
	require.NoError(t, err)
	assert.Equal(t, active, rs)

	rs, err = svc.Check(context.Background(), 7, models.RestrictDeposit)
	require.NoError(t, err)
	assert.Nil(t, rs)

	_, err = svc.Check(context.Background(), 7, "trade")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRestrictionService_Enforce(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockRestrictionRepository(ctrl)
	svc := NewRestrictionService(repo)

	repo.EXPECT().GetActive(gomock.Any(), int64(7), models.RestrictWithdraw).Return(nil, apperrors.ErrRestrictionNotFound)
	repo.EXPECT().GetActive(gomock.Any(), int64(7), models.RestrictSell).
		Return(&models.SellRestriction{ID: 2, Message: "Sell disabled", RedirectTo: "/support"}, nil)

	err := svc.Enforce(context.Background(), 7, models.RestrictWithdraw, models.RestrictSell)

	var rerr *apperrors.RestrictionError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "Sell disabled", rerr.Message)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	repo.EXPECT().GetActive(gomock.Any(), int64(8), models.RestrictWithdraw).Return(nil, errors.New("db down"))
	err = svc.Enforce(context.Background(), 8, models.RestrictWithdraw)
	assert.EqualError(t, err, "db down")
}

func TestRestrictionService_Upsert(t *testing.T) {
	inactive := false

	tests := []struct {
		name       string
		req        models.RestrictionRequest
		wantErr    error
		wantActive bool
		wantRedir  string
	}{
		{
			name:       "по умолчанию активно и ведёт в поддержку",
			req:        models.RestrictionRequest{UserID: 7, Type: models.RestrictSell, Message: "Sell paused"},
			wantActive: true,
			wantRedir:  "/support",
		},
		{
			name:      "снятие ограничения",
			req:       models.RestrictionRequest{UserID: 7, Type: models.RestrictSell, Message: "ok", Active: &inactive, RedirectTo: "/help"},
			wantRedir: "/help",
		},
		{name: "без пользователя", req: models.RestrictionRequest{Type: models.RestrictSell, Message: "m"}, wantErr: apperrors.ErrValidation},
		{name: "неизвестный тип", req: models.RestrictionRequest{UserID: 7, Type: "trade", Message: "m"}, wantErr: apperrors.ErrValidation},
		{name: "без сообщения", req: models.RestrictionRequest{UserID: 7, Type: models.RestrictSell}, wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repository_mocks.NewMockRestrictionRepository(ctrl)
			if tt.wantErr == nil {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rs *models.SellRestriction) error {
					rs.ID = 4
					return nil
				})
			}

			rs, err := NewRestrictionService(repo).Upsert(context.Background(), 3, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(4), rs.ID)
			assert.Equal(t, tt.wantActive, rs.Active)
			assert.Equal(t, tt.wantRedir, rs.RedirectTo)
			assert.Equal(t, int64(3), rs.CreatedBy)
		})
	}
}

func TestRestrictionService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		getErr     error
		deleteErr  error
		wantDelete bool
		wantErr    error
	}{
		{name: "удаление существующего", wantDelete: true},
		{name: "ограничение не найдено", getErr: apperrors.ErrRestrictionNotFound, wantErr: apperrors.ErrRestrictionNotFound},
		{name: "удалено параллельно", wantDelete: true, deleteErr: apperrors.ErrRestrictionNotFound, wantErr: apperrors.ErrRestrictionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repository_mocks.NewMockRestrictionRepository(ctrl)

			stored := &models.SellRestriction{ID: 4, UserID: 7, Type: models.RestrictSell, Active: true}
			if tt.getErr != nil {
				stored = nil
			}
			repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(stored, tt.getErr)
			if tt.wantDelete {
				repo.EXPECT().Delete(gomock.Any(), int64(4)).Return(tt.deleteErr)
			}

			err := NewRestrictionService(repo).Delete(context.Background(), 3, 4)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
