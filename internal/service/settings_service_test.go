package service

import (
	"context"
	"errors"
	"testing"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/mocks/repository_mocks"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = SettingsDefaults{MinDeposit: dec("100"), MinWithdrawal: dec("200"), MaxWithdrawal: decimal.Zero}

func TestSettingsService_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo, &fakePrices{}, testDefaults)

	repo.EXPECT().GetLatestSnapshot(gomock.Any()).Return(nil, apperrors.ErrSettingsNotFound)
	snap, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap.ID)
	assert.True(t, dec("100").Equal(snap.MinDeposit))
	assert.True(t, dec("200").Equal(snap.MinWithdrawal))

	stored := &models.SettingsSnapshot{ID: int64Ptr(9), INRBonusPercent: dec("5")}
	repo.EXPECT().GetLatestSnapshot(gomock.Any()).Return(stored, nil)
	snap, err = svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, snap)

	repo.EXPECT().GetLatestSnapshot(gomock.Any()).Return(nil, errors.New("db down"))
	_, err = svc.Current(context.Background())
	assert.Error(t, err)
}

func TestSettingsService_Update(t *testing.T) {
	pct := func(s string) *decimal.Decimal { d := dec(s); return &d }

	tests := []struct {
		name    string
		patch   models.SettingsPatch
		wantErr error
		check   func(t *testing.T, s *models.SettingsSnapshot)
	}{
		{
			name:  "новый процент бонуса",
			patch: models.SettingsPatch{INRBonusPercent: pct("7.5")},
			check: func(t *testing.T, s *models.SettingsSnapshot) {
				assert.True(t, dec("7.5").Equal(s.INRBonusPercent))
				assert.True(t, dec("100").Equal(s.MinDeposit), "untouched fields carry over")
			},
		},
		{name: "процент больше ста", patch: models.SettingsPatch{INRBonusPercent: pct("101")}, wantErr: apperrors.ErrValidation},
		{name: "отрицательный курс", patch: models.SettingsPatch{USDTBuyRate: pct("-1")}, wantErr: apperrors.ErrValidation},
		{name: "максимум ниже минимума", patch: models.SettingsPatch{MaxWithdrawal: pct("150")}, wantErr: apperrors.ErrValidation},
		{name: "процент с тремя знаками", patch: models.SettingsPatch{INRBonusPercent: pct("7.125")}, wantErr: apperrors.ErrValidation},
		{name: "курс покупки с тремя знаками", patch: models.SettingsPatch{USDTBuyRate: pct("83.125")}, wantErr: apperrors.ErrValidation},
		{name: "курс продажи с тремя знаками", patch: models.SettingsPatch{USDTSellRate: pct("82.001")}, wantErr: apperrors.ErrValidation},
		{name: "минимум депозита с тремя знаками", patch: models.SettingsPatch{MinDeposit: pct("100.005")}, wantErr: apperrors.ErrValidation},
		{name: "курс больше допустимого", patch: models.SettingsPatch{USDTBuyRate: pct("1e15")}, wantErr: apperrors.ErrValidation},
		{
			name:  "курс с двумя знаками",
			patch: models.SettingsPatch{USDTBuyRate: pct("83.25"), USDTSellRate: pct("82.10")},
			check: func(t *testing.T, s *models.SettingsSnapshot) {
				assert.True(t, dec("83.25").Equal(s.USDTBuyRate))
				assert.True(t, dec("82.1").Equal(s.USDTSellRate))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repository_mocks.NewMockSettingsRepository(ctrl)
			repo.EXPECT().GetLatestSnapshot(gomock.Any()).Return(nil, apperrors.ErrSettingsNotFound).AnyTimes()
			if tt.wantErr == nil {
				repo.EXPECT().CreateSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.SettingsSnapshot) error {
					require.NotNil(t, s.CreatedBy)
					assert.Equal(t, int64(3), *s.CreatedBy)
					s.ID = int64Ptr(10)
					return nil
				})
			}

			snap, err := NewSettingsService(repo, &fakePrices{}, testDefaults).Update(context.Background(), 3, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), *snap.ID)
			tt.check(t, snap)
		})
	}
}

func TestSettingsService_ReferralReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo, &fakePrices{}, testDefaults)

	_, err := svc.SetReferralReward(context.Background(), 3, dec("-1"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.SetReferralReward(context.Background(), 3, dec("25.505"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.EXPECT().CreateReward(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rw *models.ReferralReward) error {
		rw.ID = 1
		return nil
	})
	rw, err := svc.SetReferralReward(context.Background(), 3, dec("25"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), rw.CreatedBy)

	repo.EXPECT().GetLatestReward(gomock.Any()).Return(&models.ReferralReward{Amount: dec("25")}, nil)
	amount, err := svc.CurrentReferralReward(context.Background())
	require.NoError(t, err)
	assert.True(t, dec("25").Equal(amount))
}

func TestSettingsService_RefreshReferencePrice(t *testing.T) {
	t.Run("цена сохраняется в новом снимке", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository_mocks.NewMockSettingsRepository(ctrl)
		repo.EXPECT().GetLatestSnapshot(gomock.Any()).Return(&models.SettingsSnapshot{ID: int64Ptr(4), INRBonusPercent: dec("5")}, nil)
		repo.EXPECT().CreateSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.SettingsSnapshot) error {
			s.ID = int64Ptr(5)
			return nil
		})

		svc := NewSettingsService(repo, &fakePrices{price: dec("88.456")}, testDefaults)
		snap, err := svc.RefreshReferencePrice(context.Background(), 3)
		require.NoError(t, err)
		assert.True(t, dec("88.46").Equal(snap.ReferencePrice))
		assert.True(t, dec("5").Equal(snap.INRBonusPercent))
	})

	t.Run("ошибка фида", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository_mocks.NewMockSettingsRepository(ctrl)
		svc := NewSettingsService(repo, &fakePrices{err: errors.New("timeout")}, testDefaults)
		_, err := svc.RefreshReferencePrice(context.Background(), 3)
		assert.Error(t, err)
	})
}

func TestSettingsService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockSettingsRepository(ctrl)
	svc := NewSettingsService(repo, &fakePrices{}, testDefaults)

	repo.EXPECT().GetSnapshot(gomock.Any(), int64(3)).Return(&models.SettingsSnapshot{ID: int64Ptr(3), INRBonusPercent: dec("5")}, nil)
	repo.EXPECT().GetSnapshot(gomock.Any(), int64(99)).Return(nil, apperrors.ErrSettingsNotFound)

	snap, err := svc.Snapshot(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, dec("5").Equal(snap.INRBonusPercent))

	_, err = svc.Snapshot(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrSettingsNotFound)
}
