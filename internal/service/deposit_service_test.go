package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/mocks/repository_mocks"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/realtime"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type depositFixture struct {
	repo         *repository_mocks.MockDepositRepository
	settings     *stubSettings
	restrictions *stubRestrictions
	effects      *fakeEffects
	emitter      *fakeEmitter
	svc          DepositService
}

func newDepositFixture(t *testing.T) *depositFixture {
	ctrl := gomock.NewController(t)
	f := &depositFixture{
		repo: repository_mocks.NewMockDepositRepository(ctrl),
		settings: &stubSettings{snap: &models.SettingsSnapshot{
			ID:              int64Ptr(3),
			INRBonusPercent: dec("5"),
			MinDeposit:      dec("100"),
		}},
		restrictions: &stubRestrictions{},
		effects:      &fakeEffects{},
		emitter:      &fakeEmitter{},
	}
	f.svc = NewDepositService(f.repo, f.settings, f.restrictions, f.effects, f.emitter)
	return f
}

func pendingDeposit(method models.DepositMethod) *models.Deposit {
	return &models.Deposit{ID: 1, UserID: 7, Amount: dec("1000"), Method: method, Status: models.StatusPending}
}

func TestDepositService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DepositRequest
		restricted bool
		repoErr    error
		wantErr    error
		wantCreate bool
	}{
		{
			name:       "UPI с номером транзакции",
			req:        models.DepositRequest{Amount: dec("500"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR123"}},
			wantCreate: true,
		},
		{
			name:       "crypto с сетью",
			req:        models.DepositRequest{Amount: dec("500"), Method: models.DepositCrypto, Payload: models.DepositPayload{TransactionRef: "0xabc", Network: "trc20"}},
			wantCreate: true,
		},
		{
			name:    "crypto без сети",
			req:     models.DepositRequest{Amount: dec("500"), Method: models.DepositCrypto, Payload: models.DepositPayload{TransactionRef: "0xabc"}},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "покупка без адреса кошелька",
			req:     models.DepositRequest{Amount: dec("500"), Method: models.DepositBuyStablecoin, Payload: models.DepositPayload{Network: "TRC20"}},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "неизвестный метод",
			req:     models.DepositRequest{Amount: dec("500"), Method: "Cash"},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "сумма ниже минимума",
			req:     models.DepositRequest{Amount: dec("99.99"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "отрицательная сумма",
			req:     models.DepositRequest{Amount: dec("-5"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "больше двух знаков после запятой",
			req:     models.DepositRequest{Amount: dec("100.001"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "сумма больше допустимого максимума",
			req:     models.DepositRequest{Amount: dec("10000000000000"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "номер транзакции из пробелов",
			req:     models.DepositRequest{Amount: dec("500"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "   "}},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:       "пользователь ограничен",
			req:        models.DepositRequest{Amount: dec("500"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
			restricted: true,
			wantErr:    apperrors.ErrForbidden,
		},
		{
			name:       "пользователь не существует",
			req:        models.DepositRequest{Amount: dec("500"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
			repoErr:    apperrors.ErrUserNotFound,
			wantErr:    apperrors.ErrUserNotFound,
			wantCreate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDepositFixture(t)
			if tt.restricted {
				f.restrictions.active = map[models.RestrictionType]*models.SellRestriction{
					models.RestrictDeposit: {Message: "contact support", RedirectTo: "/support"},
				}
			}
			if tt.wantCreate {
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *models.Deposit) error {
					assert.Equal(t, int64(7), d.UserID)
					assert.Equal(t, tt.req.Method, d.Method)
					d.ID = 11
					d.Status = models.StatusPending
					return tt.repoErr
				})
			}

			d, err := f.svc.Create(context.Background(), 7, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), d.ID)
			assert.Equal(t, models.StatusPending, d.Status)
		})
	}
}

func TestDepositService_Create_RestrictionMessage(t *testing.T) {
	f := newDepositFixture(t)
	f.restrictions.active = map[models.RestrictionType]*models.SellRestriction{
		models.RestrictDeposit: {Message: "KYC pending", RedirectTo: "/kyc"},
	}

	_, err := f.svc.Create(context.Background(), 7, models.DepositRequest{
		Amount: dec("500"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"},
	})

	var rerr *apperrors.RestrictionError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "KYC pending", rerr.Message)
	assert.Equal(t, "/kyc", rerr.RedirectTo)
	assert.Equal(t, []models.RestrictionType{models.RestrictDeposit}, f.restrictions.checked)
}

func TestDepositService_Approve_CreditsAmountAndBonus(t *testing.T) {
	f := newDepositFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(pendingDeposit(models.DepositUPI), nil)
	f.repo.EXPECT().Approve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.DepositApproval) (*models.Deposit, models.Wallet, error) {
			assert.Equal(t, int64(1), a.DepositID)
			assert.Equal(t, int64(42), a.OperatorID)
			assert.True(t, a.Credit)
			assert.True(t, dec("50").Equal(a.BonusAmount), "bonus %s", a.BonusAmount)
			assert.True(t, dec("5").Equal(a.BonusPercent))
			require.NotNil(t, a.SettingsSnapshotID)
			assert.Equal(t, int64(3), *a.SettingsSnapshotID)
			require.NotNil(t, a.Remarks)
			assert.Equal(t, "ok", *a.Remarks)
			assert.Equal(t, models.EventDepositApproved, a.Event.Kind)
			assert.NotEmpty(t, a.Event.ID)

			d := pendingDeposit(models.DepositUPI)
			d.Status = models.StatusApproved
			d.BonusAmount = a.BonusAmount
			return d, models.Wallet{UserID: 7, Balance: dec("1050")}, nil
		})

	d, err := f.svc.Approve(context.Background(), 42, 1, " ok ")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, d.Status)

	sent := f.emitter.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, realtime.UserRoom(7), sent[0].room)
	assert.Equal(t, realtime.EventBalanceChanged, sent[0].event)
	w, ok := sent[0].payload.(models.Wallet)
	require.True(t, ok)
	assert.True(t, dec("1050").Equal(w.Balance))

	require.Len(t, f.effects.events, 1)
	ev := f.effects.events[0]
	assert.Equal(t, models.EventDepositApproved, ev.Kind)
	assert.Equal(t, int64(1), ev.AggregateID)
	assert.Equal(t, int64(7), ev.UserID)

	var payload models.EventPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &payload))
	assert.Equal(t, "1000.00", payload.Amount)
	assert.Equal(t, "50.00", payload.BonusAmount)
}

func TestDepositService_Approve_BuyStablecoinDoesNotCredit(t *testing.T) {
	f := newDepositFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(pendingDeposit(models.DepositBuyStablecoin), nil)
	f.repo.EXPECT().Approve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.DepositApproval) (*models.Deposit, models.Wallet, error) {
			assert.False(t, a.Credit)
			assert.True(t, a.BonusAmount.IsZero())
			assert.Nil(t, a.SettingsSnapshotID)
			d := pendingDeposit(models.DepositBuyStablecoin)
			d.Status = models.StatusApproved
			return d, models.Wallet{}, nil
		})

	_, err := f.svc.Approve(context.Background(), 42, 1, "")
	require.NoError(t, err)
	assert.Empty(t, f.emitter.sent())
	assert.Len(t, f.effects.events, 1)
}

func TestDepositService_Approve_SettingsUnavailableMeansNoBonus(t *testing.T) {
	f := newDepositFixture(t)
	f.settings.err = errors.New("db down")
	f.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(pendingDeposit(models.DepositUPI), nil)
	f.repo.EXPECT().Approve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.DepositApproval) (*models.Deposit, models.Wallet, error) {
			assert.True(t, a.Credit)
			assert.True(t, a.BonusAmount.IsZero())
			assert.Nil(t, a.SettingsSnapshotID)
			d := pendingDeposit(models.DepositUPI)
			d.Status = models.StatusApproved
			return d, models.Wallet{UserID: 7, Balance: dec("1000")}, nil
		})

	_, err := f.svc.Approve(context.Background(), 42, 1, "")
	require.NoError(t, err)
}

func TestDepositService_Approve_NotPending(t *testing.T) {
	tests := []struct {
		name    string
		current *models.Deposit
		getErr  error
		casErr  error
		wantErr error
	}{
		{
			name:    "уже одобрен",
			current: &models.Deposit{ID: 1, UserID: 7, Amount: dec("1000"), Method: models.DepositUPI, Status: models.StatusApproved},
			wantErr: apperrors.ErrInvalidState,
		},
		{
			name:    "уже отклонён",
			current: &models.Deposit{ID: 1, UserID: 7, Amount: dec("1000"), Method: models.DepositUPI, Status: models.StatusRejected},
			wantErr: apperrors.ErrInvalidState,
		},
		{
			name:    "не найден",
			getErr:  apperrors.ErrDepositNotFound,
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:    "гонка: другой оператор успел первым",
			current: pendingDeposit(models.DepositUPI),
			casErr:  &apperrors.StateError{Entity: "deposit", ID: 1, Current: "approved"},
			wantErr: apperrors.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDepositFixture(t)
			f.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(tt.current, tt.getErr)
			if tt.casErr != nil {
				f.repo.EXPECT().Approve(gomock.Any(), gomock.Any()).Return(nil, models.Wallet{}, tt.casErr)
			}

			d, err := f.svc.Approve(context.Background(), 42, 1, "")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, d)
			assert.Empty(t, f.emitter.sent())
			assert.Empty(t, f.effects.events)

			var serr *apperrors.StateError
			if errors.As(err, &serr) {
				assert.NotEqual(t, string(models.StatusPending), serr.Current)
			}
		})
	}
}

func TestDepositService_Approve_EffectFailureDoesNotFailApproval(t *testing.T) {
	f := newDepositFixture(t)
	f.effects.err = errors.New("notification store down")
	f.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(pendingDeposit(models.DepositUPI), nil)
	f.repo.EXPECT().Approve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.DepositApproval) (*models.Deposit, models.Wallet, error) {
			d := pendingDeposit(models.DepositUPI)
			d.Status = models.StatusApproved
			return d, models.Wallet{UserID: 7, Balance: dec("1050")}, nil
		})

	d, err := f.svc.Approve(context.Background(), 42, 1, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, d.Status)
}

func TestDepositService_Reject(t *testing.T) {
	t.Run("причина обязательна", func(t *testing.T) {
		f := newDepositFixture(t)
		_, err := f.svc.Reject(context.Background(), 42, 1, "   ")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("успешное отклонение без движения по кошельку", func(t *testing.T) {
		f := newDepositFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(pendingDeposit(models.DepositUPI), nil)
		f.repo.EXPECT().Reject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rj models.Rejection) (*models.Deposit, error) {
				assert.Equal(t, "wrong UTR", rj.Reason)
				assert.Equal(t, int64(42), rj.OperatorID)
				assert.Equal(t, models.EventDepositRejected, rj.Event.Kind)
				d := pendingDeposit(models.DepositUPI)
				d.Status = models.StatusRejected
				d.RejectionReason = &rj.Reason
				return d, nil
			})

		d, err := f.svc.Reject(context.Background(), 42, 1, "wrong UTR")
		require.NoError(t, err)
		assert.Equal(t, models.StatusRejected, d.Status)
		assert.Empty(t, f.emitter.sent())

		require.Len(t, f.effects.events, 1)
		var payload models.EventPayload
		require.NoError(t, json.Unmarshal(f.effects.events[0].Payload, &payload))
		assert.Equal(t, "wrong UTR", payload.Reason)
	})

	t.Run("нельзя отклонить одобренный", func(t *testing.T) {
		f := newDepositFixture(t)
		d := pendingDeposit(models.DepositUPI)
		d.Status = models.StatusApproved
		f.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(d, nil)

		_, err := f.svc.Reject(context.Background(), 42, 1, "late")
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	})
}

func TestDepositService_DeleteAndList(t *testing.T) {
	f := newDepositFixture(t)
	f.repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
	f.repo.EXPECT().Delete(gomock.Any(), int64(6)).Return(apperrors.ErrDepositNotFound)
	f.repo.EXPECT().ListByStatus(gomock.Any(), models.StatusPending).Return([]models.Deposit{*pendingDeposit(models.DepositUPI)}, nil)

	assert.NoError(t, f.svc.Delete(context.Background(), 42, 5))
	assert.ErrorIs(t, f.svc.Delete(context.Background(), 42, 6), apperrors.ErrNotFound)

	list, err := f.svc.List(context.Background(), models.StatusPending)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.svc.List(context.Background(), "archived")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDepositService_BonusAudit(t *testing.T) {
	approved := &models.Deposit{
		ID: 1, UserID: 7, Amount: dec("1000"), Method: models.DepositUPI, Status: models.StatusApproved,
		BonusAmount: dec("50"), BonusPercent: dec("5"), SettingsSnapshotID: int64Ptr(3),
	}

	tests := []struct {
		name         string
		stored       *models.Deposit
		getErr       error
		settingsErr  error
		wantErr      error
		wantSnapshot bool
	}{
		{name: "бонус со снимком настроек", stored: approved, wantSnapshot: true},
		{name: "депозит без бонуса", stored: pendingDeposit(models.DepositUPI)},
		{name: "депозит не найден", getErr: apperrors.ErrDepositNotFound, wantErr: apperrors.ErrDepositNotFound},
		{name: "снимок недоступен", stored: approved, settingsErr: apperrors.ErrSettingsNotFound, wantErr: apperrors.ErrSettingsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDepositFixture(t)
			f.settings.err = tt.settingsErr
			f.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(tt.stored, tt.getErr)

			audit, err := f.svc.BonusAudit(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), audit.DepositID)
			assert.True(t, tt.stored.BonusAmount.Equal(audit.BonusAmount))
			if tt.wantSnapshot {
				require.NotNil(t, audit.Settings)
				assert.Equal(t, int64(3), *audit.Settings.ID)
				assert.True(t, dec("5").Equal(audit.Settings.INRBonusPercent))
			} else {
				assert.Nil(t, audit.Settings)
			}
		})
	}
}
