package service

import (
	"context"
	"sync"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/shopspring/decimal"
)

type emitted struct {
	room    string
	event   string
	payload any
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []emitted
	err    error
}

func (f *fakeEmitter) Emit(_ context.Context, room, event string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, emitted{room: room, event: event, payload: payload})
	return f.err
}

func (f *fakeEmitter) sent() []emitted {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]emitted(nil), f.events...)
}

type fakeEffects struct {
	events []models.LedgerEvent
	err    error
}

func (f *fakeEffects) Process(_ context.Context, ev models.LedgerEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

type stubSettings struct {
	snap      *models.SettingsSnapshot
	err       error
	reward    decimal.Decimal
	rewardErr error
}

func (s *stubSettings) Current(context.Context) (*models.SettingsSnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.snap == nil {
		return &models.SettingsSnapshot{}, nil
	}
	return s.snap, nil
}

func (s *stubSettings) Snapshot(_ context.Context, id int64) (*models.SettingsSnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.snap == nil || s.snap.ID == nil || *s.snap.ID != id {
		return nil, apperrors.ErrSettingsNotFound
	}
	return s.snap, nil
}

func (s *stubSettings) Update(context.Context, int64, models.SettingsPatch) (*models.SettingsSnapshot, error) {
	return s.snap, s.err
}

func (s *stubSettings) CurrentReferralReward(context.Context) (decimal.Decimal, error) {
	return s.reward, s.rewardErr
}

func (s *stubSettings) SetReferralReward(context.Context, int64, decimal.Decimal) (*models.ReferralReward, error) {
	return nil, nil
}

func (s *stubSettings) RefreshReferencePrice(context.Context, int64) (*models.SettingsSnapshot, error) {
	return s.snap, s.err
}

type stubRestrictions struct {
	active  map[models.RestrictionType]*models.SellRestriction
	checked []models.RestrictionType
}

func (s *stubRestrictions) Check(_ context.Context, _ int64, kind models.RestrictionType) (*models.SellRestriction, error) {
	return s.active[kind], nil
}

func (s *stubRestrictions) Enforce(_ context.Context, _ int64, kinds ...models.RestrictionType) error {
	for _, kind := range kinds {
		s.checked = append(s.checked, kind)
		if rs := s.active[kind]; rs != nil {
			return &apperrors.RestrictionError{Message: rs.Message, RedirectTo: rs.RedirectTo}
		}
	}
	return nil
}

func (s *stubRestrictions) Upsert(context.Context, int64, models.RestrictionRequest) (*models.SellRestriction, error) {
	return nil, nil
}

func (s *stubRestrictions) Delete(context.Context, int64, int64) error { return nil }

func (s *stubRestrictions) List(context.Context) ([]models.SellRestriction, error) { return nil, nil }

type fakeNotifications struct {
	sent []NotifyParams
	err  error
}

func (f *fakeNotifications) Notify(_ context.Context, p NotifyParams) (*models.Notification, error) {
	f.sent = append(f.sent, p)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Notification{ID: int64(len(f.sent)), Title: p.Title, Message: p.Message, TargetUserID: p.Target}, nil
}

func (f *fakeNotifications) Create(context.Context, int64, models.NotificationRequest) (*models.Notification, error) {
	return nil, nil
}

func (f *fakeNotifications) List(context.Context, int64) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotifications) MarkRead(context.Context, int64, int64) error { return nil }

func (f *fakeNotifications) UnreadCount(context.Context, int64) (int, error) { return 0, nil }

type fakeReferrals struct {
	calls [][2]int64
	err   error
}

func (f *fakeReferrals) PayForDeposit(_ context.Context, depositID, depositorID int64) error {
	f.calls = append(f.calls, [2]int64{depositID, depositorID})
	return f.err
}

type fakePrices struct {
	price decimal.Decimal
	err   error
}

func (f *fakePrices) GetPrice(context.Context, string) (decimal.Decimal, error) {
	return f.price, f.err
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func int64Ptr(v int64) *int64 {
	return &v
}
