package rewardservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/codequiz/internal/domain"
	"github.com/GlebRadaev/codequiz/internal/pg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	wednesday = time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2024, time.May, 18, 0, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockRewardRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	rewardRepo := NewMockRewardRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(userRepo, rewardRepo, txManager, time.UTC)
	return service, userRepo, rewardRepo, txManager
}

func passThrough(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestClaimDailyReward(t *testing.T) {
	service, userRepo, rewardRepo, txManager := NewMock(t)
	userID := uuid.New()
	user := &domain.User{ID: userID, Coins: 600}
	afternoon := wednesday.Add(15*time.Hour + 30*time.Minute)

	tests := []struct {
		name        string
		userID      uuid.UUID
		amount      int
		claimDate   time.Time
		prepareMock func()
		expected    *domain.RewardClaimResult
		expectedErr error
	}{
		{
			name:      "Weekday claim credits 25 coins",
			userID:    userID,
			amount:    25,
			claimDate: afternoon,
			prepareMock: func() {
				passThrough(txManager)
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, wednesday).Return(false, nil)
				rewardRepo.EXPECT().AppendClaim(gomock.Any(), userID, wednesday, 25).Return(&domain.RewardLedger{ID: 1, UserID: userID}, nil)
				userRepo.EXPECT().CreditReward(gomock.Any(), userID, 25, wednesday).Return(625, nil)
			},
			expected: &domain.RewardClaimResult{NewCoins: 625, ClaimedDate: wednesday},
		},
		{
			name:      "Weekend claim credits 50 coins",
			userID:    userID,
			amount:    50,
			claimDate: saturday,
			prepareMock: func() {
				passThrough(txManager)
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, saturday).Return(false, nil)
				rewardRepo.EXPECT().AppendClaim(gomock.Any(), userID, saturday, 50).Return(&domain.RewardLedger{ID: 1, UserID: userID}, nil)
				userRepo.EXPECT().CreditReward(gomock.Any(), userID, 50, saturday).Return(650, nil)
			},
			expected: &domain.RewardClaimResult{NewCoins: 650, ClaimedDate: saturday},
		},
		{
			name:        "Nil user ID",
			userID:      uuid.Nil,
			amount:      25,
			claimDate:   wednesday,
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidInput,
		},
		{
			name:        "Missing claim date",
			userID:      userID,
			amount:      25,
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidInput,
		},
		{
			name:      "Unknown user",
			userID:    userID,
			amount:    25,
			claimDate: wednesday,
			prepareMock: func() {
				passThrough(txManager)
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(nil, nil)
			},
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name:      "Wrong amount for a weekend day",
			userID:    userID,
			amount:    25,
			claimDate: saturday,
			prepareMock: func() {
				passThrough(txManager)
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, saturday).Return(false, nil)
			},
			expectedErr: domain.ErrAmountMismatch,
		},
		{
			name:      "Already claimed",
			userID:    userID,
			amount:    25,
			claimDate: afternoon,
			prepareMock: func() {
				passThrough(txManager)
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, wednesday).Return(true, nil)
			},
			expectedErr: domain.ErrAlreadyClaimed,
		},
		{
			name:      "Already claimed wins over a wrong amount",
			userID:    userID,
			amount:    999,
			claimDate: wednesday,
			prepareMock: func() {
				passThrough(txManager)
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, wednesday).Return(true, nil)
			},
			expectedErr: domain.ErrAlreadyClaimed,
		},
		{
			name:      "Duplicate caught by the ledger index",
			userID:    userID,
			amount:    25,
			claimDate: wednesday,
			prepareMock: func() {
				passThrough(txManager)
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, wednesday).Return(false, nil)
				rewardRepo.EXPECT().AppendClaim(gomock.Any(), userID, wednesday, 25).Return(nil, domain.ErrAlreadyClaimed)
			},
			expectedErr: domain.ErrAlreadyClaimed,
		},
		{
			name:      "Lock failure",
			userID:    userID,
			amount:    25,
			claimDate: wednesday,
			prepareMock: func() {
				passThrough(txManager)
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(nil, errors.New("connection refused"))
			},
			expectedErr: errors.New("connection refused"),
		},
		{
			name:      "Credit failure after append",
			userID:    userID,
			amount:    25,
			claimDate: wednesday,
			prepareMock: func() {
				passThrough(txManager)
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, wednesday).Return(false, nil)
				rewardRepo.EXPECT().AppendClaim(gomock.Any(), userID, wednesday, 25).Return(&domain.RewardLedger{ID: 1}, nil)
				userRepo.EXPECT().CreditReward(gomock.Any(), userID, 25, wednesday).Return(0, errors.New("disk full"))
			},
			expectedErr: errors.New("disk full"),
		},
		{
			name:      "Commit failure",
			userID:    userID,
			amount:    25,
			claimDate: wednesday,
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					require.NoError(t, fn(ctx))
					return errors.New("can't commit transaction")
				})
				userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, wednesday).Return(false, nil)
				rewardRepo.EXPECT().AppendClaim(gomock.Any(), userID, wednesday, 25).Return(&domain.RewardLedger{ID: 1}, nil)
				userRepo.EXPECT().CreditReward(gomock.Any(), userID, 25, wednesday).Return(625, nil)
			},
			expectedErr: errors.New("can't commit transaction"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.ClaimDailyReward(context.Background(), tt.userID, tt.amount, tt.claimDate)
			if tt.expectedErr != nil {
				assert.Nil(t, result)
				if !errors.Is(err, tt.expectedErr) {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClaimDailyReward_MismatchCarriesAmounts(t *testing.T) {
	service, userRepo, rewardRepo, txManager := NewMock(t)
	userID := uuid.New()

	passThrough(txManager)
	userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
	rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, saturday).Return(false, nil)

	_, err := service.ClaimDailyReward(context.Background(), userID, 25, saturday)

	var mismatch *domain.AmountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 50, mismatch.Expected)
	assert.Equal(t, 25, mismatch.Received)
}

func TestClaimDailyReward_BusinessTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	rewardRepo := NewMockRewardRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	loc := time.FixedZone("UTC+3", 3*60*60)
	service := New(userRepo, rewardRepo, txManager, loc)
	userID := uuid.New()

	// Friday 22:30 UTC is already Saturday in UTC+3.
	claimedAt := time.Date(2024, time.May, 17, 22, 30, 0, 0, time.UTC)
	day := time.Date(2024, time.May, 18, 0, 0, 0, 0, loc)

	passThrough(txManager)
	userRepo.EXPECT().LockByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
	rewardRepo.EXPECT().HasClaimed(gomock.Any(), userID, day).Return(false, nil)
	rewardRepo.EXPECT().AppendClaim(gomock.Any(), userID, day, 50).Return(&domain.RewardLedger{}, nil)
	userRepo.EXPECT().CreditReward(gomock.Any(), userID, 50, day).Return(650, nil)

	result, err := service.ClaimDailyReward(context.Background(), userID, 50, claimedAt)
	require.NoError(t, err)
	assert.True(t, result.ClaimedDate.Equal(day))
	assert.Equal(t, 650, result.NewCoins)
}

func TestGetStatus(t *testing.T) {
	service, userRepo, rewardRepo, _ := NewMock(t)
	service.now = func() time.Time { return wednesday.Add(9 * time.Hour) }
	userID := uuid.New()
	user := &domain.User{ID: userID, Coins: 625}
	tuesday := wednesday.AddDate(0, 0, -1)

	tests := []struct {
		name        string
		userID      uuid.UUID
		prepareMock func()
		expected    *domain.RewardStatus
		expectedErr error
	}{
		{
			name:   "Never claimed",
			userID: userID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().GetLastClaim(gomock.Any(), userID).Return(nil, nil)
				rewardRepo.EXPECT().GetClaimedDates(gomock.Any(), userID).Return(nil, nil)
			},
			expected: &domain.RewardStatus{
				ClaimedDates:  []domain.RewardClaim{},
				CanClaimToday: true,
				TodayReward:   25,
			},
		},
		{
			name:   "Claimed yesterday",
			userID: userID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().GetLastClaim(gomock.Any(), userID).Return(&domain.RewardClaim{Date: tuesday, Amount: 25}, nil)
				rewardRepo.EXPECT().GetClaimedDates(gomock.Any(), userID).Return([]domain.RewardClaim{{Date: tuesday, Amount: 25}}, nil)
			},
			expected: &domain.RewardStatus{
				LastClaim:     &domain.RewardClaim{Date: tuesday, Amount: 25},
				ClaimedDates:  []domain.RewardClaim{{Date: tuesday, Amount: 25}},
				CanClaimToday: true,
				TodayReward:   25,
			},
		},
		{
			name:   "Claimed today",
			userID: userID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().GetLastClaim(gomock.Any(), userID).Return(&domain.RewardClaim{Date: wednesday, Amount: 25}, nil)
				rewardRepo.EXPECT().GetClaimedDates(gomock.Any(), userID).Return([]domain.RewardClaim{
					{Date: wednesday, Amount: 25},
					{Date: tuesday, Amount: 25},
				}, nil)
			},
			expected: &domain.RewardStatus{
				LastClaim: &domain.RewardClaim{Date: wednesday, Amount: 25},
				ClaimedDates: []domain.RewardClaim{
					{Date: wednesday, Amount: 25},
					{Date: tuesday, Amount: 25},
				},
				CanClaimToday: false,
				TodayReward:   25,
			},
		},
		{
			name:   "Unknown user",
			userID: userID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, nil)
			},
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name:   "Ledger read failure",
			userID: userID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
				rewardRepo.EXPECT().GetLastClaim(gomock.Any(), userID).Return(nil, errors.New("timeout"))
			},
			expectedErr: errors.New("timeout"),
		},
		{
			name:        "Nil user ID",
			userID:      uuid.Nil,
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			status, err := service.GetStatus(context.Background(), tt.userID)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, status)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestGetStatus_BusinessTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	rewardRepo := NewMockRewardRepo(ctrl)
	loc := time.FixedZone("UTC-5", -5*60*60)
	service := New(userRepo, rewardRepo, pg.NewMockTXManager(ctrl), loc)
	userID := uuid.New()

	// 02:00 UTC on Thursday is still Wednesday evening in UTC-5.
	service.now = func() time.Time { return time.Date(2024, time.May, 16, 2, 0, 0, 0, time.UTC) }
	// DATE columns come back as UTC midnight.
	stored := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
	rewardRepo.EXPECT().GetLastClaim(gomock.Any(), userID).Return(&domain.RewardClaim{Date: stored, Amount: 25}, nil)
	rewardRepo.EXPECT().GetClaimedDates(gomock.Any(), userID).Return([]domain.RewardClaim{{Date: stored, Amount: 25}}, nil)

	status, err := service.GetStatus(context.Background(), userID)
	require.NoError(t, err)

	assert.False(t, status.CanClaimToday)
	assert.Equal(t, 25, status.TodayReward)
	require.NotNil(t, status.LastClaim)
	assert.Equal(t, "2024-05-15", status.LastClaim.Date.Format(time.DateOnly))
	assert.Equal(t, loc, status.LastClaim.Date.Location())
	require.Len(t, status.ClaimedDates, 1)
	assert.True(t, status.ClaimedDates[0].Date.Equal(time.Date(2024, time.May, 15, 0, 0, 0, 0, loc)))
}

func TestUserExists(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name        string
		userID      uuid.UUID
		prepareMock func()
		expected    bool
		expectedErr error
	}{
		{
			name:   "Existing user",
			userID: userID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
			},
			expected: true,
		},
		{
			name:   "Unknown user",
			userID: userID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			name:   "Lookup failure",
			userID: userID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, errors.New("timeout"))
			},
			expectedErr: errors.New("timeout"),
		},
		{
			name:        "Nil user ID",
			userID:      uuid.Nil,
			prepareMock: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			exists, err := service.UserExists(context.Background(), tt.userID)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

// memStore keeps users and ledgers in memory and applies a transaction's
// writes only when it returns without error.
type memStore struct {
	mu         sync.Mutex
	coins      map[uuid.UUID]int
	claims     map[uuid.UUID]map[time.Time]int
	staged     *memStore
	failCredit bool
}

func newMemStore() *memStore {
	return &memStore{
		coins:  make(map[uuid.UUID]int),
		claims: make(map[uuid.UUID]map[time.Time]int),
	}
}

func (m *memStore) clone() *memStore {
	c := newMemStore()
	for id, coins := range m.coins {
		c.coins[id] = coins
	}
	for id, days := range m.claims {
		c.claims[id] = make(map[time.Time]int, len(days))
		for d, a := range days {
			c.claims[id][d] = a
		}
	}
	return c
}

func (m *memStore) view() *memStore {
	if m.staged != nil {
		return m.staged
	}
	return m
}

func (m *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staged = m.clone()
	defer func() { m.staged = nil }()
	if err := fn(ctx); err != nil {
		return err
	}
	m.coins, m.claims = m.staged.coins, m.staged.claims
	return nil
}

func (m *memStore) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	coins, ok := m.view().coins[id]
	if !ok {
		return nil, nil
	}
	return &domain.User{ID: id, Coins: coins}, nil
}

func (m *memStore) LockByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.FindByID(ctx, id)
}

func (m *memStore) CreditReward(_ context.Context, id uuid.UUID, amount int, _ time.Time) (int, error) {
	if m.failCredit {
		return 0, errors.New("write failed")
	}
	v := m.view()
	v.coins[id] += amount
	return v.coins[id], nil
}

func (m *memStore) GetLastClaim(_ context.Context, userID uuid.UUID) (*domain.RewardClaim, error) {
	var last *domain.RewardClaim
	for d, a := range m.view().claims[userID] {
		if last == nil || d.After(last.Date) {
			last = &domain.RewardClaim{Date: d, Amount: a}
		}
	}
	return last, nil
}

func (m *memStore) GetClaimedDates(_ context.Context, userID uuid.UUID) ([]domain.RewardClaim, error) {
	var out []domain.RewardClaim
	for d, a := range m.view().claims[userID] {
		out = append(out, domain.RewardClaim{Date: d, Amount: a})
	}
	return out, nil
}

func (m *memStore) HasClaimed(_ context.Context, userID uuid.UUID, day time.Time) (bool, error) {
	_, ok := m.view().claims[userID][day]
	return ok, nil
}

func (m *memStore) AppendClaim(_ context.Context, userID uuid.UUID, day time.Time, amount int) (*domain.RewardLedger, error) {
	v := m.view()
	if v.claims[userID] == nil {
		v.claims[userID] = make(map[time.Time]int)
	}
	if _, ok := v.claims[userID][day]; ok {
		return nil, domain.ErrAlreadyClaimed
	}
	v.claims[userID][day] = amount
	return &domain.RewardLedger{UserID: userID}, nil
}

func TestClaimDailyReward_Scenarios(t *testing.T) {
	store := newMemStore()
	service := New(store, store, store, time.UTC)
	userID := uuid.New()
	store.coins[userID] = domain.InitialCoins
	ctx := context.Background()

	// A: first weekday claim.
	result, err := service.ClaimDailyReward(ctx, userID, 25, wednesday.Add(10*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 625, result.NewCoins)
	assert.Equal(t, wednesday, result.ClaimedDate)

	// B: same day again, with any amount.
	for _, amount := range []int{25, 50, 0} {
		_, err = service.ClaimDailyReward(ctx, userID, amount, wednesday.Add(20*time.Hour))
		assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	}
	assert.Equal(t, 625, store.coins[userID])

	// C: weekday amount on a weekend day.
	_, err = service.ClaimDailyReward(ctx, userID, 25, saturday)
	var mismatch *domain.AmountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 50, mismatch.Expected)
	assert.Equal(t, 25, mismatch.Received)
	assert.Equal(t, 625, store.coins[userID])
	assert.Len(t, store.claims[userID], 1)

	// D: unknown user on both the read and the write.
	unknown := uuid.New()
	_, err = service.ClaimDailyReward(ctx, unknown, 25, wednesday)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = service.GetStatus(ctx, unknown)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestClaimDailyReward_FailedWriteLeavesNoPartialState(t *testing.T) {
	store := newMemStore()
	service := New(store, store, store, time.UTC)
	userID := uuid.New()
	store.coins[userID] = domain.InitialCoins
	ctx := context.Background()

	store.failCredit = true
	_, err := service.ClaimDailyReward(ctx, userID, 25, wednesday)
	require.Error(t, err)
	assert.Empty(t, store.claims[userID])
	assert.Equal(t, domain.InitialCoins, store.coins[userID])

	store.failCredit = false
	result, err := service.ClaimDailyReward(ctx, userID, 25, wednesday)
	require.NoError(t, err)
	assert.Equal(t, 625, result.NewCoins)

	_, err = service.ClaimDailyReward(ctx, userID, 25, wednesday)
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestClaimDailyReward_ConcurrentSameDay(t *testing.T) {
	store := newMemStore()
	service := New(store, store, store, time.UTC)
	userID := uuid.New()
	store.coins[userID] = domain.InitialCoins

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ClaimDailyReward(context.Background(), userID, 25, wednesday)
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 625, store.coins[userID])
}

func TestClaimDailyReward_PolicyAcrossWeek(t *testing.T) {
	store := newMemStore()
	service := New(store, store, store, time.UTC)
	userID := uuid.New()
	store.coins[userID] = 0
	monday := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)

	total := 0
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		amount := domain.RewardAmountFor(day)
		result, err := service.ClaimDailyReward(context.Background(), userID, amount, day)
		require.NoError(t, err)
		total += amount
		assert.Equal(t, total, result.NewCoins)
	}
	assert.Equal(t, 5*25+2*50, total)
}
