package rating_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nudge/pkg/rating"
	"github.com/umputun/nudge/pkg/rating/mocks"
)

// fakeState backs a StoreMock with real maps so tests can run full flows
type fakeState struct {
	bools map[string]bool
	ints  map[string]int
	longs map[string]int64
}

func newFakeState() *fakeState {
	return &fakeState{bools: map[string]bool{}, ints: map[string]int{}, longs: map[string]int64{}}
}

func newStoreMock(st *fakeState) *mocks.StoreMock {
	return &mocks.StoreMock{
		GetBoolFunc: func(_ context.Context, key string) (bool, bool, error) {
			v, ok := st.bools[key]
			return v, ok, nil
		},
		PutBoolFunc: func(_ context.Context, key string, val bool) error {
			st.bools[key] = val
			return nil
		},
		GetIntFunc: func(_ context.Context, key string) (int, bool, error) {
			v, ok := st.ints[key]
			return v, ok, nil
		},
		PutIntFunc: func(_ context.Context, key string, val int) error {
			st.ints[key] = val
			return nil
		},
		GetInt64Func: func(_ context.Context, key string) (int64, bool, error) {
			v, ok := st.longs[key]
			return v, ok, nil
		},
		PutInt64Func: func(_ context.Context, key string, val int64) error {
			st.longs[key] = val
			return nil
		},
		DeleteFunc: func(_ context.Context, key string) error {
			delete(st.bools, key)
			delete(st.ints, key)
			delete(st.longs, key)
			return nil
		},
	}
}

// startOfDayMillis truncates t to its calendar day, as the scheduler stores it
func startOfDayMillis(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).UnixMilli()
}

func TestService_LogUserAction_Monotonic(t *testing.T) {
	st := newFakeState()
	svc := rating.NewService(newStoreMock(st), &mocks.PresenterMock{})

	for i := 1; i <= 7; i++ {
		require.NoError(t, svc.LogUserAction(context.Background()))
		assert.Equal(t, i, st.ints["review_actions_count"])
	}
}

func TestService_StartRatingFlow_ReviewedGate(t *testing.T) {
	st := newFakeState()
	st.bools["has_reviewed_app"] = true
	st.ints["review_actions_count"] = 100 // other state must not matter

	presenter := &mocks.PresenterMock{}
	svc := rating.NewService(newStoreMock(st), presenter)

	var events []rating.Event
	err := svc.StartRatingFlow(context.Background(), func(e rating.Event) { events = append(events, e) })
	require.NoError(t, err)

	assert.Empty(t, events, "listener must not fire once reviewed")
	assert.Empty(t, presenter.ShowCalls(), "no dialog once reviewed")
}

func TestService_StartRatingFlow_SnoozeGate(t *testing.T) {
	st := newFakeState()
	st.ints["review_actions_count"] = 10
	// prompted 10 days ago, snooze is 30
	lastPrompt := startOfDayMillis(time.Now().AddDate(0, 0, -10))
	st.longs["last_prompt_for_review_millis"] = lastPrompt

	presenter := &mocks.PresenterMock{}
	svc := rating.NewService(newStoreMock(st), presenter)
	require.NoError(t, svc.Configure(rating.Config{Snooze: 30 * 24 * time.Hour, MinActions: 3}))

	err := svc.StartRatingFlow(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, presenter.ShowCalls(), "no dialog inside snooze window")

	// the recorded attempt date must not move on a gated attempt
	assert.Equal(t, lastPrompt, st.longs["last_prompt_for_review_millis"])
}

func TestService_StartRatingFlow_SnoozeElapsed(t *testing.T) {
	st := newFakeState()
	st.ints["review_actions_count"] = 10
	st.longs["last_prompt_for_review_millis"] = startOfDayMillis(time.Now().AddDate(0, 0, -31))

	presenter := &mocks.PresenterMock{
		ShowFunc: func(ctx context.Context, content rating.Content) (rating.Outcome, error) {
			return rating.Positive, nil
		},
	}
	svc := rating.NewService(newStoreMock(st), presenter)
	require.NoError(t, svc.Configure(rating.Config{Snooze: 30 * 24 * time.Hour, MinActions: 3}))

	err := svc.StartRatingFlow(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, presenter.ShowCalls(), 1, "snooze elapsed, dialog expected")
}

func TestService_StartRatingFlow_ThresholdGate(t *testing.T) {
	st := newFakeState()
	st.ints["review_actions_count"] = 2

	presenter := &mocks.PresenterMock{
		ShowFunc: func(ctx context.Context, content rating.Content) (rating.Outcome, error) {
			return rating.Positive, nil
		},
	}
	svc := rating.NewService(newStoreMock(st), presenter)
	require.NoError(t, svc.Configure(rating.Config{MinActions: 5}))

	err := svc.StartRatingFlow(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, presenter.ShowCalls(), "threshold not reached")

	// three more actions bring the count to the threshold
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.LogUserAction(context.Background()))
	}
	require.Equal(t, 5, st.ints["review_actions_count"])

	err = svc.StartRatingFlow(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, presenter.ShowCalls(), 1, "threshold reached, dialog expected")
}

func TestService_StartRatingFlow_PositiveTerminal(t *testing.T) {
	st := newFakeState()
	st.ints["review_actions_count"] = 5

	presenter := &mocks.PresenterMock{
		ShowFunc: func(ctx context.Context, content rating.Content) (rating.Outcome, error) {
			return rating.Positive, nil
		},
	}
	svc := rating.NewService(newStoreMock(st), presenter)

	var events []rating.Event
	err := svc.StartRatingFlow(context.Background(), func(e rating.Event) { events = append(events, e) })
	require.NoError(t, err)

	assert.Equal(t, []rating.Event{rating.EventPrimaryPositive}, events)
	assert.True(t, st.bools["has_reviewed_app"])
	assert.Len(t, presenter.ShowCalls(), 1, "no secondary dialog on positive")

	// all subsequent flows are no-ops regardless of counters
	st.ints["review_actions_count"] = 1000
	delete(st.longs, "last_prompt_for_review_millis")

	events = nil
	err = svc.StartRatingFlow(context.Background(), func(e rating.Event) { events = append(events, e) })
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Len(t, presenter.ShowCalls(), 1, "no further dialogs once reviewed")
}

func TestService_StartRatingFlow_NegativeCascade(t *testing.T) {
	tests := []struct {
		name      string
		secondary rating.Outcome
		want      []rating.Event
	}{
		{"secondary positive", rating.Positive, []rating.Event{rating.EventPrimaryNegative, rating.EventSecondaryPositive}},
		{"secondary negative", rating.Negative, []rating.Event{rating.EventPrimaryNegative, rating.EventSecondaryNegative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeState()
			st.ints["review_actions_count"] = 5

			calls := 0
			presenter := &mocks.PresenterMock{
				ShowFunc: func(ctx context.Context, content rating.Content) (rating.Outcome, error) {
					calls++
					if calls == 1 {
						return rating.Negative, nil
					}
					return tt.secondary, nil
				},
			}
			svc := rating.NewService(newStoreMock(st), presenter)

			var events []rating.Event
			err := svc.StartRatingFlow(context.Background(), func(e rating.Event) { events = append(events, e) })
			require.NoError(t, err)

			assert.Equal(t, tt.want, events)
			assert.False(t, st.bools["has_reviewed_app"], "declined primary never sets reviewed")

			shows := presenter.ShowCalls()
			require.Len(t, shows, 2)
			assert.Equal(t, rating.DefaultPrimary, shows[0].Content)
			assert.Equal(t, rating.DefaultSecondary, shows[1].Content)
		})
	}
}

func TestService_StartRatingFlow_TimestampBeforeDialog(t *testing.T) {
	st := newFakeState()
	st.ints["review_actions_count"] = 5

	// presenter never resolves, simulates the caller tearing down mid-dialog
	presenter := &mocks.PresenterMock{
		ShowFunc: func(ctx context.Context, content rating.Content) (rating.Outcome, error) {
			return rating.Negative, ctx.Err()
		},
	}
	svc := rating.NewService(newStoreMock(st), presenter)
	require.NoError(t, svc.Configure(rating.Config{Snooze: 30 * 24 * time.Hour, MinActions: 3}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	before := startOfDayMillis(time.Now())
	var events []rating.Event
	err := svc.StartRatingFlow(ctx, func(e rating.Event) { events = append(events, e) })
	after := startOfDayMillis(time.Now())

	require.NoError(t, err, "cancellation terminates the flow silently")
	assert.Empty(t, events, "no listener events for a cancelled stage")

	// the attempt date was written before the dialog and survives cancellation
	require.Contains(t, st.longs, "last_prompt_for_review_millis")
	got := st.longs["last_prompt_for_review_millis"]
	assert.True(t, got == before || got == after, "recorded date must be the flow's start of day")

	// a retry within the snooze window is now gated
	err = svc.StartRatingFlow(context.Background(), func(e rating.Event) { events = append(events, e) })
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Len(t, presenter.ShowCalls(), 1, "second attempt gated by the recorded date")
}

func TestService_LogUserAction_NotBlockedByPendingDialog(t *testing.T) {
	st := newFakeState()
	st.ints["review_actions_count"] = 5

	release := make(chan rating.Outcome)
	presenter := &mocks.PresenterMock{
		ShowFunc: func(ctx context.Context, content rating.Content) (rating.Outcome, error) {
			select {
			case outcome := <-release:
				return outcome, nil
			case <-ctx.Done():
				return rating.Negative, ctx.Err()
			}
		},
	}
	svc := rating.NewService(newStoreMock(st), presenter)

	flowDone := make(chan error, 1)
	go func() { flowDone <- svc.StartRatingFlow(context.Background(), nil) }()
	require.Eventually(t, func() bool { return len(presenter.ShowCalls()) == 1 },
		time.Second, 10*time.Millisecond, "dialog not shown")

	// counter and state snapshot must not wait for the user's answer
	logged := make(chan error, 1)
	go func() { logged <- svc.LogUserAction(context.Background()) }()
	select {
	case err := <-logged:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("LogUserAction blocked behind a pending dialog")
	}

	stateDone := make(chan error, 1)
	go func() {
		_, err := svc.State(context.Background())
		stateDone <- err
	}()
	select {
	case err := <-stateDone:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("State blocked behind a pending dialog")
	}

	release <- rating.Positive
	require.NoError(t, <-flowDone)
	assert.True(t, st.bools["has_reviewed_app"])
}

func TestService_StartRatingFlow_PresenterError(t *testing.T) {
	st := newFakeState()
	st.ints["review_actions_count"] = 5

	presenter := &mocks.PresenterMock{
		ShowFunc: func(ctx context.Context, content rating.Content) (rating.Outcome, error) {
			return rating.Negative, errors.New("display failed")
		},
	}
	svc := rating.NewService(newStoreMock(st), presenter)

	err := svc.StartRatingFlow(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display failed")
}

func TestService_StartRatingFlow_StoreError(t *testing.T) {
	storeErr := errors.New("storage down")
	store := &mocks.StoreMock{
		GetBoolFunc: func(ctx context.Context, key string) (bool, bool, error) {
			return false, false, storeErr
		},
	}
	svc := rating.NewService(store, &mocks.PresenterMock{})

	err := svc.StartRatingFlow(context.Background(), nil)
	assert.Equal(t, storeErr, err, "collaborator errors pass through untranslated")
}

func TestService_State(t *testing.T) {
	lastPrompt := startOfDayMillis(time.Now())

	st := newFakeState()
	st.ints["review_actions_count"] = 4
	st.longs["last_prompt_for_review_millis"] = lastPrompt

	svc := rating.NewService(newStoreMock(st), &mocks.PresenterMock{})

	state, err := svc.State(context.Background())
	require.NoError(t, err)
	assert.False(t, state.Reviewed)
	assert.Equal(t, 4, state.Actions)
	require.NotNil(t, state.LastPrompt)
	assert.Equal(t, lastPrompt, state.LastPrompt.UnixMilli())
}

func TestService_Reset(t *testing.T) {
	st := newFakeState()
	st.bools["has_reviewed_app"] = true
	st.ints["review_actions_count"] = 9
	st.longs["last_prompt_for_review_millis"] = 12345

	svc := rating.NewService(newStoreMock(st), &mocks.PresenterMock{})
	require.NoError(t, svc.Reset(context.Background()))

	state, err := svc.State(context.Background())
	require.NoError(t, err)
	assert.False(t, state.Reviewed)
	assert.Zero(t, state.Actions)
	assert.Nil(t, state.LastPrompt)
}
