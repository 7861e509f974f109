// Package rating decides when to ask the user for an app rating. It keeps a
// persistent action counter, snoozes re-prompting and runs a two-stage dialog
// flow (rate-us first, feedback fallback on decline).
package rating

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/presenter.go -pkg mocks -skip-ensure -fmt goimports . Presenter

// persisted keys, fixed names are part of the storage format
const (
	keyReviewed   = "has_reviewed_app"
	keyLastPrompt = "last_prompt_for_review_millis"
	keyActions    = "review_actions_count"
)

// default gating values
const (
	DefaultSnooze     = 180 * 24 * time.Hour
	DefaultMinActions = 3
)

// built-in prompt presets used when the host does not override them
var (
	DefaultPrimary = Content{
		Title:    "Enjoying the app?",
		Message:  "Your rating helps others find it.",
		Positive: "Rate it",
		Negative: "Not really",
	}
	DefaultSecondary = Content{
		Title:    "What can we do better?",
		Message:  "We would love to hear what went wrong.",
		Positive: "Send feedback",
		Negative: "No thanks",
	}
)

// Content describes a two-button dialog, Message is optional
type Content struct {
	Title    string `json:"title"`
	Message  string `json:"message,omitempty"`
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}

// Outcome is the user's choice in a presented dialog
type Outcome int

// dialog outcomes
const (
	Negative Outcome = iota
	Positive
)

// Event reports a resolved stage of the rating flow to the listener
type Event int

// flow events, secondary events fire only after a negative primary outcome
const (
	EventPrimaryPositive Event = iota
	EventPrimaryNegative
	EventSecondaryPositive
	EventSecondaryNegative
)

// String returns the event name as used in logs and the HTTP API
func (e Event) String() string {
	switch e {
	case EventPrimaryPositive:
		return "primary_positive"
	case EventPrimaryNegative:
		return "primary_negative"
	case EventSecondaryPositive:
		return "secondary_positive"
	case EventSecondaryNegative:
		return "secondary_negative"
	}
	return "unknown"
}

// Listener receives flow events, invoked once per resolved dialog stage
type Listener func(Event)

// Store is the key-value collaborator holding the scheduler's persistent
// state. Lookups report presence explicitly, missing keys are not errors.
// Failure semantics belong to the implementation, the scheduler applies no
// retry and passes errors through as is.
type Store interface {
	GetBool(ctx context.Context, key string) (val, found bool, err error)
	PutBool(ctx context.Context, key string, val bool) error
	GetInt(ctx context.Context, key string) (val int, found bool, err error)
	PutInt(ctx context.Context, key string, val int) error
	GetInt64(ctx context.Context, key string) (val int64, found bool, err error)
	PutInt64(ctx context.Context, key string, val int64) error
	Delete(ctx context.Context, key string) error
}

// Presenter shows a two-button dialog and blocks until the user picks a side
// or ctx is cancelled. Cancellation must dismiss the visible dialog and
// return ctx's error.
type Presenter interface {
	Show(ctx context.Context, content Content) (Outcome, error)
}

// Config holds the scheduler's in-memory configuration
type Config struct {
	Primary    Content       // initial "do you like the app" prompt
	Secondary  Content       // feedback prompt shown after a negative response
	Snooze     time.Duration // minimum time between prompt attempts, whole days
	MinActions int           // logged actions required before any prompt
}

// State is a snapshot of the persisted scheduler state
type State struct {
	Reviewed   bool       `json:"reviewed"`
	Actions    int        `json:"actions"`
	LastPrompt *time.Time `json:"last_prompt,omitempty"`
}

// Service schedules rating prompts. Two locks split the concerns: flowMu
// serializes whole prompt flows so at most one dialog is pending per instance,
// and mu guards config and persisted state access. Dialog waits happen outside
// mu, LogUserAction and State stay responsive while a prompt is on screen.
type Service struct {
	store     Store
	presenter Presenter

	flowMu sync.Mutex
	mu     sync.Mutex
	cfg    Config

	now func() time.Time // injected in tests
}

// NewService creates a scheduler with default configuration over the given
// store and presenter
func NewService(store Store, presenter Presenter) *Service {
	return &Service{
		store:     store,
		presenter: presenter,
		cfg: Config{
			Primary:    DefaultPrimary,
			Secondary:  DefaultSecondary,
			Snooze:     DefaultSnooze,
			MinActions: DefaultMinActions,
		},
		now: time.Now,
	}
}

// Configure overwrites the in-memory configuration. Zero Snooze, MinActions
// or empty prompt contents fall back to the defaults, negative values are
// rejected. No effect on persistent state.
func (s *Service) Configure(cfg Config) error {
	if cfg.Snooze < 0 {
		return errors.New("negative snooze duration")
	}
	if cfg.MinActions < 0 {
		return errors.New("negative min actions threshold")
	}

	if cfg.Snooze == 0 {
		cfg.Snooze = DefaultSnooze
	}
	if cfg.MinActions == 0 {
		cfg.MinActions = DefaultMinActions
	}
	if cfg.Primary == (Content{}) {
		cfg.Primary = DefaultPrimary
	}
	if cfg.Secondary == (Content{}) {
		cfg.Secondary = DefaultSecondary
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

// config returns a copy of the current configuration
func (s *Service) config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// LogUserAction increments the persistent action counter by one
func (s *Service) LogUserAction(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, _, err := s.store.GetInt(ctx, keyActions)
	if err != nil {
		return err
	}
	return s.store.PutInt(ctx, keyActions, count+1)
}

// StartRatingFlow runs one prompt flow: checks the reviewed flag, the snooze
// window and the action threshold, and on pass records the attempt date and
// presents the primary dialog, cascading to the secondary one on a negative
// answer. Gated attempts return early with no side effects and no listener
// events. Cancelling ctx while a dialog is pending abandons the flow
// silently, the already recorded attempt date stays.
func (s *Service) StartRatingFlow(ctx context.Context, listener Listener) error {
	s.flowMu.Lock()
	defer s.flowMu.Unlock()

	cfg := s.config()

	pass, err := s.passGates(ctx, cfg)
	if err != nil || !pass {
		return err
	}

	outcome, err := s.presenter.Show(ctx, cfg.Primary)
	if err != nil {
		return ignoreCancel(err)
	}

	if outcome == Positive {
		s.notify(listener, EventPrimaryPositive)
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.store.PutBool(ctx, keyReviewed, true)
	}

	s.notify(listener, EventPrimaryNegative)

	outcome, err = s.presenter.Show(ctx, cfg.Secondary)
	if err != nil {
		return ignoreCancel(err)
	}
	if outcome == Positive {
		s.notify(listener, EventSecondaryPositive)
	} else {
		s.notify(listener, EventSecondaryNegative)
	}
	return nil
}

// passGates checks the reviewed flag, the snooze window and the action
// threshold, and on pass records the attempt date. Runs under the state lock,
// the lock is released before any dialog is shown.
func (s *Service) passGates(ctx context.Context, cfg Config) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviewed, _, err := s.store.GetBool(ctx, keyReviewed)
	if err != nil {
		return false, err
	}
	if reviewed {
		lgr.Printf("[DEBUG] rating flow skipped, already reviewed")
		return false, nil
	}

	today := startOfDay(s.now())

	lastMillis, found, err := s.store.GetInt64(ctx, keyLastPrompt)
	if err != nil {
		return false, err
	}
	if found {
		elapsedDays := daysBetween(time.UnixMilli(lastMillis), today)
		snoozeDays := int(cfg.Snooze / (24 * time.Hour))
		if elapsedDays < snoozeDays {
			lgr.Printf("[DEBUG] rating flow snoozed, %d of %d days elapsed", elapsedDays, snoozeDays)
			return false, nil
		}
	}

	count, _, err := s.store.GetInt(ctx, keyActions)
	if err != nil {
		return false, err
	}
	if count < cfg.MinActions {
		lgr.Printf("[DEBUG] rating flow skipped, %d of %d actions logged", count, cfg.MinActions)
		return false, nil
	}

	// record the attempt before any dialog is shown, a cancelled or
	// unresolved dialog still counts toward the snooze window
	if err := s.store.PutInt64(ctx, keyLastPrompt, today.UnixMilli()); err != nil {
		return false, err
	}
	return true, nil
}

// State returns a snapshot of the persisted scheduler state
func (s *Service) State(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := State{}
	reviewed, _, err := s.store.GetBool(ctx, keyReviewed)
	if err != nil {
		return res, err
	}
	res.Reviewed = reviewed

	count, _, err := s.store.GetInt(ctx, keyActions)
	if err != nil {
		return res, err
	}
	res.Actions = count

	millis, found, err := s.store.GetInt64(ctx, keyLastPrompt)
	if err != nil {
		return res, err
	}
	if found {
		t := time.UnixMilli(millis)
		res.LastPrompt = &t
	}
	return res, nil
}

// Reset clears all persisted scheduler state, counters return to defaults
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{keyReviewed, keyLastPrompt, keyActions} {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	lgr.Printf("[INFO] rating state reset")
	return nil
}

func (s *Service) notify(listener Listener, e Event) {
	lgr.Printf("[INFO] rating flow event %s", e)
	if listener != nil {
		listener(e)
	}
}

// ignoreCancel drops context cancellation, a dismissed dialog ends the flow
// silently. Other presenter failures surface to the caller.
func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b. Days are compared by date, a
// DST transition inside the span does not shift the count.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
