// ABOUTME: Live workout session state machine: timer, set entries, completion.
// ABOUTME: Idle -> Running <-> Paused -> Completed; completion inserts exactly once.
package workout

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Placeholder is the sentinel a set field holds before the user enters a
// value. A set qualifies only once both fields are non-empty and not the
// placeholder.
const Placeholder = "-"

// minActiveSeconds is the inclusive lower bound of elapsed active time for a
// session to complete.
const minActiveSeconds = 60

// State is the lifecycle position of a Session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

var (
	// ErrSessionTooShort rejects completion below the minimum active duration.
	ErrSessionTooShort = errors.New("session shorter than one minute")
	// ErrInvalidState rejects a transition the current state does not allow.
	ErrInvalidState = errors.New("invalid session state")
)

// MissingSetError reports the first exercise that has no qualifying set at
// completion time.
type MissingSetError struct {
	Exercise string
}

func (e *MissingSetError) Error() string {
	return fmt.Sprintf("exercise %q has no set with weight and reps entered", e.Exercise)
}

// SetEntry is one recorded (weight, reps) attempt. Values stay strings, as
// entered; Placeholder marks a field not yet filled in.
type SetEntry struct {
	Weight string
	Reps   string
}

// qualifies reports whether the set has both fields actually entered.
func (s SetEntry) qualifies() bool {
	return s.Weight != "" && s.Weight != Placeholder && s.Reps != "" && s.Reps != Placeholder
}

// ExerciseLog tracks the set entries for one exercise of the routine.
type ExerciseLog struct {
	Name     string
	Category string
	Sets     []SetEntry
}

// SessionStore is the single write the machine needs from the repository.
type SessionStore interface {
	InsertCompletedSession(userID, routineName string, startMillis, endMillis int64) error
}

// Session drives one timed execution of a routine. All methods are safe for
// use from the tick goroutine and a caller goroutine concurrently. A Session
// is single-use: after Complete or Abandon a new one must be constructed.
type Session struct {
	mu sync.Mutex

	store       SessionStore
	userID      string
	routineName string
	exercises   []*ExerciseLog

	state       State
	elapsedSecs int
	startTime   time.Time
	endTime     time.Time

	done   chan struct{}
	now    func() time.Time
	onTick func(elapsedSecs int)
}

// NewSession builds an Idle session for the given user and routine. Each
// exercise starts with one placeholder set row.
func NewSession(store SessionStore, userID, routineName string, exercises []*ExerciseLog) *Session {
	for _, ex := range exercises {
		if len(ex.Sets) == 0 {
			ex.Sets = []SetEntry{{Weight: Placeholder, Reps: Placeholder}}
		}
	}
	return &Session{
		store:       store,
		userID:      userID,
		routineName: routineName,
		exercises:   exercises,
		state:       StateIdle,
		done:        make(chan struct{}),
		now:         time.Now,
	}
}

// OnTick registers a callback invoked once per active second, for live
// display. Must be called before Start.
func (s *Session) OnTick(fn func(elapsedSecs int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = fn
}

// Start begins the session: records the start time and launches the
// one-second tick loop. Only valid from Idle, exactly once.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return fmt.Errorf("start from %s: %w", s.state, ErrInvalidState)
	}
	s.startTime = s.now()
	s.state = StateRunning
	go s.tickLoop(s.done)
	return nil
}

// tickLoop increments elapsed active time once per second while Running.
// It exits when done closes, on completion or abandonment. The channel is
// passed in rather than read from the struct: a failed completion replaces
// s.done with a fresh channel, and each loop must keep watching the one it
// was started with so exactly one loop runs at a time.
func (s *Session) tickLoop(done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Session) tick() {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return
	}
	s.elapsedSecs++
	elapsed := s.elapsedSecs
	fn := s.onTick
	s.mu.Unlock()

	if fn != nil {
		fn(elapsed)
	}
}

// Pause freezes the timer. No time accrues while paused.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return fmt.Errorf("pause from %s: %w", s.state, ErrInvalidState)
	}
	s.state = StatePaused
	return nil
}

// Resume continues a paused session.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePaused {
		return fmt.Errorf("resume from %s: %w", s.state, ErrInvalidState)
	}
	s.state = StateRunning
	return nil
}

// State returns the current lifecycle position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns accumulated active seconds.
func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsedSecs
}

// Exercises returns the live exercise logs for display.
func (s *Session) Exercises() []*ExerciseLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exercises
}

// AddSet appends a fresh placeholder set row to an exercise.
func (s *Session) AddSet(exercise int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if exercise < 0 || exercise >= len(s.exercises) {
		return fmt.Errorf("no exercise at index %d", exercise)
	}
	ex := s.exercises[exercise]
	ex.Sets = append(ex.Sets, SetEntry{Weight: Placeholder, Reps: Placeholder})
	return nil
}

// RecordSet fills in a set row for an exercise.
func (s *Session) RecordSet(exercise, set int, weight, reps string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if exercise < 0 || exercise >= len(s.exercises) {
		return fmt.Errorf("no exercise at index %d", exercise)
	}
	ex := s.exercises[exercise]
	if set < 0 || set >= len(ex.Sets) {
		return fmt.Errorf("%s: no set at index %d", ex.Name, set)
	}
	ex.Sets[set] = SetEntry{Weight: weight, Reps: reps}
	return nil
}

// Complete validates and finishes the session. Both gates must hold: at
// least the minimum active duration, and at least one qualifying set for
// every exercise. On rejection the state is left unchanged and the timer
// keeps its cadence. On success the tick loop stops, the end time is
// recorded, the row is inserted exactly once, and the session is terminal.
func (s *Session) Complete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning && s.state != StatePaused {
		return fmt.Errorf("complete from %s: %w", s.state, ErrInvalidState)
	}
	if s.elapsedSecs < minActiveSeconds {
		return ErrSessionTooShort
	}
	for _, ex := range s.exercises {
		if !hasQualifyingSet(ex) {
			return &MissingSetError{Exercise: ex.Name}
		}
	}

	close(s.done)
	s.endTime = s.now()
	if err := s.store.InsertCompletedSession(
		s.userID, s.routineName, s.startTime.UnixMilli(), s.endTime.UnixMilli(),
	); err != nil {
		// The timer is already stopped; the session stays non-terminal so
		// the caller may retry the write.
		s.done = make(chan struct{})
		go s.tickLoop(s.done)
		return fmt.Errorf("record session: %w", err)
	}
	s.state = StateCompleted
	return nil
}

// Abandon stops the tick loop without persisting anything. Abandoning is
// how a user walks away mid-session: the in-memory timer state is simply
// discarded and no partial session is ever written. Safe to call from any
// state, including repeatedly.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func hasQualifyingSet(ex *ExerciseLog) bool {
	for _, set := range ex.Sets {
		if set.qualifies() {
			return true
		}
	}
	return false
}

// FormatElapsed renders seconds as MM:SS for the timer display.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
