package status

import "sync"

// GoToPhase is the progress of a go-to-point navigation.
type GoToPhase uint8

const (
	GoToInactive GoToPhase = iota
	GoToPending
	GoToActive
	GoToRestoring
)

func (p GoToPhase) String() string {
	switch p {
	case GoToInactive:
		return "INACTIVE"
	case GoToPending:
		return "PENDING"
	case GoToActive:
		return "ACTIVE"
	case GoToRestoring:
		return "RESTORING"
	default:
		return "UNKNOWN"
	}
}

// GoToTarget is the point a go-to navigation is heading for.
type GoToTarget struct {
	X     int
	Y     int
	Phase GoToPhase
}

// SessionSnapshot is the persistable part of SessionState.
type SessionSnapshot struct {
	CleanupStarted          bool            `json:"cleanup_started"`
	CleanupCompleted        bool            `json:"cleanup_completed"`
	PreviousSelfCleanArea   int             `json:"previous_self_clean_area,omitempty"`
	PreviousSelfCleanTime   int             `json:"previous_self_clean_time,omitempty"`
	PreviousCleanGeniusMode CleanGeniusMode `json:"previous_cleangenius_mode"`
}

// SessionState holds engine-owned fields that are not device properties.
// Only the command layer and event handlers mutate it.
type SessionState struct {
	mu sync.RWMutex

	goTo             *GoToTarget
	cleanupStarted   bool
	cleanupCompleted bool

	previousSelfCleanArea   int
	previousSelfCleanTime   int
	previousCleanGeniusMode CleanGeniusMode

	lastTaskStatus TaskStatus
}

// NewSessionState creates an empty session state.
func NewSessionState() *SessionState {
	return &SessionState{
		previousCleanGeniusMode: CleanGeniusModeUnknown,
		lastTaskStatus:          TaskStatusUnknown,
	}
}

// GoTo returns the active go-to target, if any.
func (s *SessionState) GoTo() (GoToTarget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.goTo == nil {
		return GoToTarget{}, false
	}
	return *s.goTo, true
}

// SetGoTo replaces the go-to target. A nil target clears it.
func (s *SessionState) SetGoTo(t *GoToTarget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == nil {
		s.goTo = nil
		return
	}
	cp := *t
	s.goTo = &cp
}

// SetGoToPhase updates the phase of the active target.
func (s *SessionState) SetGoToPhase(p GoToPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.goTo != nil {
		s.goTo.Phase = p
	}
}

// Cleanup returns whether a cleaning job was seen starting and finishing.
func (s *SessionState) Cleanup() (started, completed bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cleanupStarted, s.cleanupCompleted
}

// SetCleanup records cleanup progress.
func (s *SessionState) SetCleanup(started, completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanupStarted = started
	s.cleanupCompleted = completed
}

// PreviousSelfClean returns the remembered self-clean area and time.
func (s *SessionState) PreviousSelfClean() (area, minutes int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.previousSelfCleanArea, s.previousSelfCleanTime
}

// SetPreviousSelfCleanArea remembers the self-clean area.
func (s *SessionState) SetPreviousSelfCleanArea(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previousSelfCleanArea = v
}

// SetPreviousSelfCleanTime remembers the self-clean time.
func (s *SessionState) SetPreviousSelfCleanTime(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previousSelfCleanTime = v
}

// PreviousCleanGeniusMode returns the CleanGenius mode that was active
// before a manual setting turned it off.
func (s *SessionState) PreviousCleanGeniusMode() (CleanGeniusMode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.previousCleanGeniusMode, s.previousCleanGeniusMode != CleanGeniusModeUnknown
}

// SetPreviousCleanGeniusMode remembers a CleanGenius mode.
func (s *SessionState) SetPreviousCleanGeniusMode(m CleanGeniusMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previousCleanGeniusMode = m
}

// SwapTaskStatus stores ts and returns the previously observed value.
func (s *SessionState) SwapTaskStatus(ts TaskStatus) TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.lastTaskStatus
	s.lastTaskStatus = ts
	return prev
}

// Snapshot exports the persistable fields.
func (s *SessionState) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionSnapshot{
		CleanupStarted:          s.cleanupStarted,
		CleanupCompleted:        s.cleanupCompleted,
		PreviousSelfCleanArea:   s.previousSelfCleanArea,
		PreviousSelfCleanTime:   s.previousSelfCleanTime,
		PreviousCleanGeniusMode: s.previousCleanGeniusMode,
	}
}

// Restore imports persisted fields.
func (s *SessionState) Restore(snap SessionSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanupStarted = snap.CleanupStarted
	s.cleanupCompleted = snap.CleanupCompleted
	s.previousSelfCleanArea = snap.PreviousSelfCleanArea
	s.previousSelfCleanTime = snap.PreviousSelfCleanTime
	s.previousCleanGeniusMode = snap.PreviousCleanGeniusMode
}
