package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration matches the scripted demo video: two minutes.
const DefaultDuration = 120 * time.Second

var ErrNotFound = errors.New("playback: session not found")

// Step is a named marker on the demo timeline.
type Step struct {
	Time        int    `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var Steps = []Step{
	{0, "Dashboard Overview", "Welcome to ADmyBRAND Analytics"},
	{15, "Time Period Filtering", "Switch between 1W, 1M, 3M, 6M views"},
	{30, "Interactive Charts", "Hover and explore data visualizations"},
	{45, "Real-time Updates", "Watch data update in real-time"},
	{60, "Custom Metrics", "Create and track custom KPIs"},
	{75, "Export & Share", "Export reports and share insights"},
	{90, "Mobile Responsive", "Perfect experience on all devices"},
	{105, "Advanced Analytics", "AI-powered insights and predictions"},
}

// Stat is one of the static headline figures shown beside the player.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var Stats = []Stat{
	{"Real-time Data", "99.9%"},
	{"Response Time", "<100ms"},
	{"Uptime", "99.99%"},
	{"Users", "10K+"},
}

// StepAt returns the step the position falls in.
func StepAt(pos int) Step {
	cur := Steps[0]
	for _, s := range Steps {
		if pos >= s.Time {
			cur = s
		}
	}
	return cur
}

// State is the wire view of a session.
type State struct {
	ID       string `json:"id"`
	Playing  bool   `json:"playing"`
	Position int    `json:"position"`
	Duration int    `json:"duration"`
	Step     Step   `json:"step"`
}

// Session simulates playback: while playing, the position advances one
// second per tick until it reaches the duration, then auto-pauses.
type Session struct {
	id       string
	duration int
	tick     time.Duration

	mu      sync.Mutex
	pos     int
	playing bool
	stop    chan struct{}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:       s.id,
		Playing:  s.playing,
		Position: s.pos,
		Duration: s.duration,
		Step:     StepAt(s.pos),
	}
}

func (s *Session) Resume() {
	s.mu.Lock()
	if s.playing || s.pos >= s.duration {
		s.mu.Unlock()
		return
	}
	s.playing = true
	stop := make(chan struct{})
	s.stop = stop
	s.mu.Unlock()
	go s.run(stop)
}

func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pause()
}

// caller holds s.mu
func (s *Session) pause() {
	if !s.playing {
		return
	}
	s.playing = false
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// Seek clamps into [0, duration]. Seeking to the end pauses, like the
// natural end of playback does.
func (s *Session) Seek(pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos < 0 {
		pos = 0
	}
	if pos > s.duration {
		pos = s.duration
	}
	s.pos = pos
	if s.pos >= s.duration {
		s.pause()
	}
}

func (s *Session) run(stop chan struct{}) {
	t := time.NewTicker(s.tick)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.mu.Lock()
			if !s.playing {
				s.mu.Unlock()
				return
			}
			s.pos++
			if s.pos >= s.duration {
				s.pos = s.duration
				s.playing = false
				s.stop = nil
				s.mu.Unlock()
				return
			}
			s.mu.Unlock()
		}
	}
}

// Manager owns the live sessions; Shutdown tears every timer down.
type Manager struct {
	duration time.Duration
	tick     time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(duration time.Duration) *Manager {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Manager{
		duration: duration,
		tick:     time.Second,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session, playing from zero.
func (m *Manager) Create() State {
	s := &Session{
		id:       uuid.NewString(),
		duration: int(m.duration / time.Second),
		tick:     m.tick,
	}
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	s.Resume()
	return s.State()
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Close tears the session's timer down and forgets it.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.Pause()
	return nil
}

// Shutdown pauses every live session; called when the server stops.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	for _, s := range sessions {
		s.Pause()
	}
}
