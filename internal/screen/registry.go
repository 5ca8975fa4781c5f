package screen

import (
	"sync"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
)

// Registry holds the screens in menu order.
type Registry struct {
	screens map[string]Screen
	order   []string
}

func NewRegistry(screens ...Screen) *Registry {
	r := &Registry{screens: make(map[string]Screen, len(screens))}
	for _, s := range screens {
		r.Register(s)
	}
	return r
}

func (r *Registry) Register(s Screen) {
	if _, exists := r.screens[s.Name()]; !exists {
		r.order = append(r.order, s.Name())
	}
	r.screens[s.Name()] = s
}

func (r *Registry) Get(name string) (Screen, error) {
	s, ok := r.screens[name]
	if !ok {
		return nil, errors.ErrUnknownScreen
	}
	return s, nil
}

func (r *Registry) All() []Screen {
	out := make([]Screen, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.screens[name])
	}
	return out
}

// Titles maps screen names to their titles.
func (r *Registry) Titles() map[string]string {
	out := make(map[string]string, len(r.screens))
	for name, s := range r.screens {
		out[name] = s.Title()
	}
	return out
}

type sessionKey struct {
	user   string
	screen string
}

// Sessions keeps one Session per (user, screen). Sessions of different
// users never share state.
type Sessions struct {
	mu       sync.Mutex
	registry *Registry
	sessions map[sessionKey]Session
}

func NewSessions(registry *Registry) *Sessions {
	return &Sessions{registry: registry, sessions: make(map[sessionKey]Session)}
}

func (s *Sessions) Get(userID, screenName string) (Session, error) {
	scr, err := s.registry.Get(screenName)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{user: userID, screen: screenName}
	sess, ok := s.sessions[key]
	if !ok {
		sess = scr.NewSession()
		s.sessions[key] = sess
	}
	return sess, nil
}

// Reset drops every session of userID, e.g. on logout.
func (s *Sessions) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.sessions {
		if key.user == userID {
			delete(s.sessions, key)
		}
	}
}
