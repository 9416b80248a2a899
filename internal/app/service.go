package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/xo-tic-tac-toe/internal/domain"
	"github.com/jaminalder/xo-tic-tac-toe/internal/match"
)

// Errors exposed by the service layer.
var (
	ErrNotFound   = errors.New("game not found")
	ErrNotAPlayer = errors.New("not a player")
)

// GameState is the in-memory state tracked per game.
type GameState struct {
	ID         string
	Owner      string
	Match      match.Match
	LastPlayer int // last human position, 0 if none
	LastEngine int // last engine position, 0 if none
	Created    time.Time
	Updated    time.Time
}

// Result is derived from the match board.
func (gs GameState) Result() domain.Result { return gs.Match.Result() }

// subscriber channels are only sent on and closed while holding Service.mu.
type subscriber struct {
	ch     chan []byte
	closed bool
}

func (s *subscriber) close() {
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Options tune a Service.
type Options struct {
	// Renderer encodes broadcast payloads.
	Renderer func(GameState) []byte
	// ThinkDelay is slept before each engine move.
	ThinkDelay time.Duration
}

// Service manages games against the engine and their subscribers.
type Service struct {
	mu     sync.Mutex
	games  map[string]*GameState
	subs   map[string]map[*subscriber]struct{}
	render func(GameState) []byte
	think  time.Duration
}

// NewService creates a service with a default renderer (encodes nothing useful).
func NewService() *Service { return NewServiceWithOptions(Options{}) }

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(renderer func(GameState) []byte) *Service {
	return NewServiceWithOptions(Options{Renderer: renderer})
}

// NewServiceWithOptions creates a service from opts.
func NewServiceWithOptions(opts Options) *Service {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = func(gs GameState) []byte { return nil }
	}
	return &Service{
		games:  make(map[string]*GameState),
		subs:   make(map[string]map[*subscriber]struct{}),
		render: renderer,
		think:  opts.ThinkDelay,
	}
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if renderer == nil {
		s.render = func(gs GameState) []byte { return nil }
		return
	}
	s.render = renderer
}

// CreateGame starts a game owned by ownerID where the human plays symbol.
// If the engine holds X it has already opened when CreateGame returns.
func (s *Service) CreateGame(ownerID string, symbol domain.Cell) (*GameState, error) {
	m, err := match.New(symbol)
	if err != nil {
		return nil, err
	}
	if err := m.Start(); err != nil {
		return nil, err
	}
	if m.EngineToMove() {
		s.sleep()
	}
	pos, _, err := m.Advance()
	if err != nil {
		return nil, fmt.Errorf("engine opening: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	gs := &GameState{
		ID:         uuid.NewString(),
		Owner:      ownerID,
		Match:      m,
		LastEngine: pos,
		Created:    now,
		Updated:    now,
	}
	s.games[gs.ID] = gs
	log.Printf("game %s created: player=%v engine=%v", gs.ID, m.Player, m.Engine)
	cp := *gs
	return &cp, nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, false
	}
	cp := *gs
	return &cp, true
}

// Play applies the owner's move at position (1..9), lets the engine reply
// unless the game ended, and broadcasts the new state.
func (s *Service) Play(id, playerID string, position int) (*GameState, error) {
	s.mu.Lock()
	gs, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	if gs.Owner != playerID {
		s.mu.Unlock()
		return nil, ErrNotAPlayer
	}
	m := gs.Match
	before := m.Game.Moves
	s.mu.Unlock()

	if _, err := m.PlayHuman(position); err != nil {
		return nil, err
	}
	if m.EngineToMove() {
		s.sleep()
	}
	enginePos, res, err := m.Advance()
	if err != nil {
		return nil, fmt.Errorf("engine reply: %w", err)
	}

	s.mu.Lock()
	// a concurrent request from the same owner may have moved first
	if gs.Match.Game.Moves != before {
		s.mu.Unlock()
		return nil, match.ErrNotYourTurn
	}
	gs.Match = m
	gs.LastPlayer = position
	gs.LastEngine = enginePos
	gs.Updated = time.Now()
	cp := *gs
	s.broadcastLocked(id, s.render(cp))
	s.mu.Unlock()

	if res.Over() {
		log.Printf("game %s finished: %s (%s)", id, res, cp.Match.Phase)
	}
	return &cp, nil
}

func (s *Service) sleep() {
	if s.think > 0 {
		time.Sleep(s.think)
	}
}

// broadcastLocked fans out payload without blocking; slow subscribers are
// closed and dropped. Caller holds s.mu.
func (s *Service) broadcastLocked(id string, payload []byte) {
	set := s.subs[id]
	for sub := range set {
		select {
		case sub.ch <- payload:
		default:
			delete(set, sub)
			sub.close()
		}
	}
	if len(set) == 0 {
		delete(s.subs, id)
	}
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan []byte, 1)}
	set[sub] = struct{}{}

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
				if len(set) == 0 {
					delete(s.subs, id)
				}
			}
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub
}
