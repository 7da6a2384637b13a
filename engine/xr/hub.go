package xr

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registration is the handle returned by Hub.Connect. Releasing it disconnects the controller.
type Registration interface {
	// ID returns the registration's unique ID.
	ID() uuid.UUID

	// Controller returns the registered controller.
	Controller() Controller

	// Active reports whether the controller is still connected through this registration.
	Active() bool

	// Release disconnects the controller. Safe to call more than once.
	Release()
}

// Subscription is the handle returned by OnConnected and OnDisconnected. Releasing it stops further callbacks.
type Subscription interface {
	// ID returns the subscription's unique ID.
	ID() uuid.UUID

	// Release unsubscribes the callback. Safe to call more than once.
	Release()
}

// Hub tracks the connected controllers, at most one per hand, and notifies subscribers as they come and go.
// Callbacks run synchronously on the goroutine that connects or releases, outside the hub's lock.
// Thread-safe for concurrent access.
type Hub interface {
	// Connect registers c. A controller already connected for the same hand is disconnected first.
	//
	// Parameters:
	//   - c: the controller to connect
	//
	// Returns:
	//   - Registration: the handle used to disconnect c
	Connect(c Controller) Registration

	// Controller returns the connected controller for hand h, or nil.
	//
	// Parameters:
	//   - h: the hand
	//
	// Returns:
	//   - Controller: the controller or nil
	Controller(h Handedness) Controller

	// Controllers returns every connected controller, left before right.
	Controllers() []Controller

	// OnConnected subscribes cb to controller connections. Already connected controllers are not replayed.
	//
	// Parameters:
	//   - cb: the callback
	//
	// Returns:
	//   - Subscription: the handle used to unsubscribe
	OnConnected(cb func(Controller)) Subscription

	// OnDisconnected subscribes cb to controller disconnections.
	//
	// Parameters:
	//   - cb: the callback
	//
	// Returns:
	//   - Subscription: the handle used to unsubscribe
	OnDisconnected(cb func(Controller)) Subscription
}

type hub struct {
	mu           *sync.Mutex
	logger       *zap.Logger
	slots        map[Handedness]*registration
	connected    map[uuid.UUID]func(Controller)
	disconnected map[uuid.UUID]func(Controller)
	subOrder     []uuid.UUID
}

var _ Hub = &hub{}

// NewHub creates a Hub with no controllers connected.
//
// Parameters:
//   - options: functional options to configure the hub
//
// Returns:
//   - Hub: the created hub
func NewHub(options ...HubBuilderOption) Hub {
	h := &hub{
		mu:           &sync.Mutex{},
		logger:       zap.NewNop(),
		slots:        make(map[Handedness]*registration),
		connected:    make(map[uuid.UUID]func(Controller)),
		disconnected: make(map[uuid.UUID]func(Controller)),
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

func (h *hub) Connect(c Controller) Registration {
	if c == nil {
		panic("xr: cannot connect a nil controller")
	}

	h.mu.Lock()
	previous := h.slots[c.Handedness()]
	h.mu.Unlock()
	if previous != nil {
		previous.Release()
	}

	r := &registration{id: uuid.New(), hub: h, ctrl: c}
	h.mu.Lock()
	h.slots[c.Handedness()] = r
	callbacks := h.callbacksLocked(h.connected)
	h.mu.Unlock()

	h.logger.Info("controller connected",
		zap.String("controller", c.ID()),
		zap.Stringer("hand", c.Handedness()),
		zap.Stringer("registration", r.id),
	)
	for _, cb := range callbacks {
		cb(c)
	}
	return r
}

func (h *hub) disconnect(r *registration) {
	h.mu.Lock()
	if h.slots[r.ctrl.Handedness()] != r {
		h.mu.Unlock()
		return
	}
	delete(h.slots, r.ctrl.Handedness())
	callbacks := h.callbacksLocked(h.disconnected)
	h.mu.Unlock()

	h.logger.Info("controller disconnected",
		zap.String("controller", r.ctrl.ID()),
		zap.Stringer("hand", r.ctrl.Handedness()),
	)
	for _, cb := range callbacks {
		cb(r.ctrl)
	}
}

func (h *hub) Controller(hand Handedness) Controller {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.slots[hand]; ok {
		return r.ctrl
	}
	return nil
}

func (h *hub) Controllers() []Controller {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []Controller
	for _, hand := range []Handedness{HandLeft, HandRight, HandNone} {
		if r, ok := h.slots[hand]; ok {
			out = append(out, r.ctrl)
		}
	}
	return out
}

func (h *hub) OnConnected(cb func(Controller)) Subscription {
	return h.subscribe(h.connected, cb)
}

func (h *hub) OnDisconnected(cb func(Controller)) Subscription {
	return h.subscribe(h.disconnected, cb)
}

func (h *hub) subscribe(set map[uuid.UUID]func(Controller), cb func(Controller)) Subscription {
	s := &subscription{id: uuid.New(), hub: h}
	h.mu.Lock()
	defer h.mu.Unlock()
	set[s.id] = cb
	h.subOrder = append(h.subOrder, s.id)
	return s
}

func (h *hub) unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.connected, id)
	delete(h.disconnected, id)
}

// callbacksLocked returns the callbacks of set in subscription order. Caller holds h.mu.
func (h *hub) callbacksLocked(set map[uuid.UUID]func(Controller)) []func(Controller) {
	out := make([]func(Controller), 0, len(set))
	for _, id := range h.subOrder {
		if cb, ok := set[id]; ok {
			out = append(out, cb)
		}
	}
	return out
}

type registration struct {
	id   uuid.UUID
	hub  *hub
	ctrl Controller
	once sync.Once
}

func (r *registration) ID() uuid.UUID {
	return r.id
}

func (r *registration) Controller() Controller {
	return r.ctrl
}

func (r *registration) Active() bool {
	r.hub.mu.Lock()
	defer r.hub.mu.Unlock()
	return r.hub.slots[r.ctrl.Handedness()] == r
}

func (r *registration) Release() {
	r.once.Do(func() {
		r.hub.disconnect(r)
	})
}

type subscription struct {
	id   uuid.UUID
	hub  *hub
	once sync.Once
}

func (s *subscription) ID() uuid.UUID {
	return s.id
}

func (s *subscription) Release() {
	s.once.Do(func() {
		s.hub.unsubscribe(s.id)
	})
}
