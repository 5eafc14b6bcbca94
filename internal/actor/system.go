package actor

import (
	"reflect"
	"sync"

	"github.com/lguibr/gameserver/internal/bus"
	"github.com/sirupsen/logrus"
)

// registryEntry is a type-erased record of one live actor: its Ref (for
// Tell/Ask/Path), its dynamic Go type (for the typed GetActor lookup) and
// its mailbox (for StopActor).
type registryEntry struct {
	ref     *Ref
	typeTag reflect.Type
	mbox    *mailbox
}

// System owns the actor registry and the event bus for one hierarchy of
// actors rooted at a fixed top-level segment (conventionally "user", as in
// the original implementation's "/user/player-<id>" paths).
type System struct {
	mu     sync.RWMutex
	actors map[string]*registryEntry
	root   Path
	bus    *bus.Bus[any]
	log    *logrus.Entry
}

// NewSystem builds a System rooted at /root and backed by an event bus with
// the given per-subscriber buffer size.
func NewSystem(root string, busBufferSize int) *System {
	return &System{
		actors: make(map[string]*registryEntry),
		root:   PathFromString(root),
		bus:    bus.New[any](busBufferSize),
		log:    logrus.WithField("component", "actor.System"),
	}
}

// CreateActor spawns a under /root/name. It fails with *ExistsError if that
// path is already live.
func (s *System) CreateActor(name string, a Actor) (*Ref, error) {
	return s.CreateActorPath(s.root.Child(name), a)
}

// CreateActorPath spawns a at the given absolute path.
func (s *System) CreateActorPath(path Path, a Actor) (*Ref, error) {
	s.mu.Lock()
	if _, exists := s.actors[path.String()]; exists {
		s.mu.Unlock()
		return nil, &ExistsError{Path: path}
	}
	ref, run := s.spawnLocked(path, a)
	s.mu.Unlock()
	go run()
	return ref, nil
}

// GetOrCreateActorPath atomically returns the live actor at path, creating
// it from factory if none exists yet.
func (s *System) GetOrCreateActorPath(path Path, factory func() Actor) (*Ref, error) {
	s.mu.Lock()
	if entry, exists := s.actors[path.String()]; exists {
		ref := entry.ref
		s.mu.Unlock()
		return ref, nil
	}
	ref, run := s.spawnLocked(path, factory())
	s.mu.Unlock()
	go run()
	return ref, nil
}

// spawnLocked registers a new entry and returns a function the caller must
// invoke (typically via `go`) to actually start the actor's Runner. Must be
// called with s.mu held.
func (s *System) spawnLocked(path Path, a Actor) (*Ref, func()) {
	mbox := newMailbox()
	ref := &Ref{path: path, mbox: mbox}
	s.actors[path.String()] = &registryEntry{
		ref:     ref,
		typeTag: reflect.TypeOf(a),
		mbox:    mbox,
	}
	r := &runner{path: path, actor: a, mbox: mbox, selfRef: ref, system: s}
	return ref, r.run
}

// GetActor returns the Ref registered at path if it is live and its dynamic
// type matches A, or (nil, false) otherwise — it never panics on a type
// mismatch, it just reports "none". Call as GetActor[*player.Actor](sys, path).
func GetActor[A Actor](s *System, path Path) (*Ref, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.actors[path.String()]
	if !ok {
		return nil, false
	}
	want := reflect.TypeOf((*A)(nil)).Elem()
	if entry.typeTag != want {
		return nil, false
	}
	return entry.ref, true
}

// StopActor requests that the actor at path stop. Idempotent: stopping an
// already-stopped or never-existing path is a no-op.
func (s *System) StopActor(path Path) {
	s.mu.RLock()
	entry, ok := s.actors[path.String()]
	s.mu.RUnlock()
	if !ok {
		return
	}
	entry.mbox.close()
}

// removeActor deregisters path. Called by the Runner after PostStop.
func (s *System) removeActor(path Path) {
	s.mu.Lock()
	delete(s.actors, path.String())
	s.mu.Unlock()
}

// Publish forwards ev to every current subscriber.
func (s *System) Publish(ev interface{}) {
	s.bus.Publish(ev)
}

// Subscribe returns a fresh event stream that only sees events published
// after this call, plus a cleanup function.
func (s *System) Subscribe() (<-chan interface{}, func()) {
	return s.bus.Subscribe()
}
