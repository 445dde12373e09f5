package ecs

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/rs/zerolog"
)

// System is a unit of behavior executed once per frame. Higher priorities
// run earlier within a frame; systems with equal priority run in
// registration order. Implement Starter or Stopper for lifecycle hooks.
type System interface {
	Priority() int
	Update(w *World, dt float64)
}

// Starter is implemented by systems that need a one-time hook when the
// scheduler starts, or immediately when added to a running scheduler.
type Starter interface {
	Start(w *World)
}

// Stopper is implemented by systems that need a one-time hook when the
// scheduler stops. Stop hooks unwind in reverse execution order.
type Stopper interface {
	Stop(w *World)
}

// SystemFunc adapts a closure into a System.
type SystemFunc struct {
	P  int
	Fn func(w *World, dt float64)
}

func (s *SystemFunc) Priority() int { return s.P }

func (s *SystemFunc) Update(w *World, dt float64) { s.Fn(w, dt) }

func newScheduler(logger zerolog.Logger) *scheduler {
	return &scheduler{logger: logger}
}

// scheduler keeps registered systems ordered by descending priority with a
// stable tie-break on registration order, and owns the running/stopped
// lifecycle. It is driven exclusively by the World.
//
// Add and Remove replace the systems slice instead of mutating it, so a
// frame in progress keeps walking the snapshot it started with. A system
// may unregister itself (or a peer) from inside Update; the change takes
// effect next frame.
type scheduler struct {
	systems []System
	running bool
	logger  zerolog.Logger
}

// Add registers the system at the position its priority dictates. A system
// already present is left where it is. When the scheduler is running, the
// new system's start hook fires here, exactly once; no other call site owns
// hot-add starts.
func (s *scheduler) Add(w *World, sys System) {
	if sys == nil || s.contains(sys) {
		return
	}
	next := make([]System, len(s.systems), len(s.systems)+1)
	copy(next, s.systems)
	next = append(next, sys)
	slices.SortStableFunc(next, func(a, b System) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})
	s.systems = next
	s.logger.Debug().
		Str("system", systemName(sys)).
		Int("priority", sys.Priority()).
		Msg("system registered")
	if s.running {
		startSystem(w, sys)
	}
}

// Remove unregisters the system, reporting whether it was present. The stop
// hook is not invoked on removal; that is a known limitation of the design.
func (s *scheduler) Remove(sys System) bool {
	for i, registered := range s.systems {
		if registered == sys {
			next := make([]System, 0, len(s.systems)-1)
			next = append(next, s.systems[:i]...)
			next = append(next, s.systems[i+1:]...)
			s.systems = next
			s.logger.Debug().Str("system", systemName(sys)).Msg("system removed")
			return true
		}
	}
	return false
}

// Start transitions stopped->running and fires start hooks in priority
// order. Starting a running scheduler is a no-op.
func (s *scheduler) Start(w *World) {
	if s.running {
		return
	}
	s.running = true
	for _, sys := range s.systems {
		startSystem(w, sys)
	}
	s.logger.Debug().Array("systems", systemsArray(s.systems)).Msg("scheduler started")
}

// Stop transitions running->stopped and fires stop hooks in reverse
// priority/registration order, unwinding setup. Stopping a stopped
// scheduler is a no-op.
func (s *scheduler) Stop(w *World) {
	if !s.running {
		return
	}
	for i := len(s.systems) - 1; i >= 0; i-- {
		if stopper, ok := s.systems[i].(Stopper); ok {
			stopper.Stop(w)
		}
	}
	s.running = false
	s.logger.Debug().Msg("scheduler stopped")
}

// Update runs one frame: every system's update in priority order. Later
// systems observe mutations made by earlier ones; that ordering is the
// point of priorities. Requires the running state; otherwise no frame runs.
func (s *scheduler) Update(w *World, dt float64) {
	if !s.running {
		return
	}
	for _, sys := range s.systems {
		sys.Update(w, dt)
	}
}

func (s *scheduler) Running() bool {
	return s.running
}

func (s *scheduler) contains(sys System) bool {
	for _, registered := range s.systems {
		if registered == sys {
			return true
		}
	}
	return false
}

func startSystem(w *World, sys System) {
	if starter, ok := sys.(Starter); ok {
		starter.Start(w)
	}
}

func systemName(sys System) string {
	return reflect.TypeOf(sys).String()
}
