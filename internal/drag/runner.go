package drag

import (
	"log"
	"sync"
	"time"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/platform"
)

// Runner is the consumer side: it drains the session at a fixed
// interval and applies at most one frame write per tick. Ticks that
// arrive while a slow SetFrame is still in flight are absorbed by the
// ticker channel.
type Runner struct {
	backend platform.Backend
	session *Session
	cfg     config.DragConfig

	mu         sync.Mutex
	lastMotion time.Time
	restart    func()

	stop chan struct{}
	once sync.Once
}

// NewRunner creates the consumer. restart is invoked by the watchdog
// when the motion stream has gone silent mid-drag; it should tear down
// and re-create the pointer handlers. May be nil.
func NewRunner(backend platform.Backend, session *Session, cfg config.DragConfig, restart func()) *Runner {
	return &Runner{
		backend: backend,
		session: session,
		cfg:     cfg,
		restart: restart,
		stop:    make(chan struct{}),
	}
}

// NoteMotion records producer liveness for the watchdog.
func (r *Runner) NoteMotion() {
	r.mu.Lock()
	r.lastMotion = time.Now()
	r.mu.Unlock()
}

// Start launches the apply loop and the watchdog.
func (r *Runner) Start() {
	go r.applyLoop()
	go r.watchdogLoop()
}

// Stop terminates both loops.
func (r *Runner) Stop() {
	r.once.Do(func() { close(r.stop) })
}

func (r *Runner) applyLoop() {
	ticker := time.NewTicker(r.cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			id, frame, ok := r.session.Drain()
			if !ok {
				continue
			}
			if err := r.backend.SetFrame(id, frame); err != nil {
				log.Printf("drag: frame write failed: %v", err)
				r.session.Cancel()
			}
		}
	}
}

func (r *Runner) watchdogLoop() {
	interval := time.Duration(r.cfg.WatchdogSeconds) * time.Second
	if interval <= 0 {
		return
	}
	stale := time.Duration(r.cfg.StaleSeconds) * time.Second

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.mu.Lock()
			last := r.lastMotion
			r.mu.Unlock()

			if shouldRestart(r.session.Active(), last, time.Now(), stale) {
				log.Printf("drag: motion stream stale, recreating pointer handlers")
				r.session.Cancel()
				if r.restart != nil {
					r.restart()
				}
			}
		}
	}
}

// shouldRestart decides whether the motion event source looks dead: a
// drag is supposedly active but no motion callback has fired for the
// stale window.
func shouldRestart(active bool, lastMotion, now time.Time, stale time.Duration) bool {
	if !active || stale <= 0 {
		return false
	}
	if lastMotion.IsZero() {
		return false
	}
	return now.Sub(lastMotion) > stale
}
