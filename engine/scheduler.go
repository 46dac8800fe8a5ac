package engine

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs deferred work after a delay
// Tasks are fire-and-forget: no handle is returned, nothing is joined or cancelled
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler backs each task with its own runtime timer
type TimerScheduler struct{}

// NewTimerScheduler creates a scheduler on top of time.AfterFunc
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// AfterFunc starts a timer that runs fn on its own goroutine after d
func (s *TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	})
}

type scheduledTask struct {
	due time.Duration
	seq uint64
	fn  func()
}

// ManualScheduler holds tasks on a virtual clock until Advance moves past their deadline
type ManualScheduler struct {
	mu      sync.Mutex
	elapsed time.Duration
	seq     uint64
	tasks   []scheduledTask
}

// NewManualScheduler creates a scheduler with its virtual clock at zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc queues fn to run once the virtual clock reaches now+d
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.tasks = append(s.tasks, scheduledTask{due: s.elapsed + d, seq: s.seq, fn: fn})
}

// Advance moves the virtual clock by d and runs due tasks in deadline order
// Tasks run outside the scheduler lock so they may schedule further work
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	s.elapsed += d
	var due, pending []scheduledTask
	for _, t := range s.tasks {
		if t.due <= s.elapsed {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	s.tasks = pending
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Pending returns the number of tasks not yet fired
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
