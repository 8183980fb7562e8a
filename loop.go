package pawnpad

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"runtime/debug"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Loop is the single logical thread of the editor core. Tasks run in the
// order they were posted; idle work runs only once no task is waiting, and
// idle work posted under the same key is coalesced so only the latest runs.
//
// Post and Idle are safe to call from any goroutine; tasks themselves always
// run on the goroutine driving RunPending or Run.
type Loop struct {
	mu        sync.Mutex
	tasks     []func()
	idle      map[string]func()
	idleOrder []string
	wake      chan struct{}

	// CrashDir is where Run writes a crash log when a task panics.
	// Defaults to the user's home directory.
	CrashDir string
	// State is dumped into the crash log.
	State any
}

func NewLoop() *Loop {
	return &Loop{
		idle: map[string]func(){},
		wake: make(chan struct{}, 1),
	}
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	l.signal()
}

// Idle schedules fn for the idle phase, replacing any idle work still
// pending under the same key.
func (l *Loop) Idle(key string, fn func()) {
	l.mu.Lock()
	if _, pending := l.idle[key]; !pending {
		l.idleOrder = append(l.idleOrder, key)
	}
	l.idle[key] = fn
	l.mu.Unlock()
	l.signal()
}

// Pending reports how many tasks and idle jobs are waiting.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks) + len(l.idleOrder)
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.tasks) > 0 {
		fn := l.tasks[0]
		l.tasks = l.tasks[1:]
		return fn, true
	}
	if len(l.idleOrder) > 0 {
		key := l.idleOrder[0]
		l.idleOrder = l.idleOrder[1:]
		fn := l.idle[key]
		delete(l.idle, key)
		return fn, true
	}
	return nil, false
}

// RunPending runs everything that is queued, including work queued by the
// work it runs, and returns how many functions ran.
func (l *Loop) RunPending() int {
	n := 0
	for {
		fn, ok := l.next()
		if !ok {
			return n
		}
		fn()
		n++
	}
}

// Run drives the loop on the calling goroutine until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		if err := recover(); err != nil {
			l.writeCrashLog(err)
			panic(err)
		}
	}()

	for {
		l.RunPending()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Loop) writeCrashLog(reason any) {
	dir := l.CrashDir
	if dir == "" {
		dir = os.Getenv("HOME")
	}
	if dir == "" {
		dir = os.TempDir()
	}
	name := path.Join(dir, fmt.Sprintf("pawnpad-crashlog-%d", time.Now().Unix()))
	err := os.WriteFile(name, []byte(fmt.Sprintf("%v\n%s\n%s", reason, string(debug.Stack()), spew.Sdump(l.State))), 0644)
	if err != nil {
		log.Printf("loop: cannot write crash log: %v", err)
		return
	}
	log.Printf("loop: crash log written to %s", name)
}
