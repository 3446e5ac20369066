// ABOUTME: Manager-to-Bubble Tea bridge that forwards change events as tea.Msg
// ABOUTME: Events queue without blocking the mutating goroutine and are sent in order

package picker

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/themeswitch/internal/thememgr"
)

// ProgramSender is the interface for sending messages to Bubble Tea.
// Matches *tea.Program's Send method.
type ProgramSender interface {
	Send(msg tea.Msg)
}

// Subscriber is the subscription half of the theme manager.
type Subscriber interface {
	Subscribe(fn func(thememgr.Event)) (unsubscribe func())
}

// Bridge relays manager events to a Bubble Tea program.
//
// Manager handlers run on the mutating goroutine, which is often the
// program's own Update loop, so handing the event straight to Send would
// deadlock. The bridge queues instead and a separate goroutine drains it.
type Bridge struct {
	program ProgramSender
	unsub   func()

	mu    sync.Mutex
	queue []thememgr.Event

	wake     chan struct{}
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewBridge subscribes to sub and starts forwarding to program.
func NewBridge(sub Subscriber, program ProgramSender) *Bridge {
	b := &Bridge{
		program: program,
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	b.unsub = sub.Subscribe(b.enqueue)
	go b.run()
	return b
}

func (b *Bridge) enqueue(e thememgr.Event) {
	b.mu.Lock()
	b.queue = append(b.queue, e)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Bridge) run() {
	defer close(b.done)
	for {
		select {
		case <-b.stop:
			return
		case <-b.wake:
		}
		for {
			b.mu.Lock()
			if len(b.queue) == 0 {
				b.mu.Unlock()
				break
			}
			e := b.queue[0]
			b.queue = b.queue[1:]
			b.mu.Unlock()

			b.program.Send(ChangedMsg{Event: e})
		}
	}
}

// Stop unsubscribes and waits for the forwarding goroutine to exit.
// Events still queued are dropped. Safe to call more than once.
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		b.unsub()
		close(b.stop)
	})
	<-b.done
}
