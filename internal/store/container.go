package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"espoir/internal/services"
	"espoir/internal/shared"
	"espoir/internal/storage"
)

// Listener receives published snapshots in dispatch order.
type Listener func(AppState)

// published pairs a snapshot with its position in the mutation sequence.
type published struct {
	seq   uint64
	state AppState
}

type subscriber struct {
	fn Listener
	// after is the sequence number current when the subscriber registered;
	// it only receives snapshots published after that point.
	after uint64
}

// Container composes the four stores into one addressable, observable state
// tree. Construct with [New], tear down with [Close].
type Container struct {
	catalog services.Catalog
	auth    services.Authenticator
	gateway *storage.Gateway
	logger  *log.Logger

	// mu serializes mutation phases and guards state, seq, and the
	// generation counters.
	mu    sync.Mutex
	state AppState
	seq   uint64

	sessionGen  uint64
	trendingGen uint64
	popularGen  uint64
	detailsGen  uint64
	searchGen   uint64

	// favMu and sessMu serialize persistence writes for their keys so the
	// stored value always converges to the latest published one.
	favMu  sync.Mutex
	sessMu sync.Mutex

	subMu     sync.Mutex
	subs      map[int]*subscriber
	nextSubID int

	queueMu sync.Mutex
	queue   []published
	wake    *sync.Cond
	closed  bool
	done    chan struct{}
}

// New creates a Container over the remote boundaries and the persistence
// gateway, and starts its publication pump.
func New(catalog services.Catalog, auth services.Authenticator, gateway *storage.Gateway, logger *log.Logger) *Container {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	c := &Container{
		catalog: catalog,
		auth:    auth,
		gateway: gateway,
		logger:  shared.WithLogger(logger, "component", "store"),
		subs:    make(map[int]*subscriber),
		done:    make(chan struct{}),
	}
	c.wake = sync.NewCond(&c.queueMu)

	go c.pump()
	return c
}

// Dispatch routes the intent to the owning store and blocks until its
// effects, including any persistence follow-up, have been applied. Callers
// wanting concurrent operations dispatch from separate goroutines; mutation
// phases are still applied atomically and published in order.
func (c *Container) Dispatch(ctx context.Context, intent Intent) error {
	switch it := intent.(type) {
	case Login:
		return c.login(ctx, it.Email, it.Password)
	case Register:
		return c.register(ctx, it.Username, it.Email, it.Password)
	case LoadSession:
		return c.loadSession(ctx)
	case Logout:
		return c.logout(ctx)
	case ClearError:
		return c.clearError()
	case LoadFavorites:
		return c.loadFavorites(ctx)
	case AddFavorite:
		return c.addFavorite(ctx, it.Movie)
	case RemoveFavorite:
		return c.removeFavorite(ctx, it.MovieID)
	case FetchTrending:
		return c.fetchTrending(ctx)
	case FetchPopular:
		return c.fetchPopular(ctx)
	case FetchDetails:
		return c.fetchDetails(ctx, it.MovieID)
	case Search:
		return c.search(ctx, it.Query)
	case ClearSearch:
		return c.clearSearch()
	case ToggleTheme:
		return c.toggleTheme(ctx)
	case SetTheme:
		return c.setTheme(it.Mode)
	default:
		return fmt.Errorf("%w: unknown intent %T", shared.ErrInvalidInput, intent)
	}
}

// State returns a deep copy of the current snapshot.
func (c *Container) State() AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Subscribe registers a listener for future snapshots and returns its
// unsubscribe function. Delivery starts with the first snapshot published
// after registration; the listener never sees an in-progress dispatch.
func (c *Container) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	joined := c.seq
	c.mu.Unlock()

	c.subMu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = &subscriber{fn: fn, after: joined}
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// Close stops the publication pump and drops all listeners. Snapshots
// already queued are delivered first.
func (c *Container) Close() {
	c.queueMu.Lock()
	if c.closed {
		c.queueMu.Unlock()
		return
	}
	c.closed = true
	c.wake.Signal()
	c.queueMu.Unlock()

	<-c.done

	c.subMu.Lock()
	c.subs = make(map[int]*subscriber)
	c.subMu.Unlock()
}

// publishLocked queues a deep copy of the current state for delivery.
// Callers must hold c.mu, which is what keeps the queue in mutation order.
func (c *Container) publishLocked() {
	c.seq++
	item := published{seq: c.seq, state: c.state.clone()}

	c.queueMu.Lock()
	c.queue = append(c.queue, item)
	c.wake.Signal()
	c.queueMu.Unlock()
}

// pump delivers queued snapshots to listeners, one snapshot at a time, in
// publication order. Listener callbacks run here without any container lock
// held, so a listener may dispatch further intents.
func (c *Container) pump() {
	defer close(c.done)

	for {
		c.queueMu.Lock()
		for len(c.queue) == 0 && !c.closed {
			c.wake.Wait()
		}
		if len(c.queue) == 0 && c.closed {
			c.queueMu.Unlock()
			return
		}
		batch := c.queue
		c.queue = nil
		c.queueMu.Unlock()

		for _, item := range batch {
			c.subMu.Lock()
			targets := make([]Listener, 0, len(c.subs))
			for _, sub := range c.subs {
				if sub.after < item.seq {
					targets = append(targets, sub.fn)
				}
			}
			c.subMu.Unlock()

			for _, fn := range targets {
				fn(item.state)
			}
		}
	}
}
