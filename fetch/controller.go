package fetch

import (
	"context"
	"errors"
	"sync"

	"github.com/anisan-cli/animedex/log"
	"github.com/anisan-cli/animedex/metrics"
	"github.com/samber/mo"
)

// Func performs the request for params. The int is the corpus total.
// It must honour ctx and return an error wrapping context.Canceled when ctx is cancelled.
type Func[P comparable, T any] func(ctx context.Context, params P) (T, int, error)

// Controller holds a single State and at most one current request.
//
// A request is identified by a token. Issuing a new request invalidates the
// previous token and cancels its context before the lock is released, so at
// no point are two requests current. Results carrying a stale token are dropped.
type Controller[P comparable, T any] struct {
	name  string
	fetch Func[P, T]

	mu        sync.Mutex
	state     State[T]
	params    mo.Option[P]
	token     uint64
	cancel    context.CancelFunc
	closed    bool
	observers []func(State[T])
}

// New returns an idle controller. name labels its metrics and logs.
func New[P comparable, T any](name string, fetch Func[P, T]) *Controller[P, T] {
	return &Controller[P, T]{
		name:  name,
		fetch: fetch,
		state: idle[T](),
	}
}

// Request is an issued fetch waiting to be performed.
type Request[P comparable, T any] struct {
	token  uint64
	params P
	ctx    context.Context
	fetch  Func[P, T]
}

// Params returns the snapshot the request was issued for.
func (r Request[P, T]) Params() P {
	return r.params
}

// Do performs the fetch. It blocks and is safe to call off the owning goroutine.
func (r Request[P, T]) Do() Outcome[P, T] {
	data, total, err := r.fetch(r.ctx, r.params)
	if err == nil && r.ctx.Err() != nil {
		err = r.ctx.Err()
	}

	return Outcome[P, T]{
		token:  r.token,
		Params: r.params,
		Data:   data,
		Total:  total,
		Err:    err,
	}
}

// Outcome is the result of Request.Do, to be handed to Settle.
type Outcome[P comparable, T any] struct {
	token  uint64
	Params P
	Data   T
	Total  int
	Err    error
}

// Subscribe registers fn to be called with every transition, in order.
// fn runs with the controller locked and must not call back into it.
func (c *Controller[P, T]) Subscribe(fn func(State[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers = append(c.observers, fn)
}

// State returns the current state.
func (c *Controller[P, T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Params returns the snapshot of the latest request, if any was issued.
func (c *Controller[P, T]) Params() mo.Option[P] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.params
}

// OnParamsChanged issues a request for params unless it would repeat the
// current one. The returned request must be performed and settled by the caller.
func (c *Controller[P, T]) OnParamsChanged(params P) (Request[P, T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Request[P, T]{}, false
	}

	if current, ok := c.params.Get(); ok && current == params && !c.state.IsIdle() {
		return Request[P, T]{}, false
	}

	return c.issue(params), true
}

// Reload issues a new request for the current snapshot.
func (c *Controller[P, T]) Reload() (Request[P, T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	params, ok := c.params.Get()
	if c.closed || !ok {
		return Request[P, T]{}, false
	}

	return c.issue(params), true
}

// issue must be called with c.mu held.
func (c *Controller[P, T]) issue(params P) Request[P, T] {
	if c.cancel != nil {
		c.cancel()
	}

	c.token++
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.params = mo.Some(params)

	log.WithFields(log.Fields{"controller": c.name, "token": c.token, "params": params}).Debug("request issued")
	c.transition(loading[T]())

	return Request[P, T]{
		token:  c.token,
		params: params,
		ctx:    ctx,
		fetch:  c.fetch,
	}
}

// Settle applies o if its request is still current. It reports whether the state changed.
// Cancelled outcomes never change the state.
func (c *Controller[P, T]) Settle(o Outcome[P, T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || o.token != c.token {
		metrics.StaleResult(c.name)
		log.WithFields(log.Fields{"controller": c.name, "token": o.token, "current": c.token}).Debug("stale result dropped")
		return false
	}

	if errors.Is(o.Err, context.Canceled) {
		return false
	}

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if o.Err != nil {
		c.transition(failed[T](o.Err))
	} else {
		c.transition(succeeded(o.Data, o.Total))
	}

	return true
}

// Load issues, performs and settles a request for params, then returns the state.
func (c *Controller[P, T]) Load(params P) State[T] {
	if req, ok := c.OnParamsChanged(params); ok {
		c.Settle(req.Do())
	}
	return c.State()
}

// Reset cancels the outstanding request and returns to Idle, forgetting the snapshot.
// Unlike Close the controller stays usable.
func (c *Controller[P, T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.token++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.params = mo.None[P]()

	if !c.state.IsIdle() {
		c.transition(idle[T]())
	}
}

// Close cancels the outstanding request. Later results and requests are ignored.
func (c *Controller[P, T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	c.token++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller[P, T]) transition(state State[T]) {
	c.state = state
	for _, fn := range c.observers {
		fn(state)
	}
}
