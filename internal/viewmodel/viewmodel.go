// Package viewmodel turns view intents into quote fetches and publishes the
// results as presentation events.
//
// Every input disables refresh before its fetch starts. A successful fetch
// re-enables refresh and then delivers the quote; a failed fetch delivers
// only the error description and leaves refresh disabled. Overlapping inputs
// run overlapping fetches whose outputs arrive in completion order.
package viewmodel

import (
	"context"
	"sync"

	"quotes/internal/quote"

	"github.com/charmbracelet/log"
)

// Listener receives outputs. Listeners are called one at a time from the
// view-model's dispatch goroutine and may call back into the view-model.
type Listener func(Output)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(vm *ViewModel) { vm.logger = l }
}

// WithContext sets the context passed to the service for every fetch.
// Defaults to context.Background().
func WithContext(ctx context.Context) Option {
	return func(vm *ViewModel) { vm.ctx = ctx }
}

// ViewModel mediates between the view and a quote.Service.
type ViewModel struct {
	service quote.Service
	logger  *log.Logger
	ctx     context.Context

	mu        sync.Mutex // protects listeners, nextID, queue, closed
	listeners []listenerEntry
	nextID    uint64
	queue     [][]Output
	closed    bool

	deliverMu sync.Mutex // held while a batch is being delivered
	signal    chan struct{}
	done      chan struct{}
	inflight  sync.WaitGroup
}

// New creates a ViewModel backed by svc and starts its dispatch goroutine.
// Call Close to release it.
func New(svc quote.Service, opts ...Option) *ViewModel {
	vm := &ViewModel{
		service: svc,
		logger:  log.Default(),
		ctx:     context.Background(),
		signal:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(vm)
	}
	go vm.dispatch()
	return vm
}

// Handle reacts to one input. ScreenAppeared and RefreshRequested are
// treated the same: refresh is disabled and a fetch starts in the background.
// Inputs after Close are ignored.
func (vm *ViewModel) Handle(in Input) {
	switch in {
	case ScreenAppeared, RefreshRequested:
	default:
		vm.logger.Warn("ignoring unknown input", "input", in)
		return
	}

	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.inflight.Add(1)
	vm.mu.Unlock()

	vm.logger.Debug("handling input", "input", in)
	vm.emit(SetRefreshEnabled{Enabled: false})
	go vm.fetch()
}

func (vm *ViewModel) fetch() {
	defer vm.inflight.Done()

	q, err := vm.service.FetchRandomQuote(vm.ctx)
	if err != nil {
		vm.emit(FetchFailed{Description: quote.Describe(err)})
		return
	}
	vm.emit(SetRefreshEnabled{Enabled: true}, FetchSucceeded{Quote: q})
}

// emit queues outputs as one batch; no other output is delivered between
// members of a batch.
func (vm *ViewModel) emit(outs ...Output) {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		vm.logger.Debug("dropping outputs after close", "count", len(outs))
		return
	}
	vm.queue = append(vm.queue, outs)
	vm.mu.Unlock()

	select {
	case vm.signal <- struct{}{}:
	default:
	}
}

func (vm *ViewModel) dispatch() {
	for {
		select {
		case <-vm.done:
			return
		case <-vm.signal:
		}
		for {
			batch, ok := vm.next()
			if !ok {
				break
			}
			vm.deliver(batch)
		}
	}
}

func (vm *ViewModel) next() ([]Output, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed || len(vm.queue) == 0 {
		return nil, false
	}
	batch := vm.queue[0]
	vm.queue[0] = nil
	vm.queue = vm.queue[1:]
	return batch, true
}

func (vm *ViewModel) deliver(batch []Output) {
	vm.deliverMu.Lock()
	defer vm.deliverMu.Unlock()

	vm.mu.Lock()
	listeners := make([]listenerEntry, len(vm.listeners))
	copy(listeners, vm.listeners)
	vm.mu.Unlock()

	for _, out := range batch {
		for _, l := range listeners {
			vm.safeCall(l.fn, out)
		}
	}
}

// safeCall calls fn with panic recovery. One listener failing shouldn't
// block others.
func (vm *ViewModel) safeCall(fn Listener, out Output) {
	defer func() {
		if r := recover(); r != nil {
			vm.logger.Error("listener panicked", "output", out, "panic", r)
		}
	}()
	fn(out)
}

// Subscribe registers fn for every future output. The returned handle
// removes it again. Subscribing to a closed ViewModel returns a handle that
// was never registered.
func (vm *ViewModel) Subscribe(fn Listener) *Subscription {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.nextID++
	sub := &Subscription{vm: vm, id: vm.nextID}
	if !vm.closed {
		vm.listeners = append(vm.listeners, listenerEntry{id: sub.id, fn: fn})
	}
	return sub
}

func (vm *ViewModel) unsubscribe(id uint64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	for i, l := range vm.listeners {
		if l.id == id {
			vm.listeners = append(vm.listeners[:i:i], vm.listeners[i+1:]...)
			return
		}
	}
}

// Close releases every subscription and stops dispatch. Fetches already in
// flight run to completion and their results are dropped. Close is
// idempotent.
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return
	}
	vm.closed = true
	vm.listeners = nil
	vm.queue = nil
	vm.mu.Unlock()

	close(vm.done)
	vm.logger.Debug("view-model closed")
}

// Done is closed when the ViewModel is closed.
func (vm *ViewModel) Done() <-chan struct{} {
	return vm.done
}

// Wait blocks until every fetch started by Handle has finished. It must not
// race with new Handle calls unless the ViewModel is closed.
func (vm *ViewModel) Wait() {
	vm.inflight.Wait()
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	vm   *ViewModel
	id   uint64
	once sync.Once
}

// Dispose removes the listener. A batch that is already being delivered
// when Dispose is called may still reach it. Dispose is idempotent.
func (s *Subscription) Dispose() {
	s.once.Do(func() { s.vm.unsubscribe(s.id) })
}
