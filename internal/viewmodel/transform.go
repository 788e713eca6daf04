package viewmodel

import "context"

// outputBuffer sizes the channel returned by Transform.
const outputBuffer = 16

// Transform is the channel form of Handle and Subscribe. Every value read
// from in is handled as by Handle; outputs are written to the returned
// channel in delivery order. Reading stops when in is closed, ctx is done or
// the ViewModel is closed. The output channel is closed when ctx is done or
// the ViewModel is closed, so outputs of fetches still in flight after in is
// closed are delivered.
func (vm *ViewModel) Transform(ctx context.Context, in <-chan Input) <-chan Output {
	out := make(chan Output, outputBuffer)

	sub := vm.Subscribe(func(o Output) {
		select {
		case out <- o:
		case <-ctx.Done():
		case <-vm.done:
		}
	})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-vm.done:
				return
			case ev, ok := <-in:
				if !ok {
					return
				}
				vm.Handle(ev)
			}
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
		case <-vm.done:
		}
		sub.Dispose()
		// Wait out a delivery that captured the listener before Dispose.
		vm.deliverMu.Lock()
		close(out)
		vm.deliverMu.Unlock()
	}()

	return out
}
