package counter

import (
	"time"

	"github.com/davidroman0O/vessel-go"
)

// Actions is the narrow handle for driving the counter. It exposes the
// four actions and nothing else: obtaining or holding it never registers
// the caller as a state observer.
type Actions interface {
	Increment() *vessel.Future[State]
	IncrementBatch() *vessel.Future[State]
	Reset() *vessel.Future[State]
	SetCount(value int) *vessel.Future[State]
}

// ViewModel owns exactly one current State and replaces it through the
// four actions. Each action publishes a loading replacement synchronously
// before returning, suspends for its configured delay on its own
// goroutine, then publishes the result replacement. The suspension holds
// no locks: CurrentState and Observe stay available while an action is in
// flight.
//
// Nothing sequences overlapping actions; if two are in flight at once the
// later result replacement simply wins.
type ViewModel struct {
	cfg     Config
	state   *vessel.Container[State]
	count   *vessel.Projection[int]
	message *vessel.Projection[string]
	loading *vessel.Projection[bool]
}

var _ Actions = (*ViewModel)(nil)

// NewViewModel creates a view model with the default delays.
func NewViewModel() *ViewModel {
	return NewViewModelWithConfig(DefaultConfig())
}

// NewViewModelWithConfig creates a view model paced by cfg. The delays are
// cosmetic; LoadConfig validates what it reads from disk, values passed
// here are taken as-is.
func NewViewModelWithConfig(cfg Config) *ViewModel {
	state := vessel.New(Initial())
	state.SetEqualityFn(func(a, b State) bool {
		return a == b
	})
	return &ViewModel{
		cfg:     cfg,
		state:   state,
		count:   vessel.Select(state, func(s State) int { return s.Count }),
		message: vessel.Select(state, func(s State) string { return s.Message }),
		loading: vessel.Select(state, func(s State) bool { return s.Loading }),
	}
}

// CurrentState returns the current state synchronously, with no side
// effects.
func (vm *ViewModel) CurrentState() State {
	return vm.state.Get()
}

// Observe registers fn to run with the new state on every replacement, in
// the order the replacements occur. The returned function deregisters it.
func (vm *ViewModel) Observe(fn func(State)) func() {
	return vm.state.Subscribe(fn)
}

// Count is the projection of State.Count. Its subscribers fire only when
// the count itself changes.
func (vm *ViewModel) Count() *vessel.Projection[int] {
	return vm.count
}

// Message is the projection of State.Message.
func (vm *ViewModel) Message() *vessel.Projection[string] {
	return vm.message
}

// Loading is the projection of State.Loading.
func (vm *ViewModel) Loading() *vessel.Projection[bool] {
	return vm.loading
}

// Actions returns the action handle.
func (vm *ViewModel) Actions() Actions {
	return vm
}

// Dispose detaches the projections and drops all observers. The view model
// must not be observed afterwards; the state itself is simply abandoned.
func (vm *ViewModel) Dispose() {
	vm.count.Dispose()
	vm.message.Dispose()
	vm.loading.Dispose()
	vm.state.Close()
}

// Increment adds one to the count after the increment delay. The loading
// flag is already published when Increment returns; the future resolves
// with the result state. Increment cannot fail.
func (vm *ViewModel) Increment() *vessel.Future[State] {
	vm.state.Update(func(s State) State {
		return s.WithLoading(true)
	})
	return vessel.NewFuture(func() State {
		time.Sleep(time.Duration(vm.cfg.IncrementDelay))
		var next State
		vm.state.Update(func(s State) State {
			count := s.Count + 1
			next = State{Count: count, Message: messageForCount(count), Loading: false}
			return next
		})
		return next
	})
}

// IncrementBatch adds ten to the count after the batch delay.
func (vm *ViewModel) IncrementBatch() *vessel.Future[State] {
	vm.state.Update(func(s State) State {
		return s.WithLoading(true)
	})
	return vessel.NewFuture(func() State {
		time.Sleep(time.Duration(vm.cfg.BatchDelay))
		var next State
		vm.state.Update(func(s State) State {
			count := s.Count + 10
			next = State{Count: count, Message: batchMessage(count), Loading: false}
			return next
		})
		return next
	})
}

// Reset returns the counter to the initial state after the reset delay,
// with the message replaced by the reset notice instead of the initial
// prompt.
func (vm *ViewModel) Reset() *vessel.Future[State] {
	vm.state.Update(func(s State) State {
		return s.WithLoading(true)
	})
	return vessel.NewFuture(func() State {
		time.Sleep(time.Duration(vm.cfg.ResetDelay))
		next := Initial().WithMessage(resetMessage)
		vm.state.Set(next)
		return next
	})
}

// SetCount replaces the count with value after the set delay. A negative
// value short-circuits synchronously: only the message is replaced with
// the error notice, no loading phase runs, and the returned future is
// already resolved. The caller is never handed an error; the message is
// the only signal.
func (vm *ViewModel) SetCount(value int) *vessel.Future[State] {
	if value < 0 {
		var next State
		vm.state.Update(func(s State) State {
			next = s.WithMessage(negativeValueMessage)
			return next
		})
		return vessel.Resolved(next)
	}
	vm.state.Update(func(s State) State {
		return s.WithLoading(true)
	})
	return vessel.NewFuture(func() State {
		time.Sleep(time.Duration(vm.cfg.SetCountDelay))
		next := State{Count: value, Message: customMessage(value), Loading: false}
		vm.state.Set(next)
		return next
	})
}
