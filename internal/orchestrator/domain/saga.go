package domain

import (
	"errors"
	"fmt"
	"slices"
)

type SagaState string

const (
	StateStarted     SagaState = "started"
	StateReserving   SagaState = "reserving"
	StateCharging    SagaState = "charging"
	StatePersisting  SagaState = "persisting"
	StateCommitting  SagaState = "committing"
	StateDone        SagaState = "done"
	StateRollingBack SagaState = "rolling_back"
	StateFailed      SagaState = "failed"
)

var ErrIllegalTransition = errors.New("illegal saga transition")

var transitions = map[SagaState][]SagaState{
	StateStarted:     {StateReserving, StateRollingBack},
	StateReserving:   {StateCharging, StateRollingBack},
	StateCharging:    {StatePersisting, StateRollingBack},
	StatePersisting:  {StateCommitting, StateRollingBack},
	StateCommitting:  {StateDone},
	StateRollingBack: {StateFailed},
}

// Reservation is a stock hold the saga must give back if it fails.
type Reservation struct {
	ProductID int64
	Quantity  int
}

// Saga records how far one order placement got, so a failure can be undone.
type Saga struct {
	ID           string
	State        SagaState
	Reservations []Reservation
	PaymentRef   string
	OrderID      int64
}

func NewSaga(id string) *Saga {
	return &Saga{ID: id, State: StateStarted}
}

func (s *Saga) CanTransition(to SagaState) bool {
	return slices.Contains(transitions[s.State], to)
}

func (s *Saga) Transition(to SagaState) error {
	if !s.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.State, to)
	}
	s.State = to
	return nil
}

// Track appends a successful reservation, keeping request order.
func (s *Saga) Track(productID int64, qty int) {
	s.Reservations = append(s.Reservations, Reservation{ProductID: productID, Quantity: qty})
}

func (s *Saga) Terminal() bool {
	return s.State == StateDone || s.State == StateFailed
}
