package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaga_HappyPath(t *testing.T) {
	s := NewSaga("s-1")
	for _, to := range []SagaState{StateReserving, StateCharging, StatePersisting, StateCommitting, StateDone} {
		require.NoError(t, s.Transition(to))
	}
	assert.True(t, s.Terminal())
}

func TestSaga_RollbackFromEveryEarlyState(t *testing.T) {
	path := []SagaState{StateStarted, StateReserving, StateCharging, StatePersisting}
	for i, from := range path {
		t.Run(string(from), func(t *testing.T) {
			s := NewSaga("s")
			for _, step := range path[1 : i+1] {
				require.NoError(t, s.Transition(step))
			}
			require.Equal(t, from, s.State)
			require.NoError(t, s.Transition(StateRollingBack))
			require.NoError(t, s.Transition(StateFailed))
			assert.True(t, s.Terminal())
		})
	}
}

func TestSaga_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from []SagaState
		to   SagaState
	}{
		{"skip reserving", nil, StateCharging},
		{"rollback after commit started", []SagaState{StateReserving, StateCharging, StatePersisting, StateCommitting}, StateRollingBack},
		{"leave done", []SagaState{StateReserving, StateCharging, StatePersisting, StateCommitting, StateDone}, StateReserving},
		{"leave failed", []SagaState{StateRollingBack, StateFailed}, StateRollingBack},
		{"fail without rollback", []SagaState{StateReserving}, StateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSaga("s")
			for _, step := range tt.from {
				require.NoError(t, s.Transition(step))
			}
			before := s.State
			err := s.Transition(tt.to)
			assert.ErrorIs(t, err, ErrIllegalTransition)
			assert.Equal(t, before, s.State)
		})
	}
}

func TestSaga_TrackKeepsOrder(t *testing.T) {
	s := NewSaga("s")
	s.Track(2, 1)
	s.Track(1, 3)
	assert.Equal(t, []Reservation{{ProductID: 2, Quantity: 1}, {ProductID: 1, Quantity: 3}}, s.Reservations)
}
