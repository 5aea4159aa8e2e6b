package storex

import "testing"

type benchState struct {
	count int
}

func benchReducer(state benchState, delta int) (benchState, any) {
	state.count += delta
	return state, nil
}

// BenchmarkDispatch measures a single reducer run plus state swap.
func BenchmarkDispatch(b *testing.B) {
	s := New(benchReducer, benchState{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Dispatch(1)
	}
}

// BenchmarkDispatchWithSubscriber includes the synchronous notification.
func BenchmarkDispatchWithSubscriber(b *testing.B) {
	notified := 0
	s := New(benchReducer, benchState{},
		WithSubscriber[int](func(state, previous benchState, command any) {
			notified++
		}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Dispatch(1)
	}
	b.StopTimer()
	if notified != b.N {
		b.Fatalf("notified %d times, want %d", notified, b.N)
	}
}
