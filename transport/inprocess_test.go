// Copyright 2017, Kerby Shedden and the Muscato contributors.

package transport

import (
	"sync"
	"testing"
)

func TestSendRecvRoundTrip(t *testing.T) {
	views := NewHub(2)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := views[0].Send([]float64{1, 2, 3}, 1, 5); err != nil {
			t.Errorf("send failed: %v", err)
		}
	}()

	var got []float64
	go func() {
		defer wg.Done()
		got = make([]float64, 3)
		if err := views[1].Recv(got, 0, 5); err != nil {
			t.Errorf("recv failed: %v", err)
		}
	}()

	wg.Wait()

	want := []float64{1, 2, 3}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("got[%d] = %v, want %v", i, got[i], v)
		}
	}
}

func TestRecvRejectsLengthMismatch(t *testing.T) {
	views := NewHub(2)

	go views[0].Send([]float64{1, 2, 3}, 1, 1)

	buf := make([]float64, 2)
	if err := views[1].Recv(buf, 0, 1); err == nil {
		t.Fatal("expected a TransportError for a buffer length mismatch")
	}
}

func TestBarrierReleasesAllRanksTogether(t *testing.T) {
	size := 4
	views := NewHub(size)

	var mu sync.Mutex
	released := make([]bool, size)

	var wg sync.WaitGroup
	wg.Add(size)
	for r := 0; r < size; r++ {
		r := r
		go func() {
			defer wg.Done()
			views[r].Barrier()
			mu.Lock()
			released[r] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	for r, ok := range released {
		if !ok {
			t.Errorf("rank %d never returned from Barrier", r)
		}
	}
}

func TestSizeAndRank(t *testing.T) {
	views := NewHub(3)
	for r, v := range views {
		if v.Size() != 3 {
			t.Errorf("Size() = %d, want 3", v.Size())
		}
		if v.Rank() != r {
			t.Errorf("Rank() = %d, want %d", v.Rank(), r)
		}
	}
}
