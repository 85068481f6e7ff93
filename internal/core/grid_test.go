package core

import (
	"sync"
	"testing"
)

func TestSetUnsetGet(t *testing.T) {
	g := NewGrid(8)
	for _, start := range []bool{false, true} {
		g.Write(3, 4, start)
		g.Set(3, 4)
		if !g.Get(3, 4) {
			t.Fatalf("Get after Set from %v returned dead", start)
		}
		g.Write(3, 4, start)
		g.Unset(3, 4)
		if g.Get(3, 4) {
			t.Fatalf("Get after Unset from %v returned alive", start)
		}
	}
}

func TestToggleInvolution(t *testing.T) {
	g := NewGrid(4)
	g.Set(1, 1)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			before := g.Get(row, col)
			g.Toggle(row, col)
			if g.Get(row, col) == before {
				t.Fatalf("cell (%d,%d) unchanged after one toggle", row, col)
			}
			g.Toggle(row, col)
			if g.Get(row, col) != before {
				t.Fatalf("cell (%d,%d) not restored after two toggles", row, col)
			}
		}
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	g := NewGrid(4)
	coords := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}}
	for _, c := range coords {
		g.Set(c[0], c[1])
		g.Toggle(c[0], c[1])
		g.Write(c[0], c[1], true)
		if g.Get(c[0], c[1]) {
			t.Fatalf("out-of-range cell (%d,%d) reads alive", c[0], c[1])
		}
	}
	if got := g.Population(); got != 0 {
		t.Fatalf("population = %d after out-of-range writes, want 0", got)
	}
}

func TestSnapshotValues(t *testing.T) {
	g := NewGrid(3)
	g.Set(0, 0)
	g.Set(2, 1)
	g.Toggle(1, 2)

	frame := g.Snapshot(nil)
	if len(frame) != 9 {
		t.Fatalf("snapshot length = %d, want 9", len(frame))
	}
	want := []uint32{Alive, Dead, Dead, Dead, Dead, Alive, Dead, Alive, Dead}
	for i := range want {
		if frame[i] != want[i] {
			t.Fatalf("frame[%d] = %#x, want %#x", i, frame[i], want[i])
		}
	}

	reused := g.Snapshot(frame[:0])
	if &reused[0] != &frame[0] {
		t.Fatal("Snapshot did not reuse a large enough buffer")
	}
}

func TestWrap(t *testing.T) {
	g := NewGrid(5)
	cases := []struct{ row, col, wr, wc int }{
		{-1, 0, 4, 0},
		{0, -1, 0, 4},
		{5, 5, 0, 0},
		{-6, 12, 4, 2},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.row, tc.col)
		if r != tc.wr || c != tc.wc {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.row, tc.col, r, c, tc.wr, tc.wc)
		}
	}
}

func TestClearAndPopulation(t *testing.T) {
	g := NewGrid(4)
	g.Set(0, 0)
	g.Set(1, 1)
	g.Set(3, 3)
	if got := g.Population(); got != 3 {
		t.Fatalf("population = %d, want 3", got)
	}
	g.Clear()
	if got := g.Population(); got != 0 {
		t.Fatalf("population after Clear = %d, want 0", got)
	}
}

// Concurrent toggles and snapshots must never expose a value other than
// Dead or Alive.
func TestConcurrentSnapshotNeverTorn(t *testing.T) {
	g := NewGrid(16)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			g.Toggle(i%16, (i/16)%16)
			g.Store(i%g.Len(), i%3 == 0)
		}
	}()

	var frame []uint32
	for iter := 0; iter < 2000; iter++ {
		frame = g.Snapshot(frame)
		for i, v := range frame {
			if v != Dead && v != Alive {
				close(stop)
				wg.Wait()
				t.Fatalf("frame[%d] = %#x, not a valid cell value", i, v)
			}
		}
	}
	close(stop)
	wg.Wait()
}
