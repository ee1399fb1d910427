package state

import "testing"

func TestDerived_RecomputesOnDependencyChange(t *testing.T) {
	a := NewValueOf(1)
	b := NewValueOf(2)
	sum := NewDerived(func() int { return a.Get() + b.Get() }, a, b)

	if sum.Get() != 3 {
		t.Fatalf("expected initial computation 3, got %d", sum.Get())
	}

	a.Set(10)
	if sum.Get() != 12 {
		t.Fatalf("expected recompute 12, got %d", sum.Get())
	}
}

func TestDerived_OnChangeDeduplicates(t *testing.T) {
	a := NewValueOf(1)
	parity := NewDerived(func() int { return a.Get() % 2 }, a)
	var got []int

	parity.OnChange(func(v int) { got = append(got, v) })

	a.Set(3) // parity unchanged
	a.Set(4)

	// replayed initial parity, then the one real change
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Fatalf("expected [1 0], got %v", got)
	}
}

func TestDerived_Stop(t *testing.T) {
	a := NewValueOf(1)
	double := NewDerived(func() int { return a.Get() * 2 }, a)

	double.Stop()
	a.Set(5)

	if double.Get() != 2 {
		t.Fatalf("expected stale value after stop, got %d", double.Get())
	}
}
