package stream

import (
	"errors"
	"testing"
)

func TestSubject_NextDeliversInSubscriptionOrder(t *testing.T) {
	subj := NewSubject[int]()
	var order []string

	subj.Subscribe(OnNext(func(v int) {
		order = append(order, "first")
	}))
	subj.Subscribe(OnNext(func(v int) {
		order = append(order, "second")
	}))

	subj.Next(1)
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected delivery in subscription order, got %v", order)
	}
}

func TestSubject_Unsubscribe(t *testing.T) {
	subj := NewSubject[int]()
	calls := 0

	sub := subj.Subscribe(OnNext(func(int) { calls++ }))
	subj.Next(1)
	sub.Unsubscribe()
	subj.Next(2)

	if calls != 1 {
		t.Fatalf("expected 1 call after unsubscribe, got %d", calls)
	}
	if sub.Active() {
		t.Fatalf("expected subscription to be inactive")
	}
}

func TestSubject_FailTerminates(t *testing.T) {
	subj := NewSubject[int]()
	boom := errors.New("boom")
	var got error
	values := 0

	subj.Subscribe(Observer[int]{
		Next:  func(int) { values++ },
		Error: func(err error) { got = err },
	})

	subj.Fail(boom)
	subj.Next(1)

	if got != boom {
		t.Fatalf("expected error %v, got %v", boom, got)
	}
	if values != 0 {
		t.Fatalf("expected no values after fail, got %d", values)
	}

	var late error
	sub := subj.Subscribe(Observer[int]{Error: func(err error) { late = err }})
	if late != boom {
		t.Fatalf("expected late subscriber to receive terminal error, got %v", late)
	}
	if sub.Active() {
		t.Fatalf("expected late subscription to be inactive")
	}
}

func TestSubject_DoneCompletes(t *testing.T) {
	subj := NewSubject[int]()
	completed := 0

	subj.Subscribe(Observer[int]{Complete: func() { completed++ }})
	subj.Done()
	subj.Done()
	subj.Next(1)

	if completed != 1 {
		t.Fatalf("expected 1 completion, got %d", completed)
	}
	if !subj.Terminated() {
		t.Fatalf("expected subject to be terminated")
	}

	lateCompleted := false
	subj.Subscribe(Observer[int]{Complete: func() { lateCompleted = true }})
	if !lateCompleted {
		t.Fatalf("expected late subscriber to complete immediately")
	}
}

func TestSubscription_IDsUnique(t *testing.T) {
	a := NewSubscription(nil)
	b := NewSubscription(nil)
	if a.ID() == "" || b.ID() == "" {
		t.Fatalf("expected non-empty subscription ids")
	}
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct subscription ids, both %q", a.ID())
	}
}

func TestSubscription_TeardownRunsOnce(t *testing.T) {
	calls := 0
	sub := NewSubscription(func() { calls++ })
	sub.Unsubscribe()
	sub.Unsubscribe()
	if calls != 1 {
		t.Fatalf("expected teardown to run once, got %d", calls)
	}
}

func TestClosed(t *testing.T) {
	if Closed().Active() {
		t.Fatalf("expected closed subscription to be inactive")
	}
}
