package state

import (
	"testing"

	"github.com/odvcencio/fuzzy-state/stream"
)

func TestList_AddUnique(t *testing.T) {
	l := NewList[int]()
	l.Add(1)
	l.Add(1)
	if l.Len() != 1 {
		t.Fatalf("expected unique add to be idempotent, got %d items", l.Len())
	}

	l.Add(1, AllowDuplicate)
	if l.Len() != 2 {
		t.Fatalf("expected duplicate to be appended, got %d items", l.Len())
	}
}

func TestList_RemoveAllMatches(t *testing.T) {
	l := NewList(1, 2, 1, 3)
	l.Remove(1)
	got := l.Get()
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("expected [2 3] after remove, got %v", got)
	}
}

func TestList_SnapshotQueries(t *testing.T) {
	l := NewList("ada", "grace", "ken")

	if !l.Contains("grace") {
		t.Fatalf("expected containment of grace")
	}
	if l.Contains("rob") {
		t.Fatalf("expected no containment of rob")
	}
	if first, ok := l.FirstItem(func(s string) bool { return len(s) == 3 }); !ok || first != "ada" {
		t.Fatalf("expected first 3-letter item ada, got %q (ok=%v)", first, ok)
	}
	if items := l.Items(func(s string) bool { return len(s) == 3 }); len(items) != 2 {
		t.Fatalf("expected 2 matching items, got %v", items)
	}
}

func TestList_ItemState(t *testing.T) {
	l := NewList[string]()
	var got []bool

	Observe(nil, l.ItemState("ada"), func(b bool) { got = append(got, b) })

	l.Add("ada")
	l.Remove("ada")

	// initial replay of the empty list, then membership transitions
	if len(got) != 3 || got[0] || !got[1] || got[2] {
		t.Fatalf("expected [false true false], got %v", got)
	}
}

func TestList_ItemStateSubstring(t *testing.T) {
	l := NewList("firstname lastname")
	var got []bool

	Observe(nil, l.ItemState("lastname", Substring), func(b bool) { got = append(got, b) })

	if len(got) != 1 || !got[0] {
		t.Fatalf("expected substring membership on replay, got %v", got)
	}

	l.Remove("firstname lastname")
	if len(got) != 2 || got[1] {
		t.Fatalf("expected membership to drop, got %v", got)
	}
}

func TestList_ItemStateDeduplicates(t *testing.T) {
	l := NewList[int]()
	emissions := 0

	Observe(nil, l.ItemState(1), func(bool) { emissions++ })

	l.Add(2)
	l.Add(3)
	if emissions != 1 {
		t.Fatalf("expected unchanged membership to be deduplicated, got %d", emissions)
	}
}

func TestList_StateOfItemWaitsThenCompletes(t *testing.T) {
	l := NewList[int]()
	var got []int
	completed := false

	ObserveWith(nil, l.StateOfItem(func(v int) bool { return v > 10 }), stream.Observer[int]{
		Next:     func(v int) { got = append(got, v) },
		Complete: func() { completed = true },
	})

	l.Add(5)
	if completed {
		t.Fatalf("expected no completion before a match exists")
	}
	l.Add(11)
	l.Add(12)

	if len(got) != 1 || got[0] != 11 {
		t.Fatalf("expected exactly the first match, got %v", got)
	}
	if !completed {
		t.Fatalf("expected completion after first match")
	}
}

func TestList_StateOfItemAlreadyPresent(t *testing.T) {
	l := NewList(1, 20)
	var got []int
	completed := false

	ObserveWith(nil, l.StateOfItem(func(v int) bool { return v > 10 }), stream.Observer[int]{
		Next:     func(v int) { got = append(got, v) },
		Complete: func() { completed = true },
	})

	if len(got) != 1 || got[0] != 20 {
		t.Fatalf("expected immediate match from replay, got %v", got)
	}
	if !completed {
		t.Fatalf("expected completion on immediate match")
	}
}

func TestList_StateOfItems(t *testing.T) {
	l := NewList[int]()
	var snapshots [][]int

	Observe(nil, l.StateOfItems(func(v int) bool { return v%2 == 0 }), func(items []int) {
		snapshots = append(snapshots, items)
	})

	l.Add(1) // matching subset still empty, deduplicated
	l.Add(2)
	l.Add(3) // matching subset unchanged
	l.Add(4)

	if len(snapshots) != 3 {
		t.Fatalf("expected 3 distinct subsets, got %v", snapshots)
	}
	last := snapshots[len(snapshots)-1]
	if len(last) != 2 || last[0] != 2 || last[1] != 4 {
		t.Fatalf("expected final subset [2 4], got %v", last)
	}
}

func TestList_MutationsBroadcastWholeList(t *testing.T) {
	l := NewList[int]()
	var got [][]int

	l.OnFromSecondSet(func(items []int) { got = append(got, items) })

	l.Add(1)
	l.Add(2)

	if len(got) != 2 {
		t.Fatalf("expected 2 broadcasts after initial replay, got %d", len(got))
	}
	if len(got[1]) != 2 {
		t.Fatalf("expected whole new list, got %v", got[1])
	}
}
