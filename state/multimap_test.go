package state

import "testing"

func TestMultiMap_AddRemove(t *testing.T) {
	m := NewMultiMap[string]()

	m.AddToValue("ada", "friend")
	m.AddToValue("ada", "friend") // unique by default
	if list, _ := m.GetValue("ada"); len(list) != 1 {
		t.Fatalf("expected unique add to be idempotent, got %v", list)
	}

	m.AddToValue("ada", "friend", AllowDuplicate)
	if list, _ := m.GetValue("ada"); len(list) != 2 {
		t.Fatalf("expected duplicate to be appended, got %v", list)
	}

	m.RemoveFromValue("ada", "friend")
	list, ok := m.GetValue("ada")
	if !ok {
		t.Fatalf("expected key to survive emptying its list")
	}
	if len(list) != 0 {
		t.Fatalf("expected all matches removed, got %v", list)
	}
}

func TestMultiMap_RemoveFromMissingKey(t *testing.T) {
	m := NewMultiMap[int]()
	emissions := 0

	Observe(nil, m.State(), func(map[string][]int) { emissions++ })
	m.RemoveFromValue("nope", 1)

	if emissions != 1 { // the initial replay only
		t.Fatalf("expected no broadcast for a missing key, got %d", emissions)
	}
}

func TestMultiMap_KeyContains(t *testing.T) {
	m := NewMultiMapOf(map[string][]string{"ada": {"friend", "work"}})

	if !m.KeyContains("ada", "work") {
		t.Fatalf("expected membership of work")
	}
	if m.KeyContains("ada", "family") {
		t.Fatalf("expected no membership of family")
	}
	if m.KeyContains("rob", "friend") {
		t.Fatalf("expected no membership under a missing key")
	}
}

func TestMultiMap_KeyItemState(t *testing.T) {
	m := NewMultiMap[string]()
	var got []bool

	Observe(nil, m.KeyItemState("ada", "friend"), func(b bool) { got = append(got, b) })

	m.AddToValue("ada", "friend")
	m.RemoveFromValue("ada", "friend")

	if len(got) != 3 || got[0] || !got[1] || got[2] {
		t.Fatalf("expected [false true false], got %v", got)
	}
}

func TestMultiMap_TotalLen(t *testing.T) {
	m := NewMultiMapOf(map[string][]int{
		"k1": {1, 2},
		"k2": {3},
	})
	if got := m.TotalLen(); got != 3 {
		t.Fatalf("expected total length 3, got %d", got)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", m.Len())
	}
}

func TestMultiMap_TotalLenNested(t *testing.T) {
	m := NewMultiMapOf(map[string][]any{
		"k1": {[]any{1, 2}, 3},
	})
	if got := m.TotalLen(); got != 3 {
		t.Fatalf("expected nested lists to count recursively, got %d", got)
	}
}

func TestMultiMap_OnFirstNonEmptySet(t *testing.T) {
	m := NewMultiMap[int]()
	var got []map[string][]int
	completed := false

	m.OnFirstNonEmptySet(func(mv map[string][]int) { got = append(got, mv) },
		OnComplete(func() { completed = true }))

	// the empty replay and an explicit empty set do not qualify
	m.Reset()
	if len(got) != 0 {
		t.Fatalf("expected empty mappings to be skipped, got %v", got)
	}

	m.AddToValue("k", 1)
	m.AddToValue("k", 2)

	if len(got) != 1 {
		t.Fatalf("expected exactly one emission, got %d", len(got))
	}
	if list := got[0]["k"]; len(list) != 1 || list[0] != 1 {
		t.Fatalf("expected the first non-empty mapping, got %v", got[0])
	}
	if !completed {
		t.Fatalf("expected completion after first non-empty mapping")
	}
}

func TestMultiMap_OnFirstNonEmptyChange(t *testing.T) {
	m := NewMultiMapOf(map[string][]int{"k": {1}})
	var got []map[string][]int

	m.OnFirstNonEmptyChange(func(mv map[string][]int) { got = append(got, mv) })

	if len(got) != 1 {
		t.Fatalf("expected replayed non-empty mapping, got %d emissions", len(got))
	}
}

func TestMultiMap_CompositeKeys(t *testing.T) {
	m := NewMultiMap[string]()
	m.AddToValue(Key("ada", "tags"), "friend")

	if list, ok := m.GetValueByKeys("ada", "tags"); !ok || len(list) != 1 || list[0] != "friend" {
		t.Fatalf("expected composite-key list [friend], got %v (ok=%v)", list, ok)
	}
}
