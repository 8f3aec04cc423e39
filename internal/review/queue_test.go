package review

import "testing"

func TestQueue_DeferOrder(t *testing.T) {
	q := NewQueue()
	q.Defer("b")
	q.Defer("a")
	q.Defer("c")

	got := q.Pending()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Pending() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pending()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestQueue_DuplicateDeferIgnored(t *testing.T) {
	q := NewQueue()
	q.Defer("a")
	q.Defer("b")
	q.Defer("a")

	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
	if q.Pending()[0] != "a" {
		t.Errorf("duplicate defer moved %q from its original position", "a")
	}
}

func TestQueue_Resolve(t *testing.T) {
	q := NewQueue()
	q.Defer("a")
	q.Defer("b")
	q.Resolve("a")

	if q.Contains("a") {
		t.Error("resolved id still reported as deferred")
	}
	if q.Len() != 1 || q.Pending()[0] != "b" {
		t.Errorf("Pending() = %v, want [b]", q.Pending())
	}

	// Resolving an unknown id is a no-op.
	q.Resolve("ghost")
	if q.Len() != 1 {
		t.Errorf("Len() after no-op resolve = %d, want 1", q.Len())
	}
}

func TestQueue_PendingIsCopy(t *testing.T) {
	q := NewQueue()
	q.Defer("a")
	p := q.Pending()
	p[0] = "mutated"
	if q.Pending()[0] != "a" {
		t.Error("Pending() exposed internal slice")
	}
}
