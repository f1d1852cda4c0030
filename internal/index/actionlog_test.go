package index

import (
	"fmt"
	"testing"

	"github.com/iho/fintrack/internal/domain"
)

func action(category string) domain.Action {
	return domain.Action{Kind: domain.ActionAddBudget, Category: category}
}

func TestActionLog_LIFO(t *testing.T) {
	log := NewActionLog(10)
	log.Push(action("first"))
	log.Push(action("second"))

	a, ok := log.Pop()
	if !ok || a.Category != "second" {
		t.Fatalf("expected second out first, got %+v", a)
	}
	a, _ = log.Pop()
	if a.Category != "first" {
		t.Fatalf("expected first out last, got %+v", a)
	}
	if _, ok := log.Pop(); ok {
		t.Fatal("pop on empty log must fail")
	}
}

func TestActionLog_OverflowEvictsOldest(t *testing.T) {
	log := NewActionLog(3)
	for i := 1; i <= 5; i++ {
		log.Push(action(fmt.Sprintf("a%d", i)))
	}

	if log.Len() != 3 {
		t.Fatalf("expected len capped at 3, got %d", log.Len())
	}

	// a1 and a2 fell off the bottom; the rest pop newest-first.
	for _, want := range []string{"a5", "a4", "a3"} {
		a, ok := log.Pop()
		if !ok || a.Category != want {
			t.Fatalf("expected %s, got %+v ok=%v", want, a, ok)
		}
	}
}

func TestActionLog_Peek(t *testing.T) {
	log := NewActionLog(10)
	if _, ok := log.Peek(); ok {
		t.Fatal("peek on empty log must fail")
	}

	log.Push(action("a1"))
	a, ok := log.Peek()
	if !ok || a.Category != "a1" {
		t.Fatalf("expected a1, got %+v", a)
	}
	if log.Len() != 1 {
		t.Fatal("peek must not remove")
	}
}

func TestActionLog_All(t *testing.T) {
	log := NewActionLog(10)
	log.Push(action("a1"))
	log.Push(action("a2"))

	all := log.All()
	if len(all) != 2 || all[0].Category != "a2" || all[1].Category != "a1" {
		t.Fatalf("expected most-recent-first [a2 a1], got %+v", all)
	}
}

func TestActionLog_DefaultCapacity(t *testing.T) {
	log := NewActionLog(0)
	for i := 0; i < DefaultActionCapacity+10; i++ {
		log.Push(action(fmt.Sprintf("a%d", i)))
	}
	if log.Len() != DefaultActionCapacity {
		t.Fatalf("expected default capacity %d, got %d", DefaultActionCapacity, log.Len())
	}
}
