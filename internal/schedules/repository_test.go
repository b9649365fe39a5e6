package schedules

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestInMemoryRepository_Save(t *testing.T) {
	repo := NewInMemoryRepository(0)

	t.Run("success", func(t *testing.T) {
		if err := repo.Save(&Record{Name: "kudzu", Text: "kudzu0-5.00"}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, ok := repo.Get("kudzu")
		if !ok {
			t.Fatal("Get: ok false")
		}
		if got.Text != "kudzu0-5.00" || got.SavedAt.IsZero() {
			t.Errorf("Get: got %+v", got)
		}
	})

	t.Run("replace_same_name", func(t *testing.T) {
		if err := repo.Save(&Record{Name: "kudzu", Text: "kudzu0-7.00"}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, _ := repo.Get("kudzu")
		if got.Text != "kudzu0-7.00" {
			t.Errorf("expected replaced record, got %q", got.Text)
		}
		if repo.Count() != 1 {
			t.Errorf("Count: got %d want 1", repo.Count())
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		if err := repo.Save(&Record{}); !errors.Is(err, ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})
}

func TestInMemoryRepository_capacity(t *testing.T) {
	repo := NewInMemoryRepository(2)
	_ = repo.Save(&Record{Name: "a"})
	_ = repo.Save(&Record{Name: "b"})

	if err := repo.Save(&Record{Name: "c"}); !errors.Is(err, ErrCapacityReached) {
		t.Errorf("expected ErrCapacityReached, got %v", err)
	}
	// Replacing an existing name does not need a free slot.
	if err := repo.Save(&Record{Name: "a"}); err != nil {
		t.Errorf("replace at capacity: %v", err)
	}

	_ = repo.Delete("b")
	if err := repo.Save(&Record{Name: "c"}); err != nil {
		t.Errorf("save after delete: %v", err)
	}
}

func TestInMemoryRepository_concurrent_capacity(t *testing.T) {
	repo := NewInMemoryRepository(10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Save(&Record{Name: fmt.Sprintf("plan-%d", i)})
		}(i)
	}
	wg.Wait()

	if repo.Count() != 10 {
		t.Errorf("Count: got %d want 10", repo.Count())
	}
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := NewInMemoryRepository(0)

	t.Run("idempotent_nonexistent", func(t *testing.T) {
		if err := repo.Delete("missing"); err != nil {
			t.Errorf("Delete nonexistent should be no-op: %v", err)
		}
	})

	_ = repo.Save(&Record{Name: "kudzu"})
	if err := repo.Delete("kudzu"); err != nil {
		t.Fatal(err)
	}
	if _, ok := repo.Get("kudzu"); ok {
		t.Error("record should be gone after Delete")
	}
}

func TestNewInMemoryRepositoryWithStore(t *testing.T) {
	store := NewInMemoryStore()
	repo := NewInMemoryRepositoryWithStore(store, 1)

	if err := repo.Save(&Record{Name: "kudzu"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := store.Get("kudzu"); !ok {
		t.Error("injected store should contain record after Save")
	}
}
