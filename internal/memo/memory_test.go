package memo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/robalobadob/mastermind/internal/peg"
)

func TestMemoryStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	if _, err := st.Get(ctx, "4x8"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	g := peg.MustNew(peg.Classic, 0, 0, 1, 1)
	if err := st.Save(ctx, "4x8", g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(ctx, "4x8")
	if err != nil || got != g {
		t.Fatalf("Get = %s, %v; want %s", got, err, g)
	}
	if st.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", st.Len())
	}
}

func TestBoundedStore_DropsNewKeysWhenFull(t *testing.T) {
	ctx := context.Background()
	st := NewBoundedStore(1)
	a := peg.MustNew(peg.Classic, 1, 1, 1, 1)
	b := peg.MustNew(peg.Classic, 2, 2, 2, 2)
	_ = st.Save(ctx, "a", a)
	_ = st.Save(ctx, "b", b)
	if _, err := st.Get(ctx, "b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected key beyond limit to be dropped, got %v", err)
	}
	// Updating an existing key is still allowed.
	_ = st.Save(ctx, "a", b)
	if got, _ := st.Get(ctx, "a"); got != b {
		t.Fatalf("update of existing key lost: %s", got)
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	all := peg.Universe(peg.Dims{Pegs: 2, Colors: 4})
	var wg sync.WaitGroup
	for i, c := range all {
		wg.Add(1)
		go func(i int, c peg.Code) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = st.Save(ctx, key, c)
			if got, err := st.Get(ctx, key); err != nil || got != c {
				t.Errorf("Get(%s) = %s, %v", key, got, err)
			}
		}(i, c)
	}
	wg.Wait()
	if st.Len() != len(all) {
		t.Fatalf("Len() = %d, want %d", st.Len(), len(all))
	}
}
