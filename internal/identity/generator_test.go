package identity_test

import (
	"sync"
	"testing"

	"github.com/vladislavdragonenkov/crm/internal/identity"
)

func TestSequence_StartsAtOne(t *testing.T) {
	seq := identity.NewSequence()

	if id := seq.NextID(); id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}
	if id := seq.NextID(); id != 2 {
		t.Fatalf("expected second id 2, got %d", id)
	}
}

func TestSequence_StrictlyIncreasing(t *testing.T) {
	seq := identity.NewSequence()

	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id := seq.NextID()
		if id <= prev {
			t.Fatalf("expected strictly increasing ids, got %d after %d", id, prev)
		}
		prev = id
	}
}

func TestSequence_ConcurrentNoDuplicates(t *testing.T) {
	const (
		workers       = 16
		idsPerWorker  = 500
		expectedTotal = workers * idsPerWorker
	)

	seq := identity.NewSequence()

	var mu sync.Mutex
	seen := make(map[int64]struct{}, expectedTotal)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, idsPerWorker)
			for i := 0; i < idsPerWorker; i++ {
				local = append(local, seq.NextID())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != expectedTotal {
		t.Fatalf("expected %d unique ids, got %d", expectedTotal, len(seen))
	}
	for id := range seen {
		if id < 1 || id > expectedTotal {
			t.Fatalf("id %d outside expected range [1, %d]", id, expectedTotal)
		}
	}
}
