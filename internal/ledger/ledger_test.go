package ledger_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hub/internal/ledger"
	"github.com/vovakirdan/arcade-hub/internal/ledger/ledgertest"
)

func TestMemory(t *testing.T) {
	ledgertest.Run(t, func(t *testing.T, starting int) ledger.Store {
		return ledger.NewMemory(starting)
	})
}

func TestMemoryConcurrentDebits(t *testing.T) {
	m := ledger.NewMemory(50)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.DebitCredit(ctx, "ada") == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if ok != 50 {
		t.Errorf("successful debits = %d, want 50", ok)
	}
	n, _ := m.Credits(ctx, "ada")
	if n != 0 {
		t.Errorf("balance = %d, want 0", n)
	}
}

func TestRedis(t *testing.T) {
	url := os.Getenv("ARCADE_TEST_REDIS_URL")
	if url == "" {
		t.Skip("ARCADE_TEST_REDIS_URL not set")
	}
	ledgertest.Run(t, func(t *testing.T, starting int) ledger.Store {
		prefix := "arcade-test:" + uuid.NewString() + ":"
		r, err := ledger.NewRedis(context.Background(), url, prefix, starting)
		if err != nil {
			t.Fatalf("NewRedis: %v", err)
		}
		t.Cleanup(func() { r.Close() })
		return r
	})
}
