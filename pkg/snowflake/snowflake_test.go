package snowflake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenOrderID_Increasing(t *testing.T) {
	prev := GenOrderID()
	require.Positive(t, prev)
	for i := 0; i < 1000; i++ {
		curr := GenOrderID()
		require.Greater(t, curr, prev)
		prev = curr
	}
}

// 并发下单不能拿到重复主键
func TestGenOrderID_Concurrent(t *testing.T) {
	const workers, perWorker = 16, 2000

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[int64]struct{}, workers*perWorker)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, GenOrderID())
			}
			mu.Lock()
			for _, id := range local {
				ids[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, workers*perWorker)
}
