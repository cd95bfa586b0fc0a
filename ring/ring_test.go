package ring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotBeforeFirstWrite(t *testing.T) {
	buf := New(16)

	dst := make([]float64, buf.Size())
	for i := range dst {
		dst[i] = -1
	}

	buf.Snapshot(dst)

	for i, v := range dst {
		require.Zero(t, v, "sample %d", i)
	}
}

func TestWriteCircularity(t *testing.T) {
	const size = 8

	buf := New(size)

	// Write well past the capacity; only the trailing window survives.
	for i := 0; i < 20; i++ {
		buf.Write(float64(i))
	}

	dst := make([]float64, size)
	buf.Snapshot(dst)

	for i := range dst {
		assert.Equal(t, float64(12+i), dst[i], "sample %d", i)
	}
}

func TestWriteBlockWraps(t *testing.T) {
	buf := New(8)

	buf.WriteBlock([]float64{0, 1, 2, 3, 4})
	buf.WriteBlock([]float64{5, 6, 7, 8, 9})

	dst := make([]float64, buf.Size())
	buf.Snapshot(dst)

	assert.Equal(t, []float64{2, 3, 4, 5, 6, 7, 8, 9}, dst)
}

func TestWriteBlockOversized(t *testing.T) {
	buf := New(4)

	block := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	buf.WriteBlock(block)

	dst := make([]float64, buf.Size())
	buf.Snapshot(dst)

	assert.Equal(t, []float64{6, 7, 8, 9}, dst)
}

func TestMixedWritesStayChronological(t *testing.T) {
	buf := New(6)

	buf.Write(1)
	buf.WriteBlock([]float64{2, 3, 4})
	buf.Write(5)
	buf.WriteBlock([]float64{6, 7})

	dst := make([]float64, buf.Size())
	buf.Snapshot(dst)

	assert.Equal(t, []float64{2, 3, 4, 5, 6, 7}, dst)
}

// Writers and the snapshot side share one lock; run them against each other
// so the race detector has something to chew on.
func TestConcurrentWriteSnapshot(t *testing.T) {
	buf := New(128)
	block := make([]float64, 32)
	for i := range block {
		block[i] = float64(i)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			buf.WriteBlock(block)
		}
	}()

	go func() {
		defer wg.Done()
		dst := make([]float64, buf.Size())
		for i := 0; i < 1000; i++ {
			buf.Snapshot(dst)
		}
	}()

	wg.Wait()
}
