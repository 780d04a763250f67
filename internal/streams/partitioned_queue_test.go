package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionIndex_Deterministic(t *testing.T) {
	t.Parallel()

	first := partitionIndex("acme", 8)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, partitionIndex("acme", 8))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 8)
}

func TestPartitionedQueue_SameKeyPreservesOrder(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[string](4, 16)
	queue.Publish("acme", "first")
	queue.Publish("acme", "second")
	queue.Publish("acme", "third")
	queue.Close()

	idx := partitionIndex("acme", queue.PartitionCount())
	var got []string
	for msg := range queue.partitions[idx] {
		got = append(got, msg)
	}
	require.Equal(t, []string{"first", "second", "third"}, got)

	// Nothing leaked into the other partitions.
	for i, ch := range queue.partitions {
		if i == idx {
			continue
		}
		_, open := <-ch
		assert.False(t, open)
	}
}

func TestNewPartitionedQueue_Defaults(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int]()
	assert.Equal(t, defaultNumPartitions, queue.PartitionCount())
}
