package telemetry

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanLogBuffer_FlushOnSize(t *testing.T) {
	var collected []byte
	var mu sync.Mutex

	// Size limit 5 bytes, time limit large enough not to trigger on its own.
	buf := newSpanLogBuffer(5, time.Hour, func(data []byte) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, data...)
	})
	defer func() { _ = buf.Close() }()

	_, err := buf.Write([]byte("123"))
	require.NoError(t, err)

	mu.Lock()
	assert.Empty(t, collected)
	mu.Unlock()

	// 3 + 3 = 6 > 5, flushes synchronously.
	_, err = buf.Write([]byte("456"))
	require.NoError(t, err)

	mu.Lock()
	assert.Equal(t, "123456", string(collected))
	mu.Unlock()
}

func TestSpanLogBuffer_FlushOnTime(t *testing.T) {
	var collected []byte
	var mu sync.Mutex
	flushCh := make(chan struct{}, 1)

	buf := newSpanLogBuffer(100, 50*time.Millisecond, func(data []byte) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, data...)
		select {
		case flushCh <- struct{}{}:
		default:
		}
	})
	defer func() { _ = buf.Close() }()

	_, err := buf.Write([]byte("test"))
	require.NoError(t, err)

	mu.Lock()
	assert.Empty(t, collected)
	mu.Unlock()

	select {
	case <-flushCh:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for flush")
	}

	mu.Lock()
	assert.Equal(t, "test", string(collected))
	mu.Unlock()
}

func TestSpanLogBuffer_ManualFlush(t *testing.T) {
	var collected []byte
	var mu sync.Mutex

	buf := newSpanLogBuffer(100, time.Hour, func(data []byte) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, data...)
	})
	defer func() { _ = buf.Close() }()

	_, err := buf.Write([]byte("hello"))
	require.NoError(t, err)

	mu.Lock()
	assert.Empty(t, collected)
	mu.Unlock()

	buf.Flush()

	mu.Lock()
	assert.Equal(t, "hello", string(collected))
	mu.Unlock()
}

func TestSpanLogBuffer_CloseFlushes(t *testing.T) {
	var collected []byte
	var mu sync.Mutex

	buf := newSpanLogBuffer(100, time.Hour, func(data []byte) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, data...)
	})

	_, err := buf.Write([]byte("pending"))
	require.NoError(t, err)

	mu.Lock()
	assert.Empty(t, collected)
	mu.Unlock()

	err = buf.Close()
	require.NoError(t, err)

	mu.Lock()
	assert.Equal(t, "pending", string(collected))
	mu.Unlock()

	_, err = buf.Write([]byte("fail"))
	assert.ErrorIs(t, err, errSpanLogBufferClosed)
}

func TestSpanLogBuffer_ThreadSafety(t *testing.T) {
	var collected []byte
	var mu sync.Mutex

	// Small limits trigger frequent flushing from both size and time.
	buf := newSpanLogBuffer(20, 10*time.Millisecond, func(data []byte) {
		mu.Lock()
		defer mu.Unlock()
		collected = append(collected, data...)
	})
	defer func() { _ = buf.Close() }()

	var wg sync.WaitGroup
	workers := 10
	iterations := 100
	data := []byte("a")

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				_, _ = buf.Write(data)
				if j%10 == 0 {
					buf.Flush()
				}
				if j%20 == 0 {
					time.Sleep(1 * time.Millisecond)
				}
			}
		}()
	}

	wg.Wait()
	_ = buf.Close()

	mu.Lock()
	assert.Len(t, collected, workers*iterations)
	mu.Unlock()
}
