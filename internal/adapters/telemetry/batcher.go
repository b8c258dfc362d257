package telemetry

import (
	"bytes"
	"sync"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultSizeLimit is the buffer size (4KB) at which a span log buffer
	// flushes early, ahead of its time limit.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the flush interval (50ms) for a span log buffer.
	DefaultTimeLimit = 50 * time.Millisecond
)

// errSpanLogBufferClosed is returned by spanLogBuffer.Write once the owning
// span has ended.
var errSpanLogBufferClosed = zerr.New("span log buffer closed")

// spanLogBuffer coalesces the child-process output lines written to an
// OTelSpan into size- or time-bounded chunks, so a build streaming thousands
// of log lines doesn't become thousands of OTel events. One is created per
// span in OTelTracer.Start and torn down in OTelSpan.End.
type spanLogBuffer struct {
	sizeLimit int
	timeLimit time.Duration
	onFlush   func([]byte)

	mu     sync.Mutex
	buffer *bytes.Buffer
	ticker *time.Ticker
	stopCh chan struct{}
	closed bool
}

// newSpanLogBuffer starts a spanLogBuffer that flushes to onFlush whenever
// sizeLimit bytes have accumulated or timeLimit has elapsed, whichever comes
// first. A zero or negative limit falls back to the package default. The
// caller must call Close to stop the background ticker.
func newSpanLogBuffer(sizeLimit int, timeLimit time.Duration, onFlush func([]byte)) *spanLogBuffer {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	b := &spanLogBuffer{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		onFlush:   onFlush,
		buffer:    new(bytes.Buffer),
		stopCh:    make(chan struct{}),
	}

	b.ticker = time.NewTicker(timeLimit)
	go b.run()

	return b
}

// Write appends p to the buffer, flushing immediately if sizeLimit is reached.
func (b *spanLogBuffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errSpanLogBufferClosed
	}

	n, err = b.buffer.Write(p)
	if err != nil {
		return n, err
	}

	if b.buffer.Len() >= b.sizeLimit {
		b.flushLocked()
		b.ticker.Reset(b.timeLimit)
	}

	return n, nil
}

// Flush sends any buffered data to onFlush now, rather than waiting for the
// next tick.
func (b *spanLogBuffer) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.flushLocked()
}

// Close stops the background ticker and flushes any remaining data. Writes
// after Close return errSpanLogBufferClosed.
func (b *spanLogBuffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	b.closed = true
	close(b.stopCh)
	b.flushLocked()
	return nil
}

func (b *spanLogBuffer) run() {
	for {
		select {
		case <-b.ticker.C:
			b.Flush()
		case <-b.stopCh:
			b.ticker.Stop()
			return
		}
	}
}

// flushLocked requires mu to be held.
func (b *spanLogBuffer) flushLocked() {
	if b.buffer.Len() == 0 {
		return
	}

	data := make([]byte, b.buffer.Len())
	copy(data, b.buffer.Bytes())
	b.buffer.Reset()

	if b.onFlush != nil {
		b.onFlush(data)
	}
}
