package pool

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestQuiescenceUnderContention(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter int64
	const taskCount = 1000

	for i := 0; i < taskCount; i++ {
		p.Submit(func() {
			atomic.AddInt64(&counter, 1)
		})
	}
	p.Wait()

	if got := atomic.LoadInt64(&counter); got != taskCount {
		t.Fatalf("counter = %d, want %d", got, taskCount)
	}
}

func TestEmptyPoolShutdown(t *testing.T) {
	p := New(4)
	done := make(chan struct{})
	go func() {
		p.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close on an empty pool did not return")
	}
}

func TestWaitReturnsWhenQueueAndBusyAreBothZero(t *testing.T) {
	p := New(2)
	defer p.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	p.Submit(func() {
		close(started)
		<-release
	})
	<-started

	waitReturned := make(chan struct{})
	go func() {
		p.Wait()
		close(waitReturned)
	}()

	select {
	case <-waitReturned:
		t.Fatal("Wait returned while a task was still running")
	default:
	}

	close(release)
	<-waitReturned
}

func TestPoolScalesAcrossWorkerCounts(t *testing.T) {
	for _, n := range []int{1, 8} {
		p := New(n)
		var counter int64
		for i := 0; i < 100; i++ {
			p.Submit(func() { atomic.AddInt64(&counter, 1) })
		}
		p.Wait()
		p.Close()

		if got := atomic.LoadInt64(&counter); got != 100 {
			t.Fatalf("N=%d: counter = %d, want 100", n, got)
		}
	}
}
