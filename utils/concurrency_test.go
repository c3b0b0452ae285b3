package utils

import (
	"sync/atomic"
	"testing"
)

func TestIDSetNoDuplicates(t *testing.T) {
	s := NewIDSet()

	if !s.Add("zpid-1") {
		t.Error("first Add should return true")
	}
	if s.Add("zpid-1") {
		t.Error("second Add of same id should return false")
	}
	if !s.Contains("zpid-1") {
		t.Error("Contains should report the added id")
	}
	if s.Size() != 1 {
		t.Errorf("size: got %d, want 1", s.Size())
	}
}

func TestIDSetConcurrency(t *testing.T) {
	s := NewIDSet()
	var added int64

	pool := NewWorkerPool(10)
	for i := 0; i < 100; i++ {
		pool.Submit(func() {
			if s.Add("zpid-same") {
				atomic.AddInt64(&added, 1)
			}
		})
	}
	pool.Wait()

	if added != 1 {
		t.Errorf("expected exactly 1 successful add, got %d", added)
	}
}

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	pool := NewWorkerPool(4)
	var done int64

	for i := 0; i < 50; i++ {
		pool.Submit(func() {
			atomic.AddInt64(&done, 1)
		})
	}
	pool.Wait()

	if done != 50 {
		t.Errorf("completed jobs: got %d, want 50", done)
	}
}

func TestWorkerPoolMinimumOneWorker(t *testing.T) {
	pool := NewWorkerPool(0)
	ran := false
	pool.Submit(func() { ran = true })
	pool.Wait()
	if !ran {
		t.Error("job never ran with clamped worker count")
	}
}
