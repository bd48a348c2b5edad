package observability

import (
	"log"
	"sync"
	"time"
)

// RunObserver counts task pipeline outcomes and writes them to a plain
// logger. All methods are nil-safe so call sites never have to guard.
type RunObserver struct {
	logger *log.Logger

	mu        sync.Mutex
	runs      map[string]int64
	failures  map[string]int64
	fallbacks int64
	cacheHits int64
}

func NewRunObserver(logger *log.Logger) *RunObserver {
	if logger == nil {
		logger = log.Default()
	}
	return &RunObserver{
		logger:   logger,
		runs:     make(map[string]int64),
		failures: make(map[string]int64),
	}
}

func (o *RunObserver) RecordRun(task string, latency time.Duration) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.runs[task]++
	count := o.runs[task]
	o.mu.Unlock()

	o.logger.Printf("task run task=%s count=%d latency_ms=%d", task, count, latency.Milliseconds())
}

func (o *RunObserver) RecordFailure(task string, err error) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.failures[task]++
	count := o.failures[task]
	o.mu.Unlock()

	o.logger.Printf("task failure task=%s count=%d err=%v", task, count, err)

	// Basic alert hook for repeated generation failures.
	if count%10 == 0 {
		o.logger.Printf("task alert task=%s repeated_failure_count=%d", task, count)
	}
}

// RecordFallback notes a classification that resolved to the fallback
// category. The resolved result is unchanged; this is visibility only.
func (o *RunObserver) RecordFallback(inquiryChars int) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.fallbacks++
	count := o.fallbacks
	o.mu.Unlock()

	o.logger.Printf("classification fallback count=%d inquiry_chars=%d", count, inquiryChars)
}

func (o *RunObserver) RecordCacheHit(task string) {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.cacheHits++
	count := o.cacheHits
	o.mu.Unlock()

	o.logger.Printf("cache hit task=%s count=%d", task, count)
}
