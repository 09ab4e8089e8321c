// Command handoff stresses the blocking queue with many producers and
// consumers and verifies that every item is delivered exactly once.
//
// Usage:
//
//	go run ./cmd/handoff -producers 8 -consumers 8 -items 100000
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/xyhelper/sharedqueue/blockingqueue"
)

var (
	errConsumerTimeout  = errors.New("consumer hit the dequeue timeout")
	errDeliveryMismatch = errors.New("items lost or duplicated")
)

// job is the tagged payload handed from a producer to a consumer.
type job struct {
	ID       uuid.UUID
	Producer int
	Seq      int
}

type config struct {
	producers int
	consumers int
	items     int
	timeout   time.Duration
}

// stats summarizes one run. Missing counts items never received, whatever the
// cause; TimedOut counts consumers that gave up waiting.
type stats struct {
	Total       int
	Delivered   int
	Missing     int
	Dup         int
	TimedOut    int
	Leftover    int
	PerConsumer []int
	Elapsed     time.Duration
}

// failure reports why a run did not deliver every item exactly once. A
// consumer timeout is reported first: items enqueued after the last consumer
// gave up are stranded by the harness, not lost by the queue.
func (s stats) failure() error {
	if s.TimedOut > 0 {
		return fmt.Errorf("%w: %d consumers, %d items undelivered, %d left queued",
			errConsumerTimeout, s.TimedOut, s.Missing, s.Leftover)
	}
	if s.Missing > 0 || s.Dup > 0 || s.Delivered != s.Total {
		return fmt.Errorf("%w: %d missing, %d duplicated, %d distinct of %d",
			errDeliveryMismatch, s.Missing, s.Dup, s.Delivered, s.Total)
	}
	return nil
}

func run(cfg config) stats {
	total := cfg.producers * cfg.items
	bq := blockingqueue.NewWithCapacity[job](1024)
	results := make([]map[uuid.UUID]int, cfg.consumers)
	var timedOut atomic.Int64

	start := time.Now()

	var cwg sync.WaitGroup
	for c := 0; c < cfg.consumers; c++ {
		seen := make(map[uuid.UUID]int)
		results[c] = seen
		cwg.Add(1)
		go func(c int) {
			defer cwg.Done()
			for {
				j, err := bq.DequeueTimeout(cfg.timeout)
				if err != nil {
					if blockingqueue.IsContextError(err) {
						timedOut.Add(1)
						log.Printf("handoff: consumer %d gave up after %v", c, cfg.timeout)
					} else if !blockingqueue.IsClosed(err) {
						log.Printf("handoff: consumer %d: %v", c, err)
					}
					return
				}
				seen[j.ID]++
			}
		}(c)
	}

	sent := make([][]uuid.UUID, cfg.producers)
	var pwg sync.WaitGroup
	for p := 0; p < cfg.producers; p++ {
		ids := make([]uuid.UUID, cfg.items)
		sent[p] = ids
		pwg.Add(1)
		go func(p int) {
			defer pwg.Done()
			for i := range ids {
				ids[i] = uuid.New()
				if err := bq.Enqueue(job{ID: ids[i], Producer: p, Seq: i}); err != nil {
					log.Printf("handoff: producer %d: %v", p, err)
					return
				}
			}
		}(p)
	}

	pwg.Wait()
	bq.Close()
	cwg.Wait()

	s := stats{
		Total:       total,
		TimedOut:    int(timedOut.Load()),
		Leftover:    bq.Len(),
		PerConsumer: make([]int, cfg.consumers),
		Elapsed:     time.Since(start),
	}
	merged := make(map[uuid.UUID]int, total)
	for c, seen := range results {
		s.PerConsumer[c] = len(seen)
		for id, n := range seen {
			merged[id] += n
		}
	}
	s.Delivered = len(merged)
	for _, ids := range sent {
		for _, id := range ids {
			switch n := merged[id]; {
			case n == 0:
				s.Missing++
			case n > 1:
				s.Dup++
			}
		}
	}
	return s
}

func main() {
	producers := flag.Int("producers", 4, "number of producer goroutines")
	consumers := flag.Int("consumers", 4, "number of consumer goroutines")
	items := flag.Int("items", 100_000, "items enqueued by each producer")
	timeout := flag.Duration("timeout", 10*time.Second, "max wait for a single dequeue")
	flag.Parse()

	if *producers <= 0 || *consumers <= 0 || *items < 0 {
		log.Fatalf("handoff: producers and consumers must be positive, items non-negative")
	}

	fmt.Printf("Hand-off: %d producers x %d items -> %d consumers\n", *producers, *items, *consumers)
	fmt.Println("─────────────────────────────────────────────────")

	s := run(config{producers: *producers, consumers: *consumers, items: *items, timeout: *timeout})

	for c, n := range s.PerConsumer {
		fmt.Printf("  consumer %-3d received %d\n", c, n)
	}
	fmt.Printf("\nResults:\n")
	fmt.Printf("  Delivered:   %d / %d\n", s.Delivered, s.Total)
	fmt.Printf("  Elapsed:     %v\n", s.Elapsed)
	if s.Total > 0 {
		fmt.Printf("  Throughput:  %.2f M items/sec\n", float64(s.Total)/s.Elapsed.Seconds()/1e6)
	}

	if err := s.failure(); err != nil {
		if errors.Is(err, errConsumerTimeout) {
			log.Fatalf("handoff: %v; raise -timeout", err)
		}
		log.Fatalf("handoff: %v", err)
	}
	fmt.Println("  OK: every item delivered exactly once")
}
