// Hammers the booking registry from many concurrent goroutines to show that
// TryBook admits exactly one winner per slot. The whole key space is only
// 4 doctors x 3 days x 4 times = 48 cells, so contention is heavy.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/sportsclinic/injury-clinic/internal/booking"
)

type tally struct {
	attempts  int64
	booked    int64
	conflicts int64
	mu        sync.Mutex
	latencies []time.Duration
}

func (t *tally) record(latency time.Duration, err error) {
	atomic.AddInt64(&t.attempts, 1)
	if err == nil {
		atomic.AddInt64(&t.booked, 1)
	} else {
		atomic.AddInt64(&t.conflicts, 1)
	}
	t.mu.Lock()
	t.latencies = append(t.latencies, latency)
	t.mu.Unlock()
}

func (t *tally) stats() (avg, p95 time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.latencies) == 0 {
		return 0, 0
	}
	sorted := make([]time.Duration, len(t.latencies))
	copy(sorted, t.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, l := range sorted {
		sum += l
	}
	avg = sum / time.Duration(len(sorted))

	idx := len(sorted) * 95 / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return avg, sorted[idx]
}

func main() {
	workers := flag.Int("workers", 16, "concurrent booking workers")
	attempts := flag.Int("attempts", 500, "booking attempts per worker")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	logger.Info().Int("workers", *workers).Int("attempts", *attempts).Msg("simulate starting")

	registry := booking.NewRegistry()
	doctors := booking.Doctors()
	days := booking.Weekdays()
	times := booking.TimeSlots()

	var t tally
	var wg sync.WaitGroup

	start := time.Now()
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < *attempts; i++ {
				doctor := doctors[rng.Intn(len(doctors))].Profile.Name
				day := days[rng.Intn(len(days))]
				slot := times[rng.Intn(len(times))]

				began := time.Now()
				err := registry.TryBook(doctor, day, slot)
				t.record(time.Since(began), err)
			}
		}(time.Now().UnixNano() + int64(w))
	}
	wg.Wait()
	elapsed := time.Since(start)

	avg, p95 := t.stats()
	cells := len(doctors) * len(days) * len(times)

	fmt.Printf("\n=== Simulation Results ===\n")
	fmt.Printf("elapsed:    %s\n", elapsed)
	fmt.Printf("attempts:   %d\n", t.attempts)
	fmt.Printf("booked:     %d\n", t.booked)
	fmt.Printf("conflicts:  %d\n", t.conflicts)
	fmt.Printf("latency:    avg=%s p95=%s\n", avg, p95)
	fmt.Printf("occupancy:  %d/%d cells\n", registry.BookedCount(), cells)

	if int(t.booked) != registry.BookedCount() {
		logger.Error().
			Int64("booked", t.booked).
			Int("occupied", registry.BookedCount()).
			Msg("successful bookings do not match occupied cells")
		os.Exit(1)
	}
	logger.Info().Msg("every successful booking maps to exactly one occupied cell")
}
