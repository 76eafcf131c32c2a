package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*clientLimiter)
	mu       sync.Mutex
)

// Visitor returns the limiter for an address, creating it on first sight.
func Visitor(addr string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[addr]
	if !exists {
		limiter := rate.NewLimiter(5, 10) // 5 requests/sec, burst of 10
		visitors[addr] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for addr, v := range visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(visitors, addr)
			}
		}
		mu.Unlock()
	}
}

func Reset() {
	mu.Lock()
	visitors = make(map[string]*clientLimiter)
	mu.Unlock()
}
