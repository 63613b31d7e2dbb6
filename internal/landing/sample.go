package landing

import (
	"math/rand"
	"sync"
	"time"
)

// Sampler draws random subsets. It is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSampler seeds a sampler; seed 0 uses the current time.
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// Sample returns min(k, len(list)) distinct elements of list in random order.
// list itself is not modified.
func Sample[T any](s *Sampler, list []T, k int) []T {
	n := len(list)
	if k > n {
		k = n
	}
	if k <= 0 {
		return []T{}
	}
	out := make([]T, n)
	copy(out, list)
	s.mu.Lock()
	// partial Fisher-Yates: the first k slots end up uniformly chosen
	for i := 0; i < k; i++ {
		j := i + s.rnd.Intn(n-i)
		out[i], out[j] = out[j], out[i]
	}
	s.mu.Unlock()
	return out[:k]
}
