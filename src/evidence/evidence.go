package evidence

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/veriscan/veriscan/src/logging"
)

// Item is one corroborating article reference. Weight is the fixed trust
// weight of the source that produced it, never derived per request.
type Item struct {
	Source string  `json:"source"`
	Weight float64 `json:"weight"`
	Title  string  `json:"title"`
	URL    string  `json:"url"`
}

// Source is a single corroboration backend. Search returns at most the
// source's configured result cap and must honor ctx cancellation.
type Source interface {
	Name() string
	Weight() float64
	Search(ctx context.Context, query string) ([]Item, error)
}

type sourceResult struct {
	name  string
	items []Item
	err   error
}

// Retriever fans a query out to every configured source. Each source gets
// its own timeout and failure domain: a source that times out, returns a
// non-2xx status or sends a malformed payload contributes nothing, and the
// others are unaffected. No retries.
type Retriever struct {
	sources []Source
	timeout time.Duration
}

func NewRetriever(timeout time.Duration, sources ...Source) *Retriever {
	if timeout == 0 {
		timeout = 6 * time.Second
	}
	return &Retriever{sources: sources, timeout: timeout}
}

// Retrieve returns the union of all surviving sources' items. It never
// returns an error: partial failure degrades the evidence set instead of
// failing the request.
func (r *Retriever) Retrieve(ctx context.Context, query string) []Item {
	if len(r.sources) == 0 || query == "" {
		return nil
	}

	results := make(chan sourceResult, len(r.sources))
	var wg sync.WaitGroup

	for _, src := range r.sources {
		wg.Add(1)
		go func(s Source) {
			defer wg.Done()
			sctx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			items, err := s.Search(sctx, query)
			results <- sourceResult{name: s.Name(), items: items, err: err}
		}(src)
	}

	wg.Wait()
	close(results)

	var union []Item
	for res := range results {
		if res.err != nil {
			if logging.IsTimeout(res.err) {
				log.Printf("evidence: %s timed out: %v", res.name, res.err)
			} else {
				log.Printf("evidence: %s unavailable: %v", res.name, res.err)
			}
			continue
		}
		union = append(union, res.items...)
	}
	return union
}
