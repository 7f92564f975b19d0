// Package resilience groups the fault tolerance around museum API calls.
//
//   - circuitbreaker stops calling an upstream that keeps failing.
//   - retry re-runs idempotent reads after transient failures.
//
// The museumapi client nests them: each retry attempt goes through the
// breaker, so an open circuit ends the retries at once.
//
//	b := circuitbreaker.New(circuitbreaker.MuseumAPIConfig())
//	err := retry.Do(ctx, retry.MuseumAPIConfig(), func(ctx context.Context) error {
//	    return b.Run(func() error { return listVeterans(ctx) })
//	})
package resilience
