package common

import (
	"fmt"
	"net/http"

	"github.com/ulule/limiter/v3"
	mhttp "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewFormLimit builds the per-client rate limit for form submissions from a
// formatted rate such as "5-M" (five per minute). An empty rate disables
// limiting.
func NewFormLimit(rate string, trustForwarded bool) (func(http.Handler) http.Handler, error) {
	if rate == "" {
		return nil, nil
	}
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid form rate limit %q: %w", rate, err)
	}

	var opts []limiter.Option
	if trustForwarded {
		opts = append(opts, limiter.WithTrustForwardHeader(true))
	}
	instance := limiter.New(memory.NewStore(), r, opts...)

	mw := mhttp.NewMiddleware(instance, mhttp.WithLimitReachedHandler(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Too many submissions. Please try again later.", http.StatusTooManyRequests)
	}))
	return mw.Handler, nil
}
