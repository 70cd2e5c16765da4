package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"roadtrip/pkg/utils"
)

func newProviderHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

// wrapProviderError translates transport-level failures into the service
// error taxonomy, keeping provider error types out of the handlers.
// Timeouts surface as their own kind.
func wrapProviderError(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %v", utils.ErrUpstreamTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %v", utils.ErrUpstreamFailure, op, err)
}
