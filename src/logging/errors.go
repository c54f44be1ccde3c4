package logging

import (
	"context"
	"errors"
	"net"
	"strings"
)

// IsTimeout reports whether err is a deadline or network timeout, so source
// failures can be logged distinctly from payload errors.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	return strings.Contains(err.Error(), "timeout")
}
