// Package failure maps errors from the GitHub client onto the messages shown
// to the user.
package failure

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"

	"github.com/kevinmichaelchen/gh-user-search/internal/github"
)

const (
	MsgTimeout    = "Connection timeout. Please check your internet connection."
	MsgNetwork    = "Network error. Please check your internet connection."
	MsgNotFound   = "User not found. Please check the username and try again."
	MsgRateLimit  = "Rate limit exceeded. Please try again later."
	MsgServer     = "Server error occurred. Please try again later."
	MsgUnexpected = "An unexpected error occurred. Please try again."
)

// Category classifies an error for display.
type Category int

const (
	Unexpected Category = iota
	Timeout
	Network
	NotFound
	RateLimited
	Server
)

// Classify walks the wrap chain of err. A nil error is Unexpected.
func Classify(err error) Category {
	if err == nil {
		return Unexpected
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return Timeout
		}
		return Network
	}
	var errno syscall.Errno
	if errors.As(err, &errno) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Network
	}

	var httpErr *github.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusNotFound:
			return NotFound
		case http.StatusForbidden:
			return RateLimited
		default:
			return Server
		}
	}

	return Unexpected
}

func (c Category) Message() string {
	switch c {
	case Timeout:
		return MsgTimeout
	case Network:
		return MsgNetwork
	case NotFound:
		return MsgNotFound
	case RateLimited:
		return MsgRateLimit
	case Server:
		return MsgServer
	default:
		return MsgUnexpected
	}
}

// Message returns the user-facing text for err.
func Message(err error) string {
	return Classify(err).Message()
}
