package failure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/kevinmichaelchen/gh-user-search/internal/github"
	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestMessage(t *testing.T) {
	refused := &url.Error{
		Op:  "Get",
		URL: "https://api.github.com/users/octocat",
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"deadline", fmt.Errorf("executing request: %w", context.DeadlineExceeded), MsgTimeout},
		{"net timeout", &url.Error{Op: "Get", URL: "x", Err: timeoutErr{}}, MsgTimeout},
		{"connection refused", fmt.Errorf("executing request: %w", refused), MsgNetwork},
		{"bare errno", syscall.ECONNRESET, MsgNetwork},
		{"truncated body", fmt.Errorf("reading response: %w", io.ErrUnexpectedEOF), MsgNetwork},
		{"404", &github.HTTPError{StatusCode: 404}, MsgNotFound},
		{"403", &github.HTTPError{StatusCode: 403}, MsgRateLimit},
		{"500", &github.HTTPError{StatusCode: 500}, MsgServer},
		{"422", fmt.Errorf("wrapped: %w", &github.HTTPError{StatusCode: 422}), MsgServer},
		{"decode", fmt.Errorf("parsing response: %w", &json.SyntaxError{}), MsgUnexpected},
		{"other", errors.New("something odd"), MsgUnexpected},
		{"nil", nil, MsgUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}
