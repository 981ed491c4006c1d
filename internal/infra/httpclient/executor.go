package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultMaxBody caps how much of a gateway reply is read.
const DefaultMaxBody int64 = 1 << 20

// ResponseData captures the response details and duration.
type ResponseData struct {
	Status    int
	Headers   http.Header
	BodyBytes []byte
	Duration  time.Duration
}

// Executor sends requests with a per-call timeout and a bounded body read.
type Executor struct {
	client  *http.Client
	timeout time.Duration
	maxBody int64
}

type ExecutorOption func(*Executor)

func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) {
		if client != nil {
			e.client = client
		}
	}
}

func WithMaxBody(n int64) ExecutorOption {
	return func(e *Executor) { e.maxBody = n }
}

func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{
		client:  New(cfg),
		timeout: cfg.Timeout,
		maxBody: DefaultMaxBody,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do executes req. A reply larger than the body cap is an error.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()
	ctxWithTimeout := ctx
	cancel := func() {}
	if e.timeout > 0 {
		ctxWithTimeout, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	resp, err := e.client.Do(req.WithContext(ctxWithTimeout))
	duration := time.Since(start)
	if err != nil {
		return ResponseData{Duration: duration}, err
	}
	defer resp.Body.Close()

	var r io.Reader = resp.Body
	if e.maxBody > 0 {
		r = io.LimitReader(resp.Body, e.maxBody+1)
	}
	body, err := io.ReadAll(r)
	duration = time.Since(start)
	if err != nil {
		return ResponseData{Status: resp.StatusCode, Duration: duration}, err
	}
	if e.maxBody > 0 && int64(len(body)) > e.maxBody {
		return ResponseData{Status: resp.StatusCode, Duration: duration},
			fmt.Errorf("response body exceeds %d bytes", e.maxBody)
	}

	return ResponseData{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		Duration:  duration,
	}, nil
}
