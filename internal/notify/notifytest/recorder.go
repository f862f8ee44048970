package notifytest

import (
	"context"
	"sync"
)

type Call struct {
	Channel string
	Payload string
}

// Recorder adalah Publisher in-memory untuk test.
// RejectCanceled meniru transport yang menolak context yang sudah dibatalkan.
type Recorder struct {
	mu             sync.Mutex
	calls          []Call
	Err            error
	RejectCanceled bool
}

func (r *Recorder) Publish(ctx context.Context, channel, payload string) error {
	if r.RejectCanceled && ctx.Err() != nil {
		return ctx.Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Channel: channel, Payload: payload})
	return r.Err
}

func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}
