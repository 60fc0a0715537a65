package uploads

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultPollInterval is the fixed delay between status fetches; no
	// backoff is applied.
	DefaultPollInterval = 2 * time.Second
	// DefaultPollTimeout bounds the whole polling window
	DefaultPollTimeout = 10 * time.Minute
)

// PollState is the observable state of a poll
type PollState int

const (
	PollPending PollState = iota
	Polling
	PollTerminal
	PollTimedOut
	PollCancelled
	PollFailed
)

func (s PollState) String() string {
	switch s {
	case PollPending:
		return "pending"
	case Polling:
		return "polling"
	case PollTerminal:
		return "terminal"
	case PollTimedOut:
		return "timed-out"
	case PollCancelled:
		return "cancelled"
	case PollFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PollOptions configure a poll. Zero values fall back to the defaults.
type PollOptions struct {
	Interval time.Duration
	Timeout  time.Duration
}

// Poller drives one upload's status to a terminal state. Status fetches are
// strictly sequential: there is never more than one in-flight fetch for the
// same uploadID.
type Poller struct {
	client   *Client
	interval time.Duration
	timeout  time.Duration
	nowTime  func() time.Time

	lock  sync.Mutex
	state PollState
}

// NewPoller creates a poller over the given client
func NewPoller(client *Client, opts PollOptions) *Poller {
	poller := &Poller{
		client:   client,
		interval: opts.Interval,
		timeout:  opts.Timeout,
		nowTime:  time.Now,
		state:    PollPending,
	}
	if poller.interval <= 0 {
		poller.interval = DefaultPollInterval
	}
	if poller.timeout <= 0 {
		poller.timeout = DefaultPollTimeout
	}
	return poller
}

// State returns the poll's current state
func (p *Poller) State() PollState {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.state
}

func (p *Poller) setState(state PollState) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.state = state
}

// Run polls until the batch status is terminal, the timeout elapses, or the
// context is cancelled. Cancellation is honored at every suspension point:
// before each fetch and during each interval wait. No fetch is performed
// after the timeout has fired.
func (p *Poller) Run(ctx context.Context, uploadID string) (*Batch, error) {
	start := p.nowTime()
	p.setState(Polling)

	for {
		if err := ctx.Err(); err != nil {
			p.setState(PollCancelled)
			return nil, err
		}

		batch, err := p.client.FetchStatus(ctx, uploadID)
		if err != nil {
			if ctx.Err() != nil {
				p.setState(PollCancelled)
				return nil, ctx.Err()
			}
			p.setState(PollFailed)
			return nil, err
		}

		if batch.Status.Terminal() {
			p.setState(PollTerminal)
			return batch, nil
		}

		if p.nowTime().Sub(start)+p.interval > p.timeout {
			p.setState(PollTimedOut)
			return nil, &PollTimeoutError{UploadID: uploadID, Elapsed: p.nowTime().Sub(start)}
		}

		select {
		case <-ctx.Done():
			p.setState(PollCancelled)
			return nil, ctx.Err()
		case <-time.After(p.interval):
		}
	}
}

// PollUntilTerminal polls the upload's status at a fixed interval until a
// terminal state is reached. Convenience over NewPoller().Run for callers
// that do not need to observe the poll state.
func (c *Client) PollUntilTerminal(ctx context.Context, uploadID string, opts PollOptions) (*Batch, error) {
	return NewPoller(c, opts).Run(ctx, uploadID)
}
