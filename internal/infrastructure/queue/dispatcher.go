package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes RSVP activity entries to a fixed set of workers using
// consistent hashing on the invitation id, guaranteeing per-invitation
// ordering of the activity feed.
type Dispatcher struct {
	workers []chan domain.RSVPActivity
	repo    ports.ActivityRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.ActivityRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.RSVPActivity, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.RSVPActivity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an entry to the worker responsible for its invitation.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(entry domain.RSVPActivity) {
	d.workers[d.shardIndex(entry.InvitationID)] <- entry
}

// shardIndex maps an invitation id deterministically to a worker index.
func (d *Dispatcher) shardIndex(invitationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(invitationID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.RSVPActivity) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, &entry); err != nil {
				d.log.Error().Err(err).
					Str("invitation_id", entry.InvitationID).
					Int("worker_id", id).
					Msg("failed to record rsvp activity")
			}
		}
	}
}
