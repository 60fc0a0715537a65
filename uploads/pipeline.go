package uploads

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ItemProcessor turns one uploaded file into a processed item: on success it
// fills CandidateID/Email, on failure it fills ErrorCode/ErrorMessage and a
// FAILED status.
type ItemProcessor interface {
	ProcessItem(ctx context.Context, jobID string, item Item) Item
}

// ItemProcessorFunc adapts a function to the ItemProcessor interface
type ItemProcessorFunc func(ctx context.Context, jobID string, item Item) Item

func (f ItemProcessorFunc) ProcessItem(ctx context.Context, jobID string, item Item) Item {
	return f(ctx, jobID, item)
}

// DefaultProcessor registers a new candidate for every parsed file. The real
// resume-parse step lives behind this interface; the default keeps the batch
// state machine honest without it.
func DefaultProcessor() ItemProcessor {
	return ItemProcessorFunc(func(_ context.Context, _ string, item Item) Item {
		item.Status = StatusCompleted
		item.CandidateID = uuid.New().String()
		return item
	})
}

type job struct {
	uploadID string
	jobID    string
}

// Pipeline moves submitted batches through PENDING -> PROCESSING -> a
// terminal state. One worker drains the queue, so a batch's fetches observe
// strictly ordered transitions.
type Pipeline struct {
	repo      Repo
	processor ItemProcessor
	queue     chan job
	logger    zerolog.Logger
}

// NewPipeline creates the background processing pipeline
func NewPipeline(repo Repo, processor ItemProcessor, logger zerolog.Logger) *Pipeline {
	if processor == nil {
		processor = DefaultProcessor()
	}
	return &Pipeline{
		repo:      repo,
		processor: processor,
		queue:     make(chan job, 64),
		logger:    logger.With().Str("component", "upload-pipeline").Logger(),
	}
}

// Start launches the worker; it stops when ctx is cancelled
func (p *Pipeline) Start(ctx context.Context) {
	go p.worker(ctx)
}

// Enqueue schedules a submitted batch for processing
func (p *Pipeline) Enqueue(uploadID, jobID string) {
	p.queue <- job{uploadID: uploadID, jobID: jobID}
}

func (p *Pipeline) worker(ctx context.Context) {
	p.logger.Info().Msg("upload pipeline worker started")
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("upload pipeline worker stopped")
			return
		case next := <-p.queue:
			p.process(ctx, next)
		}
	}
}

func (p *Pipeline) process(ctx context.Context, next job) {
	batch, err := p.repo.Get(next.uploadID)
	if err != nil {
		p.logger.Error().Err(err).Str("upload_id", next.uploadID).Msg("failed to load batch")
		return
	}

	batch.Status = StatusProcessing
	for i := range batch.Items {
		batch.Items[i].Status = StatusProcessing
	}
	if err := p.repo.Update(batch); err != nil {
		p.logger.Error().Err(err).Str("upload_id", next.uploadID).Msg("failed to mark batch processing")
		return
	}

	failed := 0
	for i := range batch.Items {
		processed := p.processor.ProcessItem(ctx, next.jobID, batch.Items[i])
		if processed.Status != StatusCompleted {
			processed.Status = StatusFailed
			failed++
		}
		batch.Items[i] = processed
	}

	switch {
	case failed == 0:
		batch.Status = StatusCompleted
	case failed == len(batch.Items):
		batch.Status = StatusFailed
	default:
		batch.Status = StatusCompletedWithErrors
	}

	if err := p.repo.Update(batch); err != nil {
		p.logger.Error().Err(err).Str("upload_id", next.uploadID).Msg("failed to commit terminal state")
		return
	}

	p.logger.Info().
		Str("upload_id", next.uploadID).
		Str("status", string(batch.Status)).
		Int("items", len(batch.Items)).
		Int("failed", failed).
		Msg("batch processed")
}
