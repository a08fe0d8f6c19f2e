package facts

import (
	"context"
	"io"
	"log"
	"time"

	"customerhub/internal/domain"
	factrepo "customerhub/internal/repository/fact"
)

// Recorder is the fact-log listener: it subscribes to a bus and appends every
// published fact to the durable log. The audit trail is best-effort; an
// append failure is logged and never fails the command that raised the fact.
type Recorder struct {
	repo    factrepo.Repository
	logger  *log.Logger
	timeout time.Duration
}

// NewRecorder creates a Recorder writing to the given fact repository.
func NewRecorder(repo factrepo.Repository, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Recorder{repo: repo, logger: logger, timeout: 5 * time.Second}
}

// Attach subscribes the recorder to the bus.
func (r *Recorder) Attach(bus domain.FactBus) {
	bus.Subscribe(r.handle)
}

func (r *Recorder) handle(f domain.Fact) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.repo.Append(ctx, f); err != nil {
		r.logger.Printf("fact recorder: append %s for customer %s: %v", f.Kind, f.CustomerID, err)
	}
}
