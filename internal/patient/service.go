package patient

import (
	"context"
	"sync"

	"github.com/kslone/medtui/internal/logging"
	"github.com/kslone/medtui/internal/pubsub"
)

// Service holds the currently loaded patient summary and notifies subscribers
// whenever it changes.
type Service struct {
	broker *pubsub.Broker[Summary]
	logger logging.Interface

	mu      sync.Mutex
	current Summary
}

type ServiceOptions struct {
	Logger logging.Interface
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		broker: pubsub.NewBroker[Summary](opts.Logger),
		logger: opts.Logger,
	}
}

// Subscribe subscribes the caller to summary change events.
func (s *Service) Subscribe(ctx context.Context) (<-chan pubsub.Event[Summary], func()) {
	return s.broker.Subscribe(ctx)
}

// Get retrieves the current summary. Zero-valued until a study is loaded.
func (s *Service) Get() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Load replaces the current summary with a newly loaded study.
func (s *Service) Load(sum Summary) {
	s.mu.Lock()
	s.current = sum
	s.mu.Unlock()

	s.logger.Info("loaded study",
		"patient", sum.DisplayName(),
		"modality", sum.Study.Modality,
		"series", sum.Study.SeriesCount,
	)
	s.broker.Publish(pubsub.CreatedEvent, sum)
}

// Update applies fn to the current summary and publishes the result, e.g.
// when series arrive incrementally and the instance count grows.
func (s *Service) Update(fn func(*Summary)) Summary {
	s.mu.Lock()
	fn(&s.current)
	sum := s.current
	s.mu.Unlock()

	s.broker.Publish(pubsub.UpdatedEvent, sum)
	return sum
}
