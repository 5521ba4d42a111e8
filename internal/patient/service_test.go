package patient

import (
	"context"
	"testing"

	"github.com/kslone/medtui/internal/logging"
	"github.com/kslone/medtui/internal/pubsub"
	"github.com/stretchr/testify/assert"
)

func TestService(t *testing.T) {
	t.Parallel()

	svc := NewService(ServiceOptions{Logger: logging.Discard})

	sub, unsub := svc.Subscribe(context.Background())
	defer unsub()

	sum := Demo()
	svc.Load(sum)

	ev := <-sub
	assert.Equal(t, pubsub.CreatedEvent, ev.Type)
	assert.Equal(t, sum, ev.Payload)
	assert.Equal(t, sum, svc.Get())

	svc.Update(func(s *Summary) {
		s.Study.InstanceCount += 100
	})

	ev = <-sub
	assert.Equal(t, pubsub.UpdatedEvent, ev.Type)
	assert.Equal(t, 512, ev.Payload.Study.InstanceCount)
	assert.Equal(t, 512, svc.Get().Study.InstanceCount)
}
