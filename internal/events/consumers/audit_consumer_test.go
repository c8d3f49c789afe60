package consumers

import (
	"campaign-server/internal/clients/kafka"
	"campaign-server/internal/observability"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	events  []kafka.EventMessage
	results []error
	err     error
	closed  bool
}

func (s *sliceSource) ConsumeEvents(ctx context.Context, handler func(context.Context, kafka.EventMessage) error) error {
	for _, event := range s.events {
		s.results = append(s.results, handler(ctx, event))
	}
	return s.err
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

func TestAuditConsumer_Start(t *testing.T) {
	source := &sliceSource{
		events: []kafka.EventMessage{
			{ID: "1", Type: "campaign.created", TenantID: "t1"},
			{ID: "2"},
		},
		err: context.Canceled,
	}
	consumer := NewAuditConsumer(source, observability.NewNopLogger())

	require.NoError(t, consumer.Start(context.Background()))
	require.Len(t, source.results, 2)
	assert.NoError(t, source.results[0])
	assert.Error(t, source.results[1], "untyped events are not committed")

	require.NoError(t, consumer.Stop())
	assert.True(t, source.closed)
}

func TestAuditConsumer_SourceFailure(t *testing.T) {
	source := &sliceSource{err: errors.New("broker gone")}
	err := NewAuditConsumer(source, observability.NewNopLogger()).Start(context.Background())
	assert.EqualError(t, err, "broker gone")
}
