package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTopic(t *testing.T) {
	topic, err := NewTopic("saga.transaction_started")
	require.NoError(t, err)
	assert.Equal(t, "saga.transaction_started", topic.String())

	_, err = NewTopic("")
	assert.ErrorIs(t, err, ErrInvalidTopic)
}

func TestNewEvent(t *testing.T) {
	event := NewEvent("tx-1", SagaStepFailedEvent, map[string]string{"step": "process_payment"})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, SagaStepFailedEvent, event.Topic)
	assert.Equal(t, "1.0", event.Version)
	assert.False(t, event.Timestamp.IsZero())
	assert.NotNil(t, event.Metadata)
}

func TestEvent_JSONRoundTrip(t *testing.T) {
	event := NewEvent("tx-1", SagaTransactionCompletedEvent, map[string]string{"vehicle_id": "vehicle-456"}).
		WithCorrelationID("corr-1").
		WithMetadata("source", "orchestrator-service")

	raw, err := event.ToJSON()
	require.NoError(t, err)

	decoded, err := FromJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, event.Topic, decoded.Topic)
	assert.Equal(t, event.CorrelationID, decoded.CorrelationID)

	source, ok := decoded.Metadata.Get("source")
	require.True(t, ok)
	assert.Equal(t, "orchestrator-service", source)
}

func TestEvent_UnmarshalPayload(t *testing.T) {
	type payload struct {
		Step   string `json:"step"`
		Reason string `json:"reason"`
	}

	event := NewEvent("tx-1", SagaStepFailedEvent, payload{Step: "process_payment", Reason: "Pagamento recusado"})

	raw, err := event.ToJSON()
	require.NoError(t, err)
	decoded, err := FromJSON(raw)
	require.NoError(t, err)

	var got payload
	require.NoError(t, decoded.UnmarshalPayload(&got))
	assert.Equal(t, "process_payment", got.Step)
	assert.Equal(t, "Pagamento recusado", got.Reason)
}

func TestMetadata_Clone(t *testing.T) {
	original := Metadata{"a": "1"}
	clone := original.Clone()
	clone.Set("a", "2")

	v, _ := original.Get("a")
	assert.Equal(t, "1", v)
}
