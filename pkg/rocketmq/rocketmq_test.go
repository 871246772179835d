package rocketmq

import (
	"context"
	"storefront/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublisher_Disabled(t *testing.T) {
	p := NewPublisher(&config.RocketMQConfig{OrderTopic: "order_placed"})

	err := p.SendDelayed(context.Background(), "order_placed", "ref", []byte("{}"), 3)
	assert.ErrorIs(t, err, ErrDisabled)
	assert.NoError(t, p.Shutdown())

	var nilPublisher *Publisher
	assert.NoError(t, nilPublisher.Shutdown())
}

func TestSubscribe_Disabled(t *testing.T) {
	err := Subscribe(context.Background(), &config.RocketMQConfig{}, "order_placed", func(context.Context, []byte) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrDisabled)
}
