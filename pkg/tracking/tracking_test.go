package tracking

import (
	"storefront/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	assert.Equal(t, 0, Step(models.OrderStatusNew))
	assert.Equal(t, 1, Step(models.OrderStatusConfirmed))
	assert.Equal(t, 2, Step(models.OrderStatusProcessing))
	assert.Equal(t, 3, Step(models.OrderStatusShipped))
	assert.Equal(t, 4, Step(models.OrderStatusDelivered))
	assert.Equal(t, Cancelled, Step(models.OrderStatusCancelled))
	assert.Equal(t, Cancelled, Step("lost"))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(Step(models.OrderStatusNew)))
	assert.Equal(t, 50, Progress(Step(models.OrderStatusProcessing)))
	assert.Equal(t, 100, Progress(Step(models.OrderStatusDelivered)))
	assert.Equal(t, 0, Progress(Cancelled))
	assert.Equal(t, 100, Progress(9))
}
