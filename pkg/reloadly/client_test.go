package reloadly

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSendTopup(t *testing.T) {
	c := NewClient("", "", "", "", true)

	result, err := c.SendTopup(context.Background(), "+2348012345678", "NG", 500)
	require.NoError(t, err)

	assert.NotEmpty(t, result.TransactionID)
	assert.Equal(t, "MTN", result.OperatorName)
	assert.Equal(t, float64(500), result.DeliveredAmount)
}

func TestMockSendTopupFailureNumbers(t *testing.T) {
	c := NewClient("", "", "", "", true)

	_, err := c.SendTopup(context.Background(), "+2348010000000", "NG", 500)
	assert.Error(t, err)
}
