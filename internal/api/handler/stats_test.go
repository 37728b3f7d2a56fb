package handler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewStats(t *testing.T) {
	// given
	sut, err := NewStats()
	require.NoError(t, err)
	defer sut.UnregisterStats()

	// when
	sut.transactionsCreated.Add(5)
	_, duplicateErr := NewStats()

	// then
	require.Equal(t, 5.0, testutil.ToFloat64(sut.transactionsCreated))
	require.ErrorIs(t, duplicateErr, ErrFailedToRegisterStats)
}
