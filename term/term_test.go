package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameRateClampsIntoRange(t *testing.T) {
	require.Equal(t, 30, frameRate(30))
	require.Equal(t, maxFrameHz, frameRate(maxFrameHz))

	// Below the simulation rate the limiter could never reach 8 ticks a
	// second; zero and negatives would panic the ticker outright.
	require.Equal(t, updatesPerSecond, frameRate(updatesPerSecond))
	require.Equal(t, updatesPerSecond, frameRate(7))
	require.Equal(t, updatesPerSecond, frameRate(0))
	require.Equal(t, updatesPerSecond, frameRate(-5))

	// Near int32 max the per-frame duration truncates to zero.
	require.Equal(t, maxFrameHz, frameRate(2000000000))
	require.Equal(t, maxFrameHz, frameRate(121))
}
