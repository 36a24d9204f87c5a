package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAutoRefresh_PostsTicks(t *testing.T) {
	ticks := make(chan Intent, 8)
	r := NewAutoRefresh(5*time.Millisecond, func(in Intent) { ticks <- in })

	r.Start()
	defer r.Stop()

	select {
	case in := <-ticks:
		require.IsType(t, tick{}, in)
	case <-time.After(time.Second):
		t.Fatal("no tick within a second")
	}
}

func TestAutoRefresh_StopIsIdempotent(t *testing.T) {
	r := NewAutoRefresh(time.Hour, func(Intent) {})
	r.Start()

	r.Stop()
	r.Stop() // second stop is a no-op, not a panic

	// a stopped scheduler posts nothing
	select {
	case <-r.stop:
	default:
		t.Fatal("stop channel should be closed")
	}
}

func TestAutoRefresh_StopWithoutStart(t *testing.T) {
	r := NewAutoRefresh(time.Hour, func(Intent) {})
	r.Stop()
	r.Stop()
}
