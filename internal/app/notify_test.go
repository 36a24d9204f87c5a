package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifier_ShowsEscapedBanner(t *testing.T) {
	display := newMemoryDisplay()
	n := NewNotifier(display, func(Intent) {})

	n.Notify(`Failed: <script>bad()</script>`, SeverityError)

	banner := display.regions[RegionNotice]
	require.Contains(t, banner, "error")
	require.NotContains(t, banner, "<script>")
	require.Contains(t, banner, "&lt;script&gt;")
}

func TestNotifier_NewNotificationPreemptsDismissal(t *testing.T) {
	display := newMemoryDisplay()
	n := NewNotifier(display, func(Intent) {})

	n.Notify("first", SeverityInfo)
	n.Notify("second", SeveritySuccess)

	// the first banner's dismissal is stale and must not clear the second
	n.handleExpired(noticeExpired{seq: 1})
	require.Contains(t, display.regions[RegionNotice], "second")

	n.handleExpired(noticeExpired{seq: 2})
	_, present := display.regions[RegionNotice]
	require.False(t, present)
}

func TestNotifier_ArmsDismissTimer(t *testing.T) {
	display := newMemoryDisplay()
	posted := make(chan Intent, 1)
	n := NewNotifier(display, func(in Intent) { posted <- in })

	n.Notify("hello", SeverityInfo)
	require.NotNil(t, n.timer)

	// firing the timer early posts the dismissal for the current banner
	require.True(t, n.timer.Stop())
	n.post(noticeExpired{seq: n.seq})
	in := <-posted
	require.Equal(t, noticeExpired{seq: 1}, in)
}
