package app

import (
	"fmt"
	"html/template"
	"time"
)

// Severity classifies a notification banner.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// dismissAfter is how long a banner stays up before auto-dismissing.
const dismissAfter = 4 * time.Second

// Notifier shows transient feedback banners. A new notification preempts
// the pending dismissal of the previous one instead of queuing behind it.
// It holds no domain state.
type Notifier struct {
	display Display
	post    func(Intent)
	seq     uint64
	timer   *time.Timer
}

// NewNotifier creates a notifier rendering into the notice region.
func NewNotifier(display Display, post func(Intent)) *Notifier {
	return &Notifier{display: display, post: post}
}

// Notify displays a banner that dismisses itself after a fixed duration.
func (n *Notifier) Notify(message string, severity Severity) {
	n.seq++
	n.display.SetRegion(RegionNotice, fmt.Sprintf(`<div class="toast %s">%s</div>`,
		severity, template.HTMLEscapeString(message)))

	if n.timer != nil {
		n.timer.Stop()
	}
	seq := n.seq
	n.timer = time.AfterFunc(dismissAfter, func() {
		n.post(noticeExpired{seq: seq})
	})
}

// handleExpired clears the banner unless a newer notification has taken
// over the region since the timer was armed.
func (n *Notifier) handleExpired(in noticeExpired) {
	if in.seq != n.seq {
		return
	}
	n.display.ClearRegion(RegionNotice)
}
