package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/maisonlux/boutique/internal/model"
)

// Notifier owns the single transient notification banner under the header.
// A new notification replaces the visible one and restarts the auto-dismiss
// timer; dismissal stops the timer so a stale callback never fires.
type Notifier struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration

	banner  *fyne.Container
	label   *widget.Label
	dismiss *widget.Button
}

// NewNotifier creates a hidden notification banner.
func NewNotifier() *Notifier {
	n := &Notifier{duration: NotificationAutoHide}

	n.label = widget.NewLabel("")
	n.label.Alignment = fyne.TextAlignLeading
	n.label.Truncation = fyne.TextTruncateEllipsis

	n.dismiss = widget.NewButton(IconClose, n.Dismiss)
	n.dismiss.Importance = widget.LowImportance

	n.banner = container.NewBorder(nil, nil, nil, n.dismiss, n.label)
	n.banner.Hide()
	return n
}

// Object returns the banner for layout embedding.
func (n *Notifier) Object() fyne.CanvasObject {
	return n.banner
}

// Show displays a notification, replacing any visible one.
func (n *Notifier) Show(notification model.Notification) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.duration, func() {
		fyne.Do(n.Dismiss)
	})
	n.mu.Unlock()

	fyne.Do(func() {
		if notification.Type == model.NotifyError {
			n.label.Importance = widget.DangerImportance
		} else {
			n.label.Importance = widget.SuccessImportance
		}
		n.label.SetText(notification.Message)
		n.banner.Show()
		n.banner.Refresh()
	})
}

// Dismiss hides the banner and cancels the pending auto-dismiss.
func (n *Notifier) Dismiss() {
	n.Stop()
	n.banner.Hide()
}

// Stop cancels the auto-dismiss timer without touching widgets. Called on
// teardown so the callback never acts on a torn-down canvas.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
