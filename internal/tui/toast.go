package tui

import (
	"time"

	"github.com/MKhiriev/go-cred-auth/internal/form"
	tea "github.com/charmbracelet/bubbletea"
)

const toastLifetime = 4 * time.Second

// toastQueue collects toasts raised while a page handles a message and hands
// them to [RootModel] as [ShowToast] commands.
type toastQueue struct {
	pending []form.Toast
}

func (q *toastQueue) Notify(toast form.Toast) {
	q.pending = append(q.pending, toast)
}

func (q *toastQueue) drain() []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(q.pending))
	for _, toast := range q.pending {
		cmds = append(cmds, showToast(toast))
	}
	q.pending = q.pending[:0]
	return cmds
}

// routeRecorder turns controller navigation into [NavigateTo] commands.
type routeRecorder struct {
	pending []string
}

func (r *routeRecorder) Navigate(route string) {
	r.pending = append(r.pending, route)
}

func (r *routeRecorder) drain() []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pending))
	for _, route := range r.pending {
		cmds = append(cmds, navigate(route))
	}
	r.pending = r.pending[:0]
	return cmds
}

func showToast(toast form.Toast) tea.Cmd {
	return func() tea.Msg { return ShowToast{Toast: toast} }
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func renderToast(toast form.Toast) string {
	if toast.Variant == form.VariantDestructive {
		return destructiveStyle.Render(toast.Description)
	}
	return toastStyle.Render(toast.Description)
}
