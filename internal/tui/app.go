package tui

import (
	"time"

	"github.com/MKhiriev/go-cred-auth/internal/form"
	"github.com/MKhiriev/go-cred-auth/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Pages known to [RootModel]. Pages are addressed by route so that
// navigation requested by the form controller maps onto them directly.
const (
	RouteAuth = "/auth"
	RouteHome = form.HomeRoute
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit
// 3) handles NavigateTo and ShowToast messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model
	page    string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool

	toast    *form.Toast
	toastSeq int
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		page:      startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyCtrlC:
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && r.page == RouteHome:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.page = msg.Page
		return r, r.current.Init()
	case ShowToast:
		toast := msg.Toast
		r.toast = &toast
		r.toastSeq++
		seq := r.toastSeq
		return r, tea.Tick(toastLifetime, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} })
	case clearToastMsg:
		if msg.seq == r.toastSeq {
			r.toast = nil
		}
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	var body string
	switch {
	case r.showBuildInfo:
		body = renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		body = renderPage("go-cred-auth", "", "")
	default:
		body = r.current.View()
	}

	if r.toast != nil {
		body = renderToast(*r.toast) + "\n\n" + body
	}

	return appStyle.Render(body)
}

// Page returns the route of the active page.
func (r RootModel) Page() string { return r.page }

// QuitByUser reports whether the program ended with ctrl+c.
func (r RootModel) QuitByUser() bool { return r.quitByUser }
