package tui

import (
	"github.com/MKhiriev/go-cred-auth/internal/form"
	"github.com/MKhiriev/go-cred-auth/models"
)

// NavigateTo asks [RootModel] to switch to the page registered under Page.
type NavigateTo struct {
	Page string
}

// ShowToast asks [RootModel] to display a toast above the current page.
type ShowToast struct {
	Toast form.Toast
}

type clearToastMsg struct {
	seq int
}

type submitDoneMsg struct {
	result form.Result
}

type sessionLoadedMsg struct {
	session models.Session
	version string
	err     error
}

type signedOutMsg struct {
	err error
}
