// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form implements the sign-in / registration form of the terminal
// client independently of how it is rendered.
//
// A [Controller] holds the field values and the current [Mode], validates
// input, guards against concurrent submissions with a busy flag, and turns
// request outcomes into toasts and navigation through the [Notifier] and
// [Navigator] collaborators.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"unicode/utf8"

	"github.com/MKhiriev/go-cred-auth/internal/app"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/MKhiriev/go-cred-auth/models"
)

// HomeRoute is where a successful sign-in navigates to.
const HomeRoute = "/"

// Mode selects what a submission does.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	if m == ModeRegister {
		return "REGISTER"
	}
	return "LOGIN"
}

// Title is the form heading and submit button label.
func (m Mode) Title() string {
	if m == ModeRegister {
		return "Register"
	}
	return "Login"
}

// TogglePrompt is the hint shown next to the mode switch.
func (m Mode) TogglePrompt() string {
	if m == ModeRegister {
		return "Already have an account?"
	}
	return "Don't have an account?"
}

// ToggleLabel names the mode the switch leads to.
func (m Mode) ToggleLabel() string {
	if m == ModeRegister {
		return "Login"
	}
	return "Register"
}

// Values are the form fields.
type Values struct {
	Name     string
	Email    string
	Password string
}

// Variant is the visual style of a toast.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

// Toast is a transient notification.
type Toast struct {
	Variant     Variant
	Description string
}

// Authenticator performs the network side of a submission.
type Authenticator interface {
	Register(ctx context.Context, request models.RegisterRequest) error
	SignIn(ctx context.Context, credentials models.Credentials) (models.SignInResponse, error)
}

// Notifier shows toasts.
type Notifier interface {
	Notify(toast Toast)
}

// Navigator pushes a route.
type Navigator interface {
	Navigate(route string)
}

var (
	// ErrBusy is returned when a submission is already in flight. No request
	// is issued.
	ErrBusy = errors.New("a request is already in flight")

	// ErrLoginRejected is returned by Submit when the server rejected the
	// credentials.
	ErrLoginRejected = errors.New("login rejected")
)

// ValidationError reports invalid field values. No request is issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Request is a snapshot of the form taken by [Controller.Begin].
type Request struct {
	Mode   Mode
	Values Values
}

// Result is the outcome of [Controller.Execute].
type Result struct {
	Request Request
	SignIn  models.SignInResponse
	Err     error
}

// Controller is the form state machine. Field setters and Toggle are meant
// to be called from a single goroutine (the UI loop); the busy flag alone is
// safe for concurrent use.
type Controller struct {
	auth      Authenticator
	notifier  Notifier
	navigator Navigator

	mode   Mode
	values Values
	busy   atomic.Bool
}

// NewController returns a Controller in [ModeLogin] with empty fields.
func NewController(auth Authenticator, notifier Notifier, navigator Navigator) *Controller {
	return &Controller{auth: auth, notifier: notifier, navigator: navigator}
}

func (c *Controller) Mode() Mode { return c.mode }

// Toggle switches between login and registration. Field values are kept.
func (c *Controller) Toggle() {
	if c.mode == ModeLogin {
		c.mode = ModeRegister
		return
	}
	c.mode = ModeLogin
}

func (c *Controller) SetName(name string)         { c.values.Name = name }
func (c *Controller) SetEmail(email string)       { c.values.Email = email }
func (c *Controller) SetPassword(password string) { c.values.Password = password }

func (c *Controller) Values() Values { return c.values }

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool { return c.busy.Load() }

// Reset clears every field.
func (c *Controller) Reset() { c.values = Values{} }

// Validate checks the fields. Name and email are free-form; the password
// must have at least models.MinPasswordLength characters.
func (c *Controller) Validate() error {
	if utf8.RuneCountInString(c.values.Password) < models.MinPasswordLength {
		return &ValidationError{Field: "password", Message: app.MsgClientPasswordTooShort}
	}
	return nil
}

// Begin validates the form and marks it busy. It returns ErrBusy if a
// submission is already in flight and a *ValidationError if the fields are
// invalid; in both cases the busy flag is left untouched.
func (c *Controller) Begin() (Request, error) {
	if c.busy.Load() {
		return Request{}, ErrBusy
	}
	if err := c.Validate(); err != nil {
		return Request{}, err
	}
	if !c.busy.CompareAndSwap(false, true) {
		return Request{}, ErrBusy
	}

	return Request{Mode: c.mode, Values: c.values}, nil
}

// Execute performs the request. It touches no controller state except the
// Authenticator, so it may run on another goroutine.
func (c *Controller) Execute(ctx context.Context, req Request) Result {
	res := Result{Request: req}

	switch req.Mode {
	case ModeRegister:
		res.Err = c.auth.Register(ctx, models.RegisterRequest{
			Name:     req.Values.Name,
			Email:    req.Values.Email,
			Password: req.Values.Password,
		})
	default:
		res.SignIn, res.Err = c.auth.SignIn(ctx, models.Credentials{
			Email:    req.Values.Email,
			Password: req.Values.Password,
		})
	}

	return res
}

// Complete applies a Result: toasts, field reset and navigation. It always
// clears the busy flag and returns the submission error, if any.
func (c *Controller) Complete(res Result) error {
	defer c.busy.Store(false)

	if res.Request.Mode == ModeRegister {
		return c.completeRegister(res)
	}
	return c.completeLogin(res)
}

func (c *Controller) completeRegister(res Result) error {
	if res.Err != nil {
		c.notifier.Notify(Toast{Variant: VariantDestructive, Description: service.ServerMessage(res.Err)})
		return res.Err
	}

	c.Reset()
	c.notifier.Notify(Toast{Variant: VariantDefault, Description: app.MsgClientRegistrationOK})
	return nil
}

func (c *Controller) completeLogin(res Result) error {
	if res.Err != nil {
		c.notifier.Notify(Toast{Variant: VariantDestructive, Description: app.MsgClientLoginFailed})
		return res.Err
	}

	var err error
	if res.SignIn.Error != "" {
		c.notifier.Notify(Toast{Variant: VariantDestructive, Description: app.MsgClientLoginFailed})
		err = fmt.Errorf("%w: %s", ErrLoginRejected, res.SignIn.Error)
	}
	if res.SignIn.OK {
		c.Reset()
		c.notifier.Notify(Toast{Variant: VariantDefault, Description: app.MsgClientLoginOK})
		c.navigator.Navigate(HomeRoute)
		return nil
	}
	if err == nil {
		err = ErrLoginRejected
	}

	return err
}

// Submit runs Begin, Execute and Complete synchronously. The busy flag is
// cleared on every path once Begin has set it.
func (c *Controller) Submit(ctx context.Context) error {
	req, err := c.Begin()
	if err != nil {
		return err
	}
	defer c.busy.Store(false)

	return c.Complete(c.Execute(ctx, req))
}
