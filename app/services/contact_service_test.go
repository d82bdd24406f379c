package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joycybakery/fournil/pkg/mail"
)

func validContactForm() ContactForm {
	return ContactForm{
		Name:    "Marie Dupont",
		Email:   "marie@example.com",
		Subject: "Commande spéciale",
		Message: "Bonjour, proposez-vous des gâteaux sans gluten ?",
	}
}

func TestRelaySendsValidForm(t *testing.T) {
	var sent ContactForm
	svc := &ContactService{send: func(form ContactForm) error {
		sent = form
		return nil
	}}

	require.NoError(t, svc.Relay(validContactForm()))
	assert.Equal(t, "marie@example.com", sent.Email)
}

func TestRelayRejectsBlankFields(t *testing.T) {
	called := false
	svc := &ContactService{send: func(ContactForm) error {
		called = true
		return nil
	}}

	blanks := []func(f *ContactForm){
		func(f *ContactForm) { f.Name = "" },
		func(f *ContactForm) { f.Email = "   " }, // whitespace-only counts as blank
		func(f *ContactForm) { f.Subject = "" },
		func(f *ContactForm) { f.Message = "" },
	}
	for _, blank := range blanks {
		form := validContactForm()
		blank(&form)
		assert.ErrorIs(t, svc.Relay(form), ErrMissingFields)
	}
	assert.False(t, called, "nothing may be sent when a required field is blank")
}

func TestRelayPhoneIsOptional(t *testing.T) {
	svc := &ContactService{send: func(ContactForm) error { return nil }}

	form := validContactForm()
	form.Phone = ""
	assert.NoError(t, svc.Relay(form))
}

func TestRelayUnconfiguredTransport(t *testing.T) {
	svc := &ContactService{send: func(ContactForm) error {
		return mail.ErrNotConfigured
	}}

	assert.ErrorIs(t, svc.Relay(validContactForm()), ErrRelayUnconfigured)
}

func TestRelayTransportFailure(t *testing.T) {
	svc := &ContactService{send: func(ContactForm) error {
		return errors.New("smtp: connection refused")
	}}

	err := svc.Relay(validContactForm())
	assert.ErrorIs(t, err, ErrRelayFailed)
	assert.NotErrorIs(t, err, ErrRelayUnconfigured)
}
