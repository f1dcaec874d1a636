package email

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPSender_BuildsMessage(t *testing.T) {
	var gotAddr, gotFrom string
	var gotMsg []byte
	s := NewSMTPSender(Config{Host: "smtp.campus.test", Port: 587, FromEmail: "noreply@campus.test", FromName: "CampusMarket"})
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotMsg = addr, from, msg
		assert.Nil(t, a)
		return nil
	}

	require.NoError(t, s.Send(context.Background(), []string{"admin@campus.test"}, "New delivery request", "Esi needs a lab coat moved"))

	assert.Equal(t, "smtp.campus.test:587", gotAddr)
	assert.Equal(t, "noreply@campus.test", gotFrom)
	assert.Contains(t, string(gotMsg), "From: CampusMarket <noreply@campus.test>\r\n")
	assert.Contains(t, string(gotMsg), "Subject: New delivery request\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\nEsi needs a lab coat moved")
}

func TestSMTPSender_NotConfigured(t *testing.T) {
	err := NewSMTPSender(Config{}).Send(context.Background(), []string{"a@b.c"}, "s", "b")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSMTPSender_WrapsTransportError(t *testing.T) {
	s := NewSMTPSender(Config{Host: "h", Port: 25, FromEmail: "x@y.z", Username: "u", Password: "p"})
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("connection refused") }

	err := s.Send(context.Background(), []string{"a@b.c"}, "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
