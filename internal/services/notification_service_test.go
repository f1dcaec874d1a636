package services

import (
	"context"
	"errors"
	"testing"

	"campusmarket/internal/models"
	"campusmarket/pkg/sms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingSender struct {
	to      []string
	subject string
	body    string
	err     error
}

func (r *recordingSender) Send(_ context.Context, to []string, subject, body string) error {
	r.to, r.subject, r.body = to, subject, body
	return r.err
}

type recordingSMS struct {
	requests []*sms.SMSRequest
	err      error
}

func (r *recordingSMS) SendSMS(_ context.Context, req *sms.SMSRequest) (*sms.SMSResponse, error) {
	r.requests = append(r.requests, req)
	if r.err != nil {
		return nil, r.err
	}
	return &sms.SMSResponse{MessageID: "SM1", Status: "queued"}, nil
}

func (r *recordingSMS) Name() string { return "recording" }

func sampleDelivery() *models.DeliveryRequest {
	return &models.DeliveryRequest{
		ID:              primitive.NewObjectID(),
		Name:            "Yaw",
		Contact:         "0241112222",
		ItemDescription: "Textbooks",
		PickupPoint:     "Library",
		DropoffPoint:    "Hall 3",
		DeliveryType:    models.DeliveryTypeInstant,
	}
}

func TestNotifyDeliveryRequested_EmailsAdmin(t *testing.T) {
	mail := &recordingSender{}
	n := NewNotificationService(NotificationConfig{Enabled: true, AdminEmail: "ops@campus.test"}, mail, nil, nil)

	n.NotifyDeliveryRequested(context.Background(), sampleDelivery())

	assert.Equal(t, []string{"ops@campus.test"}, mail.to)
	assert.Contains(t, mail.subject, "instant")
	assert.Contains(t, mail.body, "Textbooks")
	assert.Contains(t, mail.body, "Hall 3")
}

func TestNotifyDeliveryRequested_Disabled(t *testing.T) {
	mail := &recordingSender{}
	n := NewNotificationService(NotificationConfig{AdminEmail: "ops@campus.test"}, mail, nil, nil)

	n.NotifyDeliveryRequested(context.Background(), sampleDelivery())
	assert.Empty(t, mail.to)
}

func TestNotifyDeliveryRequested_FailureIsSwallowed(t *testing.T) {
	mail := &recordingSender{err: errors.New("smtp down")}
	n := NewNotificationService(NotificationConfig{Enabled: true, AdminEmail: "ops@campus.test"}, mail, nil, nil)

	assert.NotPanics(t, func() {
		n.NotifyDeliveryRequested(context.Background(), sampleDelivery())
	})
}

func TestNotifyRiderAssigned_SendsSMSWithStatusLink(t *testing.T) {
	text := &recordingSMS{}
	n := NewNotificationService(NotificationConfig{Enabled: true, RiderPageURL: "https://campus.test/rider/"}, nil, text, nil)

	n.NotifyRiderAssigned(context.Background(), sampleDelivery(), activeRider())

	require.Len(t, text.requests, 1)
	assert.Equal(t, "0244123456", text.requests[0].To)
	assert.Contains(t, text.requests[0].Message, "https://campus.test/rider/KOF3456")
	assert.Contains(t, text.requests[0].Message, "Textbooks")
}

func TestNotifyRiderAssigned_FailureIsSwallowed(t *testing.T) {
	text := &recordingSMS{err: errors.New("twilio 500")}
	n := NewNotificationService(NotificationConfig{Enabled: true}, nil, text, nil)

	assert.NotPanics(t, func() {
		n.NotifyRiderAssigned(context.Background(), sampleDelivery(), activeRider())
	})
	assert.Len(t, text.requests, 1)
}
