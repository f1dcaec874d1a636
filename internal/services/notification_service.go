package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campusmarket/internal/models"
	"campusmarket/pkg/email"
	"campusmarket/pkg/logger"
	"campusmarket/pkg/sms"
)

const notificationTimeout = 10 * time.Second

// NotificationService delivers side-channel messages. Failures are logged and
// never returned: the primary record is already saved when these run.
type NotificationService interface {
	NotifyDeliveryRequested(ctx context.Context, delivery *models.DeliveryRequest)
	NotifyRiderAssigned(ctx context.Context, delivery *models.DeliveryRequest, rider *models.MotorRider)
}

type NotificationConfig struct {
	Enabled      bool
	AdminEmail   string
	RiderPageURL string
}

type notificationService struct {
	config NotificationConfig
	email  email.Sender
	sms    sms.SMSProvider
	logger *logger.Logger
}

func NewNotificationService(config NotificationConfig, emailSender email.Sender, smsProvider sms.SMSProvider, log *logger.Logger) NotificationService {
	if emailSender == nil {
		emailSender = email.NoopSender{}
	}
	if smsProvider == nil {
		smsProvider = sms.NoopProvider{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &notificationService{
		config: config,
		email:  emailSender,
		sms:    smsProvider,
		logger: log,
	}
}

func (n *notificationService) NotifyDeliveryRequested(ctx context.Context, delivery *models.DeliveryRequest) {
	if !n.config.Enabled || n.config.AdminEmail == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, notificationTimeout)
	defer cancel()

	subject := fmt.Sprintf("New %s delivery request from %s", delivery.DeliveryType, delivery.Name)
	if err := n.email.Send(ctx, []string{n.config.AdminEmail}, subject, deliveryRequestBody(delivery)); err != nil {
		n.logger.WithContext(ctx).WithDeliveryID(delivery.ID).WithError(err).Warn("admin email notification failed")
		return
	}
	n.logger.WithContext(ctx).LogDeliveryEvent(delivery.ID, "admin_notified", nil)
}

func (n *notificationService) NotifyRiderAssigned(ctx context.Context, delivery *models.DeliveryRequest, rider *models.MotorRider) {
	if !n.config.Enabled || rider.Phone == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, notificationTimeout)
	defer cancel()

	resp, err := n.sms.SendSMS(ctx, &sms.SMSRequest{
		To:      rider.Phone,
		Message: riderAssignedMessage(delivery, rider, n.config.RiderPageURL),
		Type:    "transactional",
	})
	if err != nil {
		n.logger.WithContext(ctx).WithDeliveryID(delivery.ID).WithError(err).
			WithField("provider", n.sms.Name()).Warn("rider sms notification failed")
		return
	}
	n.logger.WithContext(ctx).LogDeliveryEvent(delivery.ID, "rider_notified", map[string]interface{}{
		"provider":   n.sms.Name(),
		"message_id": resp.MessageID,
	})
}

func deliveryRequestBody(d *models.DeliveryRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Request ID: %s\n", d.ID.Hex())
	fmt.Fprintf(&b, "Requester: %s (%s)\n", d.Name, d.Contact)
	fmt.Fprintf(&b, "Item: %s\n", d.ItemDescription)
	fmt.Fprintf(&b, "Pickup: %s\n", d.PickupPoint)
	fmt.Fprintf(&b, "Drop-off: %s\n", d.DropoffPoint)
	fmt.Fprintf(&b, "Type: %s\n", d.DeliveryType)
	if d.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", d.Notes)
	}
	return b.String()
}

func riderAssignedMessage(d *models.DeliveryRequest, rider *models.MotorRider, pageURL string) string {
	msg := fmt.Sprintf("New delivery: %s from %s to %s. Contact %s.", d.ItemDescription, d.PickupPoint, d.DropoffPoint, d.Contact)
	if pageURL != "" && rider.RiderCode != "" {
		msg += fmt.Sprintf(" Update status: %s/%s", strings.TrimRight(pageURL, "/"), rider.RiderCode)
	}
	return msg
}
