package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// emailSender is the part of the Resend emails API the alerter uses
type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailAlerter emails operators when a dispatched nonce never reached the chain
type EmailAlerter struct {
	emails    emailSender
	fromEmail string
	fromName  string
	to        []string
	logger    *zap.Logger
}

// NewEmailAlerter creates an alerter backed by the Resend API
func NewEmailAlerter(apiKey, fromEmail, fromName string, to []string) *EmailAlerter {
	client := resend.NewClient(apiKey)
	return newEmailAlerter(client.Emails, fromEmail, fromName, to)
}

func newEmailAlerter(emails emailSender, fromEmail, fromName string, to []string) *EmailAlerter {
	return &EmailAlerter{
		emails:    emails,
		fromEmail: fromEmail,
		fromName:  fromName,
		to:        to,
		logger:    logger.ForComponent(logger.ComponentDispatch),
	}
}

// NotifyNonceGap sends the alert. Failures are logged and never surface to the dispatcher.
func (a *EmailAlerter) NotifyNonceGap(ctx context.Context, alert interfaces.NonceGapAlert) {
	if len(a.to) == 0 {
		return
	}

	subject := fmt.Sprintf("Nonce gap on %s at nonce %d", alert.Address, alert.Nonce)
	text := fmt.Sprintf(
		"A transaction was assigned nonce %d from %s but failed to broadcast.\n\nCall: %s\nReason: %s\n\nLater transactions from this address will stall until the gap is filled or the nonce cursor is reset via POST /api/v1/admin/nonce/reset.",
		alert.Nonce, alert.Address, alert.Step, alert.Reason,
	)
	body := "<p>" + strings.ReplaceAll(html.EscapeString(text), "\n", "<br>") + "</p>"

	sent, err := a.emails.Send(&resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", a.fromName, a.fromEmail),
		To:      a.to,
		Subject: subject,
		Html:    body,
		Text:    text,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "nonce_gap"},
		},
	})
	if err != nil {
		a.logger.Error("failed to send nonce gap alert",
			zap.Error(err),
			zap.String("address", alert.Address),
			zap.Uint64("nonce", alert.Nonce),
		)
		return
	}

	a.logger.Info("nonce gap alert sent",
		zap.String("email_id", sent.Id),
		zap.String("address", alert.Address),
		zap.Uint64("nonce", alert.Nonce),
	)
}
