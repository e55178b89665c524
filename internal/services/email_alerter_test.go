package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmailSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_1"}, nil
}

func TestEmailAlerter_NotifyNonceGap(t *testing.T) {
	sender := &fakeEmailSender{}
	a := newEmailAlerter(sender, "alerts@cyphera.test", "Cyphera Circles", []string{"ops@cyphera.test"})

	a.NotifyNonceGap(context.Background(), interfaces.NonceGapAlert{
		Address: signerAddress,
		Nonce:   12,
		Step:    "token.transfer",
		Reason:  "nonce too low",
	})

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"ops@cyphera.test"}, msg.To)
	assert.Equal(t, "Cyphera Circles <alerts@cyphera.test>", msg.From)
	assert.Contains(t, msg.Subject, "nonce 12")
	assert.Contains(t, msg.Text, "token.transfer")
	assert.Contains(t, msg.Text, "nonce too low")
}

func TestEmailAlerter_NoRecipientsOrSendError(t *testing.T) {
	sender := &fakeEmailSender{}
	newEmailAlerter(sender, "a@b.c", "x", nil).NotifyNonceGap(context.Background(), interfaces.NonceGapAlert{})
	assert.Empty(t, sender.sent)

	failing := &fakeEmailSender{err: errors.New("resend down")}
	assert.NotPanics(t, func() {
		newEmailAlerter(failing, "a@b.c", "x", []string{"ops@cyphera.test"}).
			NotifyNonceGap(context.Background(), interfaces.NonceGapAlert{Address: signerAddress})
	})
}
