// Package email delivers one message to many recipients and reports per-recipient outcomes.
package email

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/linskybing/form-platform/internal/config"
)

var ErrNoRecipients = errors.New("no recipients")

type Recipient struct {
	Email string
	Name  string
}

type Message struct {
	Subject    string
	Text       string
	HTML       string
	Recipients []Recipient
}

// Result counts outcomes. Failures maps an address to the reason it was not sent.
type Result struct {
	Sent     int
	Failed   int
	Failures map[string]string
}

func (r *Result) fail(addr, reason string) {
	r.Failed++
	if r.Failures == nil {
		r.Failures = map[string]string{}
	}
	r.Failures[addr] = reason
}

type BatchSender interface {
	SendBatch(ctx context.Context, msg Message) (Result, error)
}

// NewFromConfig picks the backend named by EMAIL_PROVIDER.
func NewFromConfig() BatchSender {
	switch strings.ToLower(config.EmailProvider) {
	case "sendgrid":
		if config.SendGridAPIKey == "" {
			log.Println("[Email] SENDGRID_API_KEY is empty, falling back to console")
			return NewConsoleSender()
		}
		return NewSendGridSender(config.SendGridAPIKey, config.AppName, config.EmailFrom)
	default:
		return NewConsoleSender()
	}
}

type ConsoleSender struct {
	logf func(format string, args ...any)
}

func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{logf: log.Printf}
}

func (s *ConsoleSender) SendBatch(ctx context.Context, msg Message) (Result, error) {
	var res Result
	if len(msg.Recipients) == 0 {
		return res, ErrNoRecipients
	}
	for _, to := range msg.Recipients {
		if err := ctx.Err(); err != nil {
			res.fail(to.Email, err.Error())
			continue
		}
		if to.Email == "" {
			res.fail(to.Name, "missing email address")
			continue
		}
		s.logf("[Email] to=%s subject=%q\n%s", to.Email, msg.Subject, msg.Text)
		res.Sent++
	}
	return res, nil
}
