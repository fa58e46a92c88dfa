package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jobflix/jobflix-backend/internal/apperr"
)

const defaultSendGridBaseURL = "https://api.sendgrid.com"

// SendGridSender delivers notification emails through the SendGrid v3 mail
// API.
type SendGridSender struct {
	apiKey    string
	fromEmail string
	baseURL   string
	client    *http.Client
}

func NewSendGridSender(apiKey, fromEmail string) *SendGridSender {
	return &SendGridSender{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		baseURL:   defaultSendGridBaseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SendGridSender) Channel() string { return "email" }

type sendgridAddress struct {
	Email string `json:"email"`
}

type sendgridPersonalization struct {
	To []sendgridAddress `json:"to"`
}

type sendgridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendgridMail struct {
	Personalizations []sendgridPersonalization `json:"personalizations"`
	From             sendgridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendgridContent         `json:"content"`
}

func (s *SendGridSender) Send(ctx context.Context, p Payload) error {
	if p.To == "" {
		return apperr.Transport("email delivery: missing recipient")
	}
	body := p.Message
	if p.URL != "" {
		body = fmt.Sprintf("%s\n\n%s", p.Message, p.URL)
	}
	mail := sendgridMail{
		Personalizations: []sendgridPersonalization{{To: []sendgridAddress{{Email: p.To}}}},
		From:             sendgridAddress{Email: s.fromEmail},
		Subject:          p.Title,
		Content:          []sendgridContent{{Type: "text/plain", Value: body}},
	}
	raw, err := json.Marshal(mail)
	if err != nil {
		return apperr.Transport("email delivery: encode: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v3/mail/send", bytes.NewReader(raw))
	if err != nil {
		return apperr.Transport("email delivery: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return apperr.Transport("email delivery: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperr.Transport("email delivery: sendgrid returned %d", resp.StatusCode)
	}
	return nil
}
