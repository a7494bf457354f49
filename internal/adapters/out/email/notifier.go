// Package email sends the transactional order e-mails over SMTP.
// Both sends return errors for the caller to log; the caller is responsible
// for keeping them off the request's critical path.
package email

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"rentalhub/internal/core/ports"

	"github.com/wneessen/go-mail"
)

const dateLayout = "Jan 2, 2006"

var customerTemplate = template.Must(template.New("customer").Parse(
	`Hi {{.CustomerName}},

Your order {{.OrderNumber}} is now {{.NewStatus}} (was {{.PreviousStatus}}).

Order date: {{.OrderDate}}
Rental period: {{.RentalStart}} to {{.RentalEnd}} ({{.RentalDays}} day{{if ne .RentalDays 1}}s{{end}})
Total: ₹{{printf "%.2f" .TotalAmount}}

Items:
{{range .Items}}  - {{.Title}} x{{.Quantity}}
{{end -}}
{{if .Notes}}
Note from our team: {{.Notes}}
{{end}}
Thank you for renting with us!
`))

var partnerTemplate = template.Must(template.New("partner").Parse(
	`Hi {{.PartnerName}},

You have a delivery assignment for order {{.OrderNumber}}.

Customer: {{.CustomerName}} ({{.CustomerPhone}})
Delivery address: {{.DeliveryAddress}}
Rental period: {{.RentalStart}} to {{.RentalEnd}}
Payment: {{.PaymentStatus}}{{if .PaymentMethod}} via {{.PaymentMethod}}{{end}}

Please coordinate the handover with the customer.
`))

// Config carries the SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPNotifier implements ports.Notifier over an SMTP relay using go-mail.
// A fresh client dial happens per send; transactional volume here is far
// below the point where connection reuse would matter.
type SMTPNotifier struct {
	cfg Config
}

// NewSMTPNotifier creates an SMTP-backed notifier.
func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// SendOrderStatusUpdate delivers the customer-facing status e-mail.
func (n *SMTPNotifier) SendOrderStatusUpdate(ctx context.Context, payload ports.CustomerStatusUpdate) error {
	subject := CustomerSubject(payload)
	body, err := CustomerBody(payload)
	if err != nil {
		return fmt.Errorf("render customer email: %w", err)
	}
	return n.send(ctx, payload.CustomerEmail, subject, body)
}

// SendDeliveryPartnerAssignment delivers the partner-facing assignment e-mail.
func (n *SMTPNotifier) SendDeliveryPartnerAssignment(ctx context.Context, payload ports.PartnerAssignment) error {
	subject := PartnerSubject(payload)
	body, err := PartnerBody(payload)
	if err != nil {
		return fmt.Errorf("render partner email: %w", err)
	}
	return n.send(ctx, payload.PartnerEmail, subject, body)
}

// CustomerSubject builds the status e-mail subject with the status marker.
func CustomerSubject(payload ports.CustomerStatusUpdate) string {
	return fmt.Sprintf("%s Order %s update: %s",
		payload.NewStatus.Emoji(), payload.OrderNumber, payload.NewStatus)
}

// CustomerBody renders the plain-text customer e-mail body.
func CustomerBody(payload ports.CustomerStatusUpdate) (string, error) {
	data := struct {
		ports.CustomerStatusUpdate
		OrderDate   string
		RentalStart string
		RentalEnd   string
	}{
		CustomerStatusUpdate: payload,
		OrderDate:            formatDate(payload.OrderDate),
		RentalStart:          formatDate(payload.RentalStart),
		RentalEnd:            formatDate(payload.RentalEnd),
	}

	var buf bytes.Buffer
	if err := customerTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PartnerSubject builds the assignment e-mail subject.
func PartnerSubject(payload ports.PartnerAssignment) string {
	return fmt.Sprintf("🚚 Delivery assignment: order %s", payload.OrderNumber)
}

// PartnerBody renders the plain-text partner e-mail body.
func PartnerBody(payload ports.PartnerAssignment) (string, error) {
	data := struct {
		ports.PartnerAssignment
		RentalStart string
		RentalEnd   string
	}{
		PartnerAssignment: payload,
		RentalStart:       formatDate(payload.RentalStart),
		RentalEnd:         formatDate(payload.RentalEnd),
	}

	var buf bytes.Buffer
	if err := partnerTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}
