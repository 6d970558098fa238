package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"server/internal/infra"
)

// Event carries the fields of a newly created contribution that the
// thank-you message needs.
type Event struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Amount      int64  `json:"amount"`
}

type envelope struct {
	Detail struct {
		NewImage *Event `json:"newImage"`
	} `json:"detail"`
}

// ErrNoData means the event payload did not carry a contribution record.
var ErrNoData = errors.New("no contribution data found")

// DecodeEvent extracts the new contribution from a change-event payload.
func DecodeEvent(raw []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if env.Detail.NewImage == nil {
		return Event{}, ErrNoData
	}
	return *env.Detail.NewImage, nil
}

// Kind classifies a dispatch outcome.
type Kind int

const (
	KindSent Kind = iota
	KindBadInput
	KindNoCredentials
	KindProviderError
)

// Result is the structured outcome of one dispatch attempt. StatusCode maps
// it to the hosting environment's invocation contract.
type Result struct {
	Kind       Kind
	MessageSID string
	Reason     string
}

func (r Result) StatusCode() int {
	switch r.Kind {
	case KindSent:
		return http.StatusOK
	case KindBadInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MessageSender sends one outbound message and returns the provider's
// message identifier.
type MessageSender interface {
	Send(ctx context.Context, from, to, body string) (sid string, err error)
}

// Dispatcher sends one WhatsApp thank-you message per contribution event.
// It is stateless: redelivered events produce duplicate messages.
type Dispatcher struct {
	Sender             MessageSender
	FromNumber         string
	DefaultCountryCode string
	Logger             infra.Logger
}

var amountPrinter = message.NewPrinter(language.English)

// Dispatch performs exactly one send attempt for the event. Every outcome
// logs one diagnostic line before returning.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) Result {
	if ev.Name == "" || ev.PhoneNumber == "" || ev.Amount <= 0 {
		d.Logger.Warn().Msg("notify: no contribution data found in event")
		return Result{Kind: KindBadInput, Reason: "No contribution data found"}
	}

	if d.Sender == nil || d.FromNumber == "" {
		d.Logger.Error().Msg("notify: missing Twilio credentials")
		return Result{Kind: KindNoCredentials, Reason: "Missing Twilio credentials"}
	}

	to := FormatPhone(ev.PhoneNumber, d.DefaultCountryCode)
	body := messageBody(ev.Name, ev.Amount)

	sid, err := d.Sender.Send(ctx, "whatsapp:"+d.FromNumber, "whatsapp:"+to, body)
	if err != nil {
		d.Logger.Error().Err(err).Str("to", to).Msg("notify: send failed")
		return Result{Kind: KindProviderError, Reason: err.Error()}
	}

	d.Logger.Info().Str("sid", sid).Str("to", to).Msg("notify: message sent")
	return Result{Kind: KindSent, MessageSID: sid}
}

// FormatPhone prepends the default country code to bare local numbers.
// Numbers that already carry an international prefix pass through unchanged.
func FormatPhone(phone, countryCode string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return countryCode + phone
}

func messageBody(name string, amount int64) string {
	return fmt.Sprintf(
		"🕉️ Thank you %s for your contribution of ₹%s to Ganesh Utsav! 🙏\n\n"+
			"Your contribution has been recorded successfully. May Lord Ganesha bless you and your family.\n\n"+
			"Jai Ganesh! 🎉",
		name, amountPrinter.Sprintf("%d", amount))
}
