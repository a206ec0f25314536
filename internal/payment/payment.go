// Package payment implements the demo checkout: cosmetic field validation
// followed by an artificial settlement delay. No money moves and no provider
// is contacted; this mirrors the product's simulated payment flow and must
// never be mistaken for a real settlement protocol.
package payment

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
)

type Method string

const (
	MethodCard Method = "card"
	MethodYape Method = "yape"
)

// Input carries the fields of the payment dialog. Card fields are ignored
// for the yape (QR) method, which requires no input.
type Input struct {
	Method     Method `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	Expiry     string `json:"cardExpiry,omitempty"`
	CVV        string `json:"cardCvv,omitempty"`
	HolderName string `json:"cardName,omitempty"`
}

// ValidationError reports the first payment field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payment: invalid %s: %s", e.Field, e.Reason)
}

// Validate applies the dialog's checks: a card number of at least 16 digits
// (spaces stripped), an expiry of at least 5 characters, a CVV of at least 3,
// and a non-empty holder name.
func (in Input) Validate() error {
	switch in.Method {
	case MethodYape:
		return nil
	case MethodCard:
	default:
		return &ValidationError{Field: "method", Reason: "unknown payment method"}
	}

	number := strings.ReplaceAll(in.CardNumber, " ", "")
	if len(number) < 16 || !allDigits(number) {
		return &ValidationError{Field: "cardNumber", Reason: "must be at least 16 digits"}
	}
	if len(in.Expiry) < 5 {
		return &ValidationError{Field: "cardExpiry", Reason: "expiry date required"}
	}
	if len(in.CVV) < 3 {
		return &ValidationError{Field: "cardCvv", Reason: "CVV required"}
	}
	if strings.TrimSpace(in.HolderName) == "" {
		return &ValidationError{Field: "cardName", Reason: "holder name required"}
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// Processor simulates settlement with a fixed delay. Once started the delay
// always completes; the only way out early is context cancellation.
type Processor struct {
	delay time.Duration
}

func NewProcessor(delay time.Duration) *Processor {
	return &Processor{delay: delay}
}

// Settle blocks for the configured delay and then reports success.
func (p *Processor) Settle(ctx context.Context, method Method) error {
	if p.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("payment: settlement interrupted: %w", ctx.Err())
	}
}
