package payment

import (
	"context"
	"errors"
	"testing"
	"time"
)

func validCard() Input {
	return Input{
		Method:     MethodCard,
		CardNumber: "4111 1111 1111 1111",
		Expiry:     "12/29",
		CVV:        "123",
		HolderName: "JUAN PEREZ",
	}
}

func TestValidateCard(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Input)
		wantField string
	}{
		{"valid with spaces", func(in *Input) {}, ""},
		{"valid without spaces", func(in *Input) { in.CardNumber = "4111111111111111" }, ""},
		{"short number", func(in *Input) { in.CardNumber = "4111 1111" }, "cardNumber"},
		{"letters in number", func(in *Input) { in.CardNumber = "4111abcd11111111" }, "cardNumber"},
		{"empty number", func(in *Input) { in.CardNumber = "" }, "cardNumber"},
		{"short expiry", func(in *Input) { in.Expiry = "1/29" }, "cardExpiry"},
		{"empty expiry", func(in *Input) { in.Expiry = "" }, "cardExpiry"},
		{"short cvv", func(in *Input) { in.CVV = "12" }, "cardCvv"},
		{"empty holder", func(in *Input) { in.HolderName = "   " }, "cardName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCard()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field = %s, want %s", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateYapeNeedsNoInput(t *testing.T) {
	if err := (Input{Method: MethodYape}).Validate(); err != nil {
		t.Fatalf("yape should require no fields: %v", err)
	}
}

func TestValidateUnknownMethod(t *testing.T) {
	err := (Input{Method: "cash"}).Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "method" {
		t.Fatalf("expected method validation error, got %v", err)
	}
}

func TestSettleCompletes(t *testing.T) {
	p := NewProcessor(5 * time.Millisecond)
	if err := p.Settle(context.Background(), MethodCard); err != nil {
		t.Fatalf("settle: %v", err)
	}
}

func TestSettleZeroDelay(t *testing.T) {
	if err := NewProcessor(0).Settle(context.Background(), MethodYape); err != nil {
		t.Fatalf("settle: %v", err)
	}
}

func TestSettleHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewProcessor(time.Minute).Settle(ctx, MethodCard)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
