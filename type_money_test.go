package ledgerdocs

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(1234.56), "$1,234.56"},
		{USD(0), "$0.00"},
		{USD(-30), "-$30.00"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.m.Decimal(), got, tt.want)
		}
	}
}

func TestMoneyDisplay(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(1234.56), "1,234.56"},
		{USD(1234567.8), "1,234,567.80"},
		{USD(50), "50.00"},
		{USD(-1234.56), "-1,234.56"},
		{USD(0.005), "0.01"},
	}
	for _, tt := range tests {
		if got := tt.m.Display(); got != tt.want {
			t.Errorf("Display(%v) = %q, want %q", tt.m.Decimal(), got, tt.want)
		}
	}
}

func TestMoneyMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(USD(1234.567))
	if err != nil {
		t.Fatal(err)
	}
	// Bare number, rounded to the cent.
	if string(raw) != "1234.57" {
		t.Errorf("got %s", raw)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	gross, tax := USD(1200), USD(100)
	if net := gross.Sub(tax); !net.Equal(USD(1100)) {
		t.Errorf("net = %v", net.Decimal())
	}
	// The "" currency is weak: it adopts the other operand's.
	if got := M(5, "").Add(USD(5)); got.Currency() != "USD" {
		t.Errorf("currency = %q", got.Currency())
	}

	third := decimal.NewFromFloat(1.0 / 3)
	if got := USD(100).MulShare(third); !got.Equal(USD(33.33)) {
		t.Errorf("share = %v", got.Decimal())
	}
}

func TestMoneyCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR did not panic")
		}
	}()
	USD(1).Add(M(1, "EUR"))
}
