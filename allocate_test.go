package ledgerdocs

import (
	"errors"
	"testing"
)

func TestAllocate_SumsExactlyToTotal(t *testing.T) {
	weights := []Weight{
		W("Vanguard Target Retirement 2050", 0.6),
		W("S&P 500 Index Fund", 0.3),
		W("International Growth Fund", 0.1),
	}

	testCases := []struct {
		name  string
		total Money
	}{
		{name: "round total", total: USD(10000.00)},
		{name: "awkward cents", total: USD(3333.35)},
		{name: "indivisible cent", total: USD(0.01)},
		{name: "negative total", total: USD(-1234.57)},
		{name: "zero total", total: USD(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buckets, err := Allocate(tc.total, weights)
			if err != nil {
				t.Fatalf("Allocate() error = %v", err)
			}
			if len(buckets) != len(weights) {
				t.Fatalf("got %d buckets, want %d", len(buckets), len(weights))
			}
			sum := USD(0)
			for _, b := range buckets {
				sum = sum.Add(b.Amount)
			}
			if !sum.Equal(tc.total) {
				t.Errorf("bucket sum = %v, want %v", sum.Decimal(), tc.total.Decimal())
			}
		})
	}
}

func TestAllocate_LastBucketAbsorbsRemainder(t *testing.T) {
	// 100.00 split three equal ways rounds to 33.33 twice; the last
	// bucket must take 33.34.
	third := 1.0 / 3.0
	buckets, err := Allocate(USD(100.00), []Weight{W("a", third), W("b", third), W("c", third)})
	if err != nil {
		t.Fatal(err)
	}
	if got := buckets[0].Amount; !got.Equal(USD(33.33)) {
		t.Errorf("first bucket = %v, want 33.33", got.Decimal())
	}
	if got := buckets[2].Amount; !got.Equal(USD(33.34)) {
		t.Errorf("last bucket = %v, want 33.34", got.Decimal())
	}
}

func TestAllocate_OrderSensitive(t *testing.T) {
	// Bucket order decides which bucket absorbs the remainder: "c" takes
	// the extra cent when declared last, but not when declared first.
	third := 1.0 / 3.0
	first, _ := Allocate(USD(100.00), []Weight{W("a", third), W("b", third), W("c", third)})
	second, _ := Allocate(USD(100.00), []Weight{W("c", third), W("a", third), W("b", third)})

	if got := first[2]; got.Name != "c" || !got.Amount.Equal(USD(33.34)) {
		t.Errorf("c declared last = %v, want 33.34", got.Amount.Decimal())
	}
	if got := second[0]; got.Name != "c" || !got.Amount.Equal(USD(33.33)) {
		t.Errorf("c declared first = %v, want 33.33", got.Amount.Decimal())
	}
}

func TestAllocate_EmptyWeights(t *testing.T) {
	_, err := Allocate(USD(100), nil)
	var allocErr *InvalidAllocationError
	if !errors.As(err, &allocErr) {
		t.Fatalf("Allocate(empty) error = %v, want InvalidAllocationError", err)
	}
}

func TestAllocate_FullLiquidationSources(t *testing.T) {
	// Given a balance of 10,000.00 split 66%/34%, bucket amounts must sum
	// to exactly 10,000.00.
	buckets, err := Allocate(USD(10000.00), []Weight{
		W("Employee Deferral", 0.66),
		W("Employer Match", 0.34),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !buckets[0].Amount.Equal(USD(6600.00)) {
		t.Errorf("employee share = %v, want 6600.00", buckets[0].Amount.Decimal())
	}
	if !buckets[1].Amount.Equal(USD(3400.00)) {
		t.Errorf("employer share = %v, want 3400.00", buckets[1].Amount.Decimal())
	}
}

func TestNormalizedWeights(t *testing.T) {
	ws, err := NormalizedWeights([]Weight{W("a", 2), W("b", 6)})
	if err != nil {
		t.Fatal(err)
	}
	if !ws[0].Share.Equal(dec(0.25)) || !ws[1].Share.Equal(dec(0.75)) {
		t.Errorf("normalized shares = %v, %v", ws[0].Share, ws[1].Share)
	}

	if _, err := NormalizedWeights([]Weight{W("a", 0)}); err == nil {
		t.Error("zero-sum weights should not normalize")
	}
}
