package ledgerdocs

import (
	"github.com/shopspring/decimal"
)

// Weight is one named share of an allocation request.
type Weight struct {
	Name  string
	Share decimal.Decimal
}

// Bucket is one named share of a reconciled allocation.
type Bucket struct {
	Name   string
	Amount Money
}

// W is a convenience constructor for a Weight from a float share.
func W(name string, share float64) Weight {
	return Weight{Name: name, Share: decimal.NewFromFloat(share)}
}

// Allocate splits a total into weighted shares that sum exactly to the
// total. Every bucket except the last is round(total x weight, cents); the
// last bucket takes round(total - running sum, cents), absorbing all
// rounding error. The result is order-sensitive: bucket order decides which
// bucket absorbs the remainder, and is part of the contract.
//
// Signs propagate unchanged, so a negative or zero total still reconciles
// exactly. An empty weight set returns an InvalidAllocationError.
func Allocate(total Money, weights []Weight) ([]Bucket, error) {
	if len(weights) == 0 {
		return nil, &InvalidAllocationError{Reason: "empty weight set"}
	}

	buckets := make([]Bucket, 0, len(weights))
	running := M(0, total.Currency())
	for _, w := range weights[:len(weights)-1] {
		amount := total.MulShare(w.Share)
		running = running.Add(amount)
		buckets = append(buckets, Bucket{Name: w.Name, Amount: amount})
	}

	// The last bucket reconciles the split to the anchor total.
	last := weights[len(weights)-1]
	buckets = append(buckets, Bucket{Name: last.Name, Amount: total.Sub(running).Round()})
	return buckets, nil
}

// NormalizedWeights scales the given weights so their shares sum to one,
// for callers that want proportional buckets from raw magnitudes. Weights
// summing to zero cannot be normalized.
func NormalizedWeights(weights []Weight) ([]Weight, error) {
	if len(weights) == 0 {
		return nil, &InvalidAllocationError{Reason: "empty weight set"}
	}
	sum := decimal.Zero
	for _, w := range weights {
		sum = sum.Add(w.Share)
	}
	if sum.IsZero() {
		return nil, &InvalidAllocationError{Reason: "weights sum to zero"}
	}
	out := make([]Weight, len(weights))
	for i, w := range weights {
		out[i] = Weight{Name: w.Name, Share: w.Share.Div(sum)}
	}
	return out, nil
}
