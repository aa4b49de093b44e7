package payments

import (
	"context"
	"errors"
	"fmt"
)

const (
	DefaultCurrency = "usd"
	MethodCard      = "card"
)

var ErrProvider = errors.New("payment provider rejected the request")

// IntentCreator is the narrow view of the card-payment provider.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string, methods []string) (clientSecret string, err error)
}

type Recorder interface {
	RecordPaymentIntent(result string)
}

// Bridge turns a decimal price into a card-only payment intent. Failures are
// returned as-is; nothing is retried.
type Bridge struct {
	creator  IntentCreator
	currency string
	methods  []string
	rec      Recorder
}

func NewBridge(creator IntentCreator, rec Recorder) *Bridge {
	return &Bridge{
		creator:  creator,
		currency: DefaultCurrency,
		methods:  []string{MethodCard},
		rec:      rec,
	}
}

// ToMinorUnits multiplies by 100 and truncates toward zero, so 19.999 becomes
// 1999. Binary rounding applies: 19.99 is 1998.9999... and becomes 1998.
func ToMinorUnits(price float64) int64 {
	return int64(price * 100)
}

func (b *Bridge) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := ToMinorUnits(price)

	secret, err := b.creator.CreateIntent(ctx, amount, b.currency, b.methods)
	if err != nil {
		b.record("error")
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}

	b.record("ok")
	return secret, nil
}

func (b *Bridge) record(result string) {
	if b.rec != nil {
		b.rec.RecordPaymentIntent(result)
	}
}
