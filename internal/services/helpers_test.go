package services

import (
	"context"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

// decEq matches a decimal.Decimal numerically equal to s.
func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// inlineTx makes the tx mock run callbacks directly, as a committed transaction would.
func inlineTx(tx *MockTxRunner) {
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	tx.EXPECT().AfterCommit(gomock.Any(), gomock.Any()).Do(
		func(ctx context.Context, fn func()) {
			fn()
		}).AnyTimes()
}

func strPtr(s string) *string { return &s }
