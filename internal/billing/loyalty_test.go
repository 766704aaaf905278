package billing

import (
	"testing"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoyaltyAccount_Earn(t *testing.T) {
	tests := []struct {
		name   string
		rate   string
		amount string
		want   int64
	}{
		{"whole units", "1", "250", 250},
		{"truncates", "1", "199.99", 199},
		{"fractional rate", "0.5", "99.99", 49},
		{"zero", "2", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewLoyaltyAccount(domain.LoyaltyConfig{EarnRate: dec(tt.rate)})

			got, err := acc.Earn(dec(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoyaltyAccount_Earn_Negative(t *testing.T) {
	acc := NewLoyaltyAccount(domain.LoyaltyConfig{EarnRate: dec("1")})

	_, err := acc.Earn(dec("-10"))
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestLoyaltyAccount_RedemptionCredit(t *testing.T) {
	acc := NewLoyaltyAccount(domain.LoyaltyConfig{})

	credit, err := acc.RedemptionCredit(10000, 5000)
	require.NoError(t, err)
	assertMoney(t, "50.00", credit)

	credit, err = acc.RedemptionCredit(250, 5000)
	require.NoError(t, err)
	assertMoney(t, "2.50", credit)
}

func TestLoyaltyAccount_RedemptionCredit_CustomRate(t *testing.T) {
	acc := NewLoyaltyAccount(domain.LoyaltyConfig{PointsPerUnit: 50})

	credit, err := acc.RedemptionCredit(100, 1000)
	require.NoError(t, err)
	assertMoney(t, "2.00", credit)
}

func TestLoyaltyAccount_RedemptionCredit_Negative(t *testing.T) {
	acc := NewLoyaltyAccount(domain.LoyaltyConfig{})

	_, err := acc.RedemptionCredit(-5, 100)
	assert.ErrorIs(t, err, domain.ErrNegativePoints)

	_, err = acc.RedemptionCredit(5, -100)
	assert.ErrorIs(t, err, domain.ErrNegativePoints)
}
