package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope2_LocationBased(t *testing.T) {
	t.Parallel()

	// 12,000 kWh on the Korean grid at 0.4541 kg/kWh.
	res := Calculate(Source{
		Category: CategoryScope2,
		Activity: &GridElectricity{Region: "KR", Monthly: monthly(12_000)},
	})

	assert.InDelta(t, 5449.2, res.Scope2Location, 1e-6)
	// No contractual instruments: market-based is all residual.
	assert.InDelta(t, 5449.2*0.80, res.Scope2Market, 1e-6)
	assert.Zero(t, res.Scope1)
	assert.Zero(t, res.Scope3)
}

func TestScope2_LayeredMarketBased(t *testing.T) {
	t.Parallel()

	// PPA 6000 kWh at 0.1, qualifying REC 3000 kWh, residual 3000 kWh at
	// 0.4541 x 0.8.
	res := Calculate(Source{
		Category: CategoryScope2,
		Activity: &GridElectricity{
			Region:  "KR",
			Monthly: monthly(12_000),
			Mix: &PowerMix{
				PPA: &PPABucket{Monthly: monthly(6_000), Factor: 0.1},
				REC: &RECBucket{Monthly: monthly(3_000), MeetsRequirements: true},
			},
		},
	})

	assert.InDelta(t, 5449.2, res.Scope2Location, 1e-6)
	assert.InDelta(t, 600+0+1089.84, res.Scope2Market, 1e-6)
	assert.Empty(t, res.Warnings)
}

func TestScope2_NonQualifyingRECChargedAtResidual(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryScope2,
		Activity: &GridElectricity{
			Region:  "KR",
			Monthly: monthly(10_000),
			Mix: &PowerMix{
				REC: &RECBucket{Monthly: monthly(4_000), MeetsRequirements: false},
			},
		},
	})

	// The non-qualifying REC share and the uncovered remainder are both
	// charged at the residual factor: effectively all 10,000 kWh.
	residual := 0.4541 * 0.80
	assert.InDelta(t, 10_000*residual, res.Scope2Market, 1e-6)
}

func TestScope2_GreenPremium(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bucket GreenPremiumBucket
		want   float64
	}{
		{
			"qualifying with declared factor",
			GreenPremiumBucket{Monthly: monthly(5_000), TreatAsRenewable: true, Factor: ptr(0.05)},
			5_000*0.05 + 5_000*0.4541*0.80, // premium share + residual share
		},
		{
			"qualifying without declared factor is zero-rated",
			GreenPremiumBucket{Monthly: monthly(5_000), TreatAsRenewable: true},
			0 + 5_000*0.4541*0.80,
		},
		{
			"non-qualifying treated as residual",
			GreenPremiumBucket{Monthly: monthly(5_000), TreatAsRenewable: false},
			10_000 * 0.4541 * 0.80,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bucket := tt.bucket
			res := Calculate(Source{
				Category: CategoryScope2,
				Activity: &GridElectricity{
					Region:  "KR",
					Monthly: monthly(10_000),
					Mix:     &PowerMix{GreenPremium: &bucket},
				},
			})
			assert.InDelta(t, tt.want, res.Scope2Market, 1e-6)
		})
	}
}

func TestScope2_OverAllocatedMixFlaggedNotCorrected(t *testing.T) {
	t.Parallel()

	// Buckets exceed total consumption every month: the engine computes with
	// the supplied figures and flags each month.
	res := Calculate(Source{
		ID:       "src-over",
		Category: CategoryScope2,
		Activity: &GridElectricity{
			Region:  "KR",
			Monthly: monthly(1_000),
			Mix: &PowerMix{
				PPA: &PPABucket{Monthly: monthly(1_500), Factor: 0.1},
			},
		},
	})

	require.Len(t, res.Warnings, 12)
	for i, w := range res.Warnings {
		assert.Equal(t, WarnOverAllocatedMix, w.Kind)
		assert.Equal(t, i+1, w.Month)
	}

	// Residual is clamped at zero, never negative, and the over-subscribed
	// PPA figure still counts in full.
	assert.InDelta(t, 1_500*0.1, res.Scope2Market, 1e-6)
	assert.InDelta(t, 1_000*0.4541, res.Scope2Location, 1e-6)
}

func TestScope2_ResidualNeverNegative(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryScope2,
		Activity: &GridElectricity{
			Region:  "KR",
			Monthly: monthly(2_000),
			Mix: &PowerMix{
				PPA: &PPABucket{Monthly: monthly(2_000), Factor: 0},
				REC: &RECBucket{Monthly: monthly(500), MeetsRequirements: true},
			},
		},
	})

	// Fully covered by zero-factor instruments: market-based floor is zero,
	// not a negative residual.
	assert.GreaterOrEqual(t, res.Scope2Market, 0.0)
	assert.InDelta(t, 0.0, res.Scope2Market, 1e-9)
}

func TestScope2_UnknownRegion(t *testing.T) {
	t.Parallel()

	res := Calculate(Source{
		Category: CategoryScope2,
		Activity: &GridElectricity{Region: "ATLANTIS", Monthly: monthly(5_000)},
	})

	// No fallback grid factor is substituted.
	assert.Zero(t, res.Scope2Location)
	assert.Zero(t, res.Scope2Market)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnMissingFactor, res.Warnings[0].Kind)
	assert.Equal(t, "grid", res.Warnings[0].Table)
}

func TestScope2_ResidualDiscountIsPolicy(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()
	policy.ResidualMixDiscount = 0.95

	res := NewCalculator(nil, policy).Calculate(Source{
		Category: CategoryScope2,
		Activity: &GridElectricity{Region: "KR", Monthly: monthly(1_000)},
	})

	assert.InDelta(t, 1_000*0.4541*0.95, res.Scope2Market, 1e-6)
}
