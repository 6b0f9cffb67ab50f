package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateBalance_TotalSpendable(t *testing.T) {
	raw := RawBalance{
		OffchainSpendable: 7_000,
		OffchainExpired:   100,
		BoardingSpendable: 3_000,
		BoardingExpired:   50,
		BoardingPending:   10_000,
	}

	bal, err := AggregateBalance(raw)
	require.NoError(t, err)

	assert.Equal(t, int64(10_000), bal.TotalSpendable())
	assert.Equal(t, bal.Offchain.Spendable+bal.Boarding.Spendable, bal.TotalSpendable())
	assert.Equal(t, int64(10_000), bal.Boarding.Pending)
}

func TestAggregateBalance_ZeroIsValid(t *testing.T) {
	bal, err := AggregateBalance(RawBalance{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), bal.TotalSpendable())
}

func TestAggregateBalance_FailsClosedOnNegativeAmounts(t *testing.T) {
	cases := []RawBalance{
		{OffchainSpendable: -1},
		{OffchainExpired: -1},
		{BoardingSpendable: -1},
		{BoardingExpired: -1},
		{BoardingPending: -1},
	}
	for _, raw := range cases {
		_, err := AggregateBalance(raw)
		assert.Error(t, err, "raw=%+v", raw)
	}
}

func TestParseBTC(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0.0001", 10_000},
		{"1", 100_000_000},
		{"0.00000001", 1},
		{"21.5", 2_150_000_000},
		{"0", 0},
		{".5", 50_000_000},
		{"2.", 200_000_000},
	}
	for _, c := range cases {
		got, err := ParseBTC(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseBTC_Rejects(t *testing.T) {
	for _, in := range []string{"", ".", "-1", "0.000000001", "1e-4", "abc", "1,5"} {
		_, err := ParseBTC(in)
		assert.Error(t, err, in)
	}
}

func TestParseBTC_OverflowNeverWrapsNegative(t *testing.T) {
	// The largest representable amount is MaxInt64 sats exactly.
	got, err := ParseBTC("92233720368.54775807")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	// One satoshi more, and anything past the integer-part bound, must be
	// rejected rather than silently wrapping to a negative amount.
	for _, in := range []string{
		"92233720368.54775808",
		"92233720369",
		"99999999999999999999",
	} {
		sats, err := ParseBTC(in)
		require.Error(t, err, in)
		assert.GreaterOrEqual(t, sats, int64(0), in)
	}
}

func TestFormatBTC_RoundTrips(t *testing.T) {
	for _, sats := range []int64{0, 1, 10_000, 100_000_000, 2_150_000_000} {
		parsed, err := ParseBTC(FormatBTC(sats))
		require.NoError(t, err)
		assert.Equal(t, sats, parsed)
	}
}

func TestValidArkAddress(t *testing.T) {
	assert.True(t, ValidArkAddress("tark1qq0vjwvkkxdl7zmkgqeqywp9dhsdeyrrmdkvm4rtdkv2l70s8x2mk2rflz"))
	assert.True(t, ValidArkAddress("ark1qq0vjwvkkxdl7zmkgqeqywp9dhsdeyrrmdkvm4rt"))

	assert.False(t, ValidArkAddress(""))
	assert.False(t, ValidArkAddress("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"))
	assert.False(t, ValidArkAddress("ark1"))
	assert.False(t, ValidArkAddress("ark1qq0vjwvkk"))                                  // too short
	assert.False(t, ValidArkAddress("tark1qq0vjwvkkxdl7zmkgqeqywp9dhsdeyrrmdkbio!!")) // bad charset
}

func TestProtocolHandle_Opaque(t *testing.T) {
	h := NewProtocolHandle("s3cret")
	assert.Equal(t, "s3cret", h.Seed())
	assert.False(t, h.IsZero())
	assert.True(t, ProtocolHandle{}.IsZero())
}
