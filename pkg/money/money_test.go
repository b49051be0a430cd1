package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/libris/pkg/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    money.Amount
		wantErr bool
	}{
		{"12", 1200, false},
		{"12.5", 1250, false},
		{"12.50", 1250, false},
		{"0.99", 99, false},
		{"-3.10", -310, false},
		{" 7.05 ", 705, false},
		{"99999999.99", money.MaxAmount, false},
		{"100000000", 0, true},
		{"1.999", 0, true},
		{"1.", 0, true},
		{".5", 0, true},
		{"1e3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := money.Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "12.50", money.Amount(1250).String())
	assert.Equal(t, "0.05", money.Amount(5).String())
	assert.Equal(t, "-0.50", money.Amount(-50).String())
}

func TestAmount_JSON(t *testing.T) {
	var payload struct {
		Price money.Amount `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 19.9}`), &payload))
	assert.Equal(t, money.Amount(1990), payload.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "4.25"}`), &payload))
	assert.Equal(t, money.Amount(425), payload.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price": "4.255"}`), &payload))

	encoded, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": "4.25"}`, string(encoded))
}

func TestAmount_Scan(t *testing.T) {
	var amount money.Amount

	require.NoError(t, amount.Scan("10.00"))
	assert.Equal(t, money.Amount(1000), amount)

	require.NoError(t, amount.Scan([]byte("3.40")))
	assert.Equal(t, money.Amount(340), amount)

	assert.Error(t, amount.Scan(true))
}
