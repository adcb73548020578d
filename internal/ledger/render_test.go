package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

func TestString(t *testing.T) {
	l := newLedger(t)
	_, err := l.AddCereal(types.Buckwheat, d(3))
	require.NoError(t, err)
	_, err = l.AddCereal(types.Rice, d(5))
	require.NoError(t, err)

	want := "CerealStorage (containerCapacity=10.0, storageCapacity=20.0)\n" +
		"  Гречка: 3.0 кг\n" +
		"  Рис: 5.0 кг\n"
	assert.Equal(t, want, l.String())
}

func TestString_EmptyContainerStaysListed(t *testing.T) {
	l := newLedger(t)
	_, err := l.AddCereal(types.Peas, d(2.5))
	require.NoError(t, err)
	_, err = l.GetCereal(types.Peas, d(2.5))
	require.NoError(t, err)

	assert.Equal(t,
		"CerealStorage (containerCapacity=10.0, storageCapacity=20.0)\n  Горох: 0.0 кг\n",
		l.String())

	require.True(t, l.RemoveContainer(types.Peas))
	assert.Equal(t,
		"CerealStorage (containerCapacity=10.0, storageCapacity=20.0)\n",
		l.String())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(3), "3.0"},
		{decimal.Zero, "0.0"},
		{decimal.RequireFromString("2.50"), "2.5"},
		{decimal.RequireFromString("0.125"), "0.125"},
		{decimal.RequireFromString("10.000"), "10.0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.in))
		})
	}
}
