package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cerealstore/internal/ledger"
	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

func newStorage(t *testing.T, container, storage float64) types.CerealStorage {
	t.Helper()
	l, err := ledger.New(types.NewConfig(container, storage))
	require.NoError(t, err)
	return l
}

func TestExecute(t *testing.T) {
	p, err := Parse(strings.NewReader(samplePlan))
	require.NoError(t, err)

	s := newStorage(t, 10, 20)
	results, err := Execute(s, p)
	require.NoError(t, err)
	require.Len(t, results, 4)

	lines := make([]string, len(results))
	for i, r := range results {
		assert.Equal(t, i+1, r.Index)
		lines[i] = r.String()
	}
	assert.Equal(t, []string{
		"add Гречка 3.0: leftover 0.0",
		"add Рис 5.0: leftover 0.0",
		"get Рис 1.5: taken 1.5",
		"CerealStorage (containerCapacity=10.0, storageCapacity=20.0)\n  Гречка: 3.0 кг\n  Рис: 3.5 кг",
	}, lines)
}

func TestExecute_StopsAtRejectedStep(t *testing.T) {
	doc := `
steps:
  - op: add
    cereal: buckwheat
    amount: 5
  - op: add
    cereal: rice
    amount: 5
  - op: show
`
	p, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	s := newStorage(t, 10, 10)
	results, err := Execute(s, p)
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "step 2 (add RICE 5)")
	assert.Len(t, results, 1)
	assert.Equal(t, []types.Cereal{types.Buckwheat}, s.Containers())
}

func TestRun(t *testing.T) {
	s := newStorage(t, 10, 20)

	run := func(line string) Result {
		t.Helper()
		step, err := ParseLine(line)
		require.NoError(t, err)
		r, err := Run(s, step)
		require.NoError(t, err)
		return r
	}

	assert.Equal(t, "add Гречка 7.0: leftover 0.0", run("add buckwheat 7").String())
	assert.Equal(t, "add Гречка 5.0: leftover 2.0", run("add buckwheat 5").String())
	assert.Equal(t, "amount Гречка: 10.0", run("amount buckwheat").String())
	assert.Equal(t, "space Гречка: 0.0", run("space buckwheat").String())
	assert.Equal(t, "remove Гречка: not empty, kept", run("remove buckwheat").String())
	assert.Equal(t, "get Гречка 12.0: taken 10.0", run("get buckwheat 12").String())
	assert.Equal(t, "remove Гречка: removed", run("remove buckwheat").String())
	assert.Empty(t, s.Containers())
}

func TestRun_NegativeAmount(t *testing.T) {
	s := newStorage(t, 10, 20)
	step, err := ParseLine("get rice -1")
	require.NoError(t, err)

	_, err = Run(s, step)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}
