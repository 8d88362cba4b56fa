package cli

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonscope/carbonscope/internal/engine"
)

const singleSource = `{
	"id": "boiler",
	"facilityId": "hq",
	"category": "scope1_direct",
	"calculationMethod": "activity",
	"data": {"fuelType": "natural_gas", "unit": "m3", "monthlyQuantities": [1000,0,0,0,0,0,0,0,0,0,0,0]}
}`

func TestRunCalculateSingleSourceJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	params := calculateParams{Input: "-", Format: "json"}
	calc := engine.NewCalculator(nil, engine.DefaultPolicy())

	require.NoError(t, runCalculate(&out, strings.NewReader(singleSource), params, calc))

	var totals engine.Totals
	require.NoError(t, json.Unmarshal(out.Bytes(), &totals))
	assert.InDelta(t, 1901.9, totals.Scope1, 1e-6)
	assert.Equal(t, 1, totals.Sources)
}

func TestRunCalculateArrayTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	params := calculateParams{Input: "-", Format: "table"}
	calc := engine.NewCalculator(nil, engine.DefaultPolicy())

	require.NoError(t, runCalculate(&out, strings.NewReader("["+singleSource+"]"), params, calc))

	assert.Contains(t, out.String(), "Scope 1")
	assert.Contains(t, out.String(), "1901.90")
}

func TestRunCalculateUnknownFormat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	params := calculateParams{Input: "-", Format: "xml"}
	calc := engine.NewCalculator(nil, engine.DefaultPolicy())

	err := runCalculate(&out, strings.NewReader(singleSource), params, calc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRunCalculateBadJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	params := calculateParams{Input: "-", Format: "json"}
	calc := engine.NewCalculator(nil, engine.DefaultPolicy())

	require.Error(t, runCalculate(&out, strings.NewReader("{nope"), params, calc))
}

func TestFactorsListCommand(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"factors", "list"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "fuel")
	assert.Contains(t, out.String(), "grid")
}

func TestFactorsShowUnknownTable(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"factors", "show", "nope"})

	require.Error(t, cmd.Execute())
}

func TestDQICommand(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"dqi",
		"--technological", "1", "--temporal", "1", "--geographical", "1",
		"--completeness", "1", "--reliability", "1",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.00")
	assert.Contains(t, out.String(), "high")
}
