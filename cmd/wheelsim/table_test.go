package main

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Wheel/internal/simulate"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

func TestParseOptions(t *testing.T) {
	data := []byte("- name: Pizza\n  weight: 3\n- name: ラーメン\n  weight: 1\n")
	list, err := parseOptions(data)
	require.NoError(t, err)
	assert.Equal(t, []wheel.Option{{Name: "Pizza", Weight: 3}, {Name: "ラーメン", Weight: 1}}, list)

	_, err = parseOptions([]byte("name: [unclosed"))
	assert.Error(t, err)
}

func TestFormatReport_AlignsWideNames(t *testing.T) {
	rep, err := simulate.Run(wheel.NewSource(7), []wheel.Option{
		{Name: "Pizza", Weight: 1},
		{Name: "ラーメン", Weight: 1},
	}, 12000, nil)
	require.NoError(t, err)

	out := formatReport(rep, 0.05, time.Second)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// border, header, border, two rows, border
	table := lines[:6]
	width := runewidth.StringWidth(table[0])
	for _, l := range table {
		assert.Equal(t, width, runewidth.StringWidth(l), "misaligned line %q", l)
	}
	assert.Contains(t, out, "12,000")
	assert.Contains(t, out, "df: 1")
}

func TestFormatReport_Verdict(t *testing.T) {
	rep := simulate.Report{Runs: 10, PValue: 0.001, DF: 1}
	assert.Contains(t, formatReport(rep, 0.05, 0), "NOT consistent")

	rep.PValue = 0.5
	assert.Contains(t, formatReport(rep, 0.05, 0), "consistent with the weights")
	assert.NotContains(t, formatReport(rep, 0.05, 0), "NOT")
}
