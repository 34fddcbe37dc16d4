package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "sweep", "families"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRunCmd_FlagDefaults(t *testing.T) {
	flags := runCmd.Flags()
	assert.Equal(t, "10", flags.Lookup("duration").DefValue)
	assert.Equal(t, "42", flags.Lookup("seed").DefValue)
	assert.Equal(t, reportAggregated, flags.Lookup("report").DefValue)
	assert.Equal(t, "none", flags.Lookup("trace").DefValue)
	assert.NotNil(t, sweepCmd.Flags().Lookup("delays"))
	assert.Nil(t, sweepCmd.Flags().Lookup("trials"))
}

func TestWordSepNormalizeFunc(t *testing.T) {
	assert.Equal(t, "watermark-delay", string(wordSepNormalizeFunc(nil, "watermark_delay")))
	assert.Equal(t, "input-rate", string(wordSepNormalizeFunc(nil, "input-rate")))
}
