package opt

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig(t *testing.T) {
	var o Minimax
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-depth", "2", "-seed", "7", "-threads", "3", "-no-prune",
		"-weights", `{"Capture": 5, "Side": 1}`,
	}))
	cfg, err := o.BuildConfig(6)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Size)
	assert.Equal(t, 2, cfg.Depth)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.Threads)
	assert.True(t, cfg.NoPrune)
	require.NotNil(t, cfg.Schedule)
	for i := range cfg.Schedule {
		assert.Equal(t, 5.0, cfg.Schedule[i].Capture)
		assert.Equal(t, 1.0, cfg.Schedule[i].Side)
		assert.Equal(t, 0.0, cfg.Schedule[i].Potential)
	}
	require.NotNil(t, cfg.Log)
}

func TestBuildConfigDefaults(t *testing.T) {
	var o Minimax
	o.AddFlags(flag.NewFlagSet("test", flag.ContinueOnError))
	cfg, err := o.BuildConfig(7)
	require.NoError(t, err)
	assert.Nil(t, cfg.Schedule)
	assert.Equal(t, 0, cfg.Depth)
	assert.Equal(t, 1, cfg.Threads)
}

func TestBuildConfigBadWeights(t *testing.T) {
	o := Minimax{Weights: `{"Mobility": 1}`}
	_, err := o.BuildConfig(6)
	assert.Error(t, err)
}

func TestBuildConfigNegativeDepth(t *testing.T) {
	o := Minimax{Depth: -1}
	_, err := o.BuildConfig(6)
	assert.Error(t, err)
}
