package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.Equal(t, "fwl1_300_250_256", Name("fwl1", 300, 250, 256))
	assert.Equal(t, "sgdl1_0.01", Name("sgdl1", 0.01))
	assert.Equal(t, "solo", Name("solo"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	m := &Metrics{
		TrainLoss: []float64{1.5, 0.8, 0.4},
		TestAcc:   []float64{0.6, 0.75, 0.9},
	}
	require.NoError(t, Save(dir, "fwl1_5_3", m))

	got, err := Load(dir, "fwl1_5_3")
	require.NoError(t, err)
	assert.Equal(t, m.TrainLoss, got.TrainLoss)
	assert.Equal(t, m.TestAcc, got.TestAcc)
	assert.Empty(t, got.TrainAcc)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "nope")
	require.Error(t, err)
}
