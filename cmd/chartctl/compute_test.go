package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `{
	"ascendant": 130,
	"longitudes": {
		"Sun": 256.4, "Moon": 45, "Mars": 300.2, "Mercury": 240.9,
		"Jupiter": 1.5, "Venus": 217.3, "Saturn": 16.8, "Rahu": 10
	}
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestComputeFromSnapshot(t *testing.T) {
	out, err := run(t, "compute",
		"--snapshot", writeSnapshot(t),
		"--date", "01/01/2000", "--time", "06:30",
		"--lat", "13.08", "--lon", "80.27", "--tz", "5.5")
	require.NoError(t, err)

	var resp struct {
		Ascendant struct {
			Sign string `json:"sign"`
		} `json:"ascendant"`
		Moon struct {
			Nakshatra string `json:"nakshatra"`
		} `json:"moon_intelligence"`
		Timeline []struct {
			Lord string `json:"lord"`
		} `json:"vimshottari_timeline"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Leo", resp.Ascendant.Sign)
	assert.Equal(t, "Rohini", resp.Moon.Nakshatra)
	require.NotEmpty(t, resp.Timeline)
	assert.Equal(t, "Moon", resp.Timeline[0].Lord)
}

func TestComputeReadsEnvironment(t *testing.T) {
	t.Setenv("CHARTCTL_SNAPSHOT", writeSnapshot(t))
	t.Setenv("CHARTCTL_LAT", "28.61")
	t.Setenv("CHARTCTL_LON", "77.21")

	out, err := run(t, "compute", "--date", "15-08-1990", "--time", "14:30")
	require.NoError(t, err)
	assert.Contains(t, out, `"lat":28.61`)
}

func TestComputeRequiresSource(t *testing.T) {
	_, err := run(t, "compute", "--date", "01/01/2000", "--time", "06:30", "--lat", "1", "--lon", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--snapshot or --ephemeris-url")
}

func TestComputeRejectsMissingLocation(t *testing.T) {
	_, err := run(t, "compute", "--snapshot", writeSnapshot(t), "--date", "01/01/2000", "--time", "06:30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Need City or Lat/Lon")
}
