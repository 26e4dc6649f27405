package acquire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucheet2000/medical-desert-california/internal/config"
)

func TestRegistry_AllInRegistrationOrder(t *testing.T) {
	r := NewRegistry(&config.Config{})

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "cdc", all[0].Name())
	assert.Equal(t, "usda", all[1].Name())
	assert.Equal(t, "nppes", all[2].Name())
	for _, s := range all {
		assert.NotEmpty(t, s.Description())
	}
}

func TestRegistry_SelectEmptyReturnsAll(t *testing.T) {
	r := NewRegistry(&config.Config{})

	sources, err := r.Select(nil)
	require.NoError(t, err)
	assert.Len(t, sources, 3)
}

func TestRegistry_SelectSubset(t *testing.T) {
	r := NewRegistry(&config.Config{})

	sources, err := r.Select([]string{"nppes", "cdc"})
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "nppes", sources[0].Name())
	assert.Equal(t, "cdc", sources[1].Name())
}

func TestRegistry_UnknownSource(t *testing.T) {
	r := NewRegistry(&config.Config{})

	_, err := r.Select([]string{"cdc", "census"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "census")
}

func TestCDCPlaces_Fetch(t *testing.T) {
	const payload = "StateAbbr,LocationID\nCA,6085504321\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload)) //nolint:errcheck
	}))
	defer srv.Close()

	cfg := &config.Config{
		Data:    config.DataConfig{HealthFile: "cdc_places_tracts.csv"},
		Sources: config.SourcesConfig{CDCPlacesURL: srv.URL},
	}
	src := &CDCPlaces{cfg: cfg}
	rawDir := t.TempDir()

	res, err := src.Fetch(context.Background(), testFetcher(), rawDir)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), res.Bytes)
	assert.Equal(t, filepath.Join(rawDir, "cdc_places_tracts.csv"), res.Path)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestCDCPlaces_FetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := &config.Config{
		Data:    config.DataConfig{HealthFile: "cdc_places_tracts.csv"},
		Sources: config.SourcesConfig{CDCPlacesURL: srv.URL},
	}
	src := &CDCPlaces{cfg: cfg}

	_, err := src.Fetch(context.Background(), testFetcher(), t.TempDir())
	require.Error(t, err)
}
