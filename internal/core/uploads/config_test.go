package uploads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{MediaRoot: "/srv/media", MediaURL: "/media"}.Validate())
	assert.ErrorIs(t, Config{MediaURL: "/media"}.Validate(), ErrMissingMediaRoot)
	assert.ErrorIs(t, Config{MediaRoot: "/srv/media"}.Validate(), ErrMissingMediaURL)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MEDIA_ROOT", "/srv/inkwell/media")
	t.Setenv("MEDIA_URL", "https://cdn.example.com/media")

	cfg := ConfigFromEnv()
	assert.Equal(t, "/srv/inkwell/media", cfg.MediaRoot)
	assert.Equal(t, "https://cdn.example.com/media", cfg.MediaURL)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("MEDIA_ROOT", "")
	t.Setenv("MEDIA_URL", "")

	cfg := ConfigFromEnv()
	assert.Equal(t, DefaultConfig(), cfg)
}
