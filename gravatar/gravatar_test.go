package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cother/cother/config"
)

func TestGenerateURL(t *testing.T) {
	cfg := &config.GravatarConfig{
		Enabled:      true,
		DefaultImage: "robohash",
		Rating:       "g",
		Size:         80,
	}

	url := GenerateURL("Test@Example.com", cfg)
	// md5 of "test@example.com"
	assert.Contains(t, url, "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0")
	assert.Contains(t, url, "d=robohash")
	assert.Contains(t, url, "r=g")
	assert.Contains(t, url, "s=80")
}

func TestGenerateURL_NormalizesEmail(t *testing.T) {
	cfg := &config.GravatarConfig{Enabled: true}

	assert.Equal(t,
		GenerateURL("test@example.com", cfg),
		GenerateURL("  TEST@example.COM  ", cfg),
	)
}

func TestGenerateURL_Disabled(t *testing.T) {
	assert.Empty(t, GenerateURL("test@example.com", nil))
	assert.Empty(t, GenerateURL("test@example.com", &config.GravatarConfig{Enabled: false}))
	assert.Empty(t, GenerateURL("", &config.GravatarConfig{Enabled: true}))
}
