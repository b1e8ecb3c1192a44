// Package gravatar builds Gravatar URLs used as default profile avatars.
package gravatar

import (
	"crypto/md5" //nolint:gosec // gravatar addresses are keyed by md5
	"fmt"
	"net/url"
	"strings"

	"github.com/cother/cother/config"
)

// GenerateURL returns the Gravatar URL for the given email address.
// Returns an empty string if Gravatar is disabled or the email is empty.
func GenerateURL(email string, cfg *config.GravatarConfig) string {
	if cfg == nil || !cfg.Enabled || email == "" {
		return ""
	}

	email = strings.TrimSpace(strings.ToLower(email))
	hash := md5.Sum([]byte(email)) //nolint:gosec

	params := url.Values{}
	if cfg.DefaultImage != "" {
		params.Add("d", cfg.DefaultImage)
	}
	if cfg.Rating != "" {
		params.Add("r", cfg.Rating)
	}
	if cfg.Size > 0 {
		params.Add("s", fmt.Sprintf("%d", cfg.Size))
	}

	avatarURL := fmt.Sprintf("https://www.gravatar.com/avatar/%x", hash)
	if len(params) > 0 {
		avatarURL += "?" + params.Encode()
	}
	return avatarURL
}
