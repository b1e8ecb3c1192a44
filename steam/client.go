// Package steam is a small client for the public Steam storefront API.
package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cother/cother/config"
)

// Client represents a Steam storefront API client.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a new Steam client.
func New(cfg *config.SteamConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FeaturedItem is a single entry of a featured storefront category.
type FeaturedItem struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Discounted        bool   `json:"discounted"`
	DiscountPercent   int    `json:"discount_percent"`
	OriginalPrice     int    `json:"original_price"`
	FinalPrice        int    `json:"final_price"`
	Currency          string `json:"currency"`
	LargeCapsuleImage string `json:"large_capsule_image"`
	SmallCapsuleImage string `json:"small_capsule_image"`
	HeaderImage       string `json:"header_image"`
}

type category struct {
	Items []FeaturedItem `json:"items"`
}

type featuredCategories struct {
	Specials    category `json:"specials"`
	NewReleases category `json:"new_releases"`
}

// GetSpecialOffers returns the current storefront specials.
func (c *Client) GetSpecialOffers(ctx context.Context) ([]FeaturedItem, error) {
	categories, err := c.getFeaturedCategories(ctx)
	if err != nil {
		return nil, err
	}
	return categories.Specials.Items, nil
}

// GetNewReleases returns the current storefront new releases.
func (c *Client) GetNewReleases(ctx context.Context) ([]FeaturedItem, error) {
	categories, err := c.getFeaturedCategories(ctx)
	if err != nil {
		return nil, err
	}
	return categories.NewReleases.Items, nil
}

func (c *Client) getFeaturedCategories(ctx context.Context) (*featuredCategories, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/featuredcategories/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured categories: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var categories featuredCategories
	if err := json.NewDecoder(resp.Body).Decode(&categories); err != nil {
		return nil, fmt.Errorf("failed to decode featured categories: %w", err)
	}

	return &categories, nil
}
