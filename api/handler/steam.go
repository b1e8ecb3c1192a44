package handler

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/cother/cother/steam"
)

// Cache keys for the steam proxy.
const (
	specialOffersCacheKey = "special_offers"
	newReleasesCacheKey   = "new_releases"
)

// SpecialOffers handles GET /steam/special_offers.
func (h *Handler) SpecialOffers(c *gin.Context) {
	h.serveFeatured(c, specialOffersCacheKey, h.steam.GetSpecialOffers)
}

// NewReleases handles GET /steam/new_releases.
func (h *Handler) NewReleases(c *gin.Context) {
	h.serveFeatured(c, newReleasesCacheKey, h.steam.GetNewReleases)
}

// serveFeatured returns a cached storefront category, fetching it from the
// Steam API on a cache miss. The proxy result is identical for all callers.
func (h *Handler) serveFeatured(c *gin.Context, key string, fetch func(context.Context) ([]steam.FeaturedItem, error)) {
	ctx := c.Request.Context()

	if items, err := h.steamCache.Get(ctx, key); err == nil {
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := fetch(ctx)
	if err != nil {
		log.Error("failed to fetch steam storefront data", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := h.steamCache.Set(ctx, key, items); err != nil {
		log.Warn("failed to cache steam storefront data", "error", err)
	}

	c.JSON(http.StatusOK, items)
}
