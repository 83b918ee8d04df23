package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mdd-app/mdd-go/internal/domain"
)

// ListThemes fetches every theme.
func (c *Client) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	var themes []domain.Theme
	if err := c.do(ctx, http.MethodGet, "/themes", nil, &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

// GetTheme fetches a single theme by id.
func (c *Client) GetTheme(ctx context.Context, id int64) (domain.Theme, error) {
	var theme domain.Theme
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/themes/%d", id), nil, &theme); err != nil {
		return domain.Theme{}, err
	}
	return theme, nil
}

// CreateTheme adds a new theme.
func (c *Client) CreateTheme(ctx context.Context, req domain.CreateThemeRequest) (domain.Theme, error) {
	var theme domain.Theme
	if err := c.do(ctx, http.MethodPost, "/themes", req, &theme); err != nil {
		return domain.Theme{}, err
	}
	return theme, nil
}

// SubscribeTheme subscribes the current user to a theme.
func (c *Client) SubscribeTheme(ctx context.Context, themeID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/themes/%d/subscribe", themeID), struct{}{}, nil)
}

// UnsubscribeTheme removes the current user's subscription to a theme.
func (c *Client) UnsubscribeTheme(ctx context.Context, themeID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/themes/%d/subscribe", themeID), nil, nil)
}

// Subscriptions fetches the theme ids the current user subscribes to.
func (c *Client) Subscriptions(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := c.do(ctx, http.MethodGet, "/themes/subscriptions", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
