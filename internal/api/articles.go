package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mdd-app/mdd-go/internal/domain"
)

// ListArticles fetches the full article feed, unordered.
func (c *Client) ListArticles(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	if err := c.do(ctx, http.MethodGet, "/articles", nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle fetches a single article by id.
func (c *Client) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	var article domain.Article
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/articles/%d", id), nil, &article); err != nil {
		return domain.Article{}, err
	}
	return article, nil
}

// MyArticles fetches the articles written by the current user.
func (c *Client) MyArticles(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	if err := c.do(ctx, http.MethodGet, "/articles/my-articles", nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// ArticlesByTheme fetches the articles tagged with a theme.
func (c *Client) ArticlesByTheme(ctx context.Context, themeID int64) ([]domain.Article, error) {
	var articles []domain.Article
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/articles/by-theme/%d", themeID), nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// SearchArticles runs a keyword search server-side.
func (c *Client) SearchArticles(ctx context.Context, keyword string) ([]domain.Article, error) {
	path := "/articles/search?keyword=" + url.QueryEscape(keyword)
	var articles []domain.Article
	if err := c.do(ctx, http.MethodGet, path, nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// CreateArticle publishes a new article and returns the stored record.
func (c *Client) CreateArticle(ctx context.Context, req domain.CreateArticleRequest) (domain.Article, error) {
	var article domain.Article
	if err := c.do(ctx, http.MethodPost, "/articles", req, &article); err != nil {
		return domain.Article{}, err
	}
	return article, nil
}

// UpdateArticle replaces an article's editable fields.
func (c *Client) UpdateArticle(ctx context.Context, id int64, req domain.CreateArticleRequest) (domain.Article, error) {
	var article domain.Article
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/articles/%d", id), req, &article); err != nil {
		return domain.Article{}, err
	}
	return article, nil
}

// DeleteArticle removes an article by id.
func (c *Client) DeleteArticle(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/articles/%d", id), nil, nil)
}
