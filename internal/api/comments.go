package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mdd-app/mdd-go/internal/domain"
)

// CommentsByArticle fetches the comments on an article.
func (c *Client) CommentsByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/comments/article/%d", articleID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment posts a comment and returns the stored record.
func (c *Client) CreateComment(ctx context.Context, req domain.CreateCommentRequest) (domain.Comment, error) {
	var comment domain.Comment
	if err := c.do(ctx, http.MethodPost, "/comments", req, &comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

// DeleteComment removes a comment by id.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", id), nil, nil)
}

// MyComments fetches the comments written by the current user.
func (c *Client) MyComments(ctx context.Context) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.do(ctx, http.MethodGet, "/comments/my-comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
