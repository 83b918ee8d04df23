package domain

import "time"

// Theme is a topic category users can subscribe to.
type Theme struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Article is a post tagged with a theme.
type Article struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"authorUsername"`
	Theme          Theme     `json:"theme"`
	CommentsCount  int       `json:"commentsCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateArticleRequest carries the fields for POST /articles.
type CreateArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	ThemeID int64  `json:"themeId"`
}

// CreateThemeRequest carries the fields for POST /themes.
type CreateThemeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Comment is a reader comment attached to an article.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	ArticleID int64     `json:"articleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommentRequest carries the fields for POST /comments.
type CreateCommentRequest struct {
	Content   string `json:"content"`
	ArticleID int64  `json:"articleId"`
}
