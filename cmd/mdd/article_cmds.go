package main

import (
	"flag"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mdd-app/mdd-go/internal/articlecache"
	"github.com/mdd-app/mdd-go/internal/domain"
	"github.com/mdd-app/mdd-go/internal/guard"
	"github.com/mdd-app/mdd-go/internal/validate"
)

func runArticles(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("articles", flag.ContinueOnError)
	sortOrder := fs.String("sort", "", "sort by publication date: asc or desc")
	force := fs.Bool("force", false, "refetch even when the cached feed is fresh")
	query := fs.String("query", "", "JMESPath expression applied to the feed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticles); err != nil {
		return skipToNil(err)
	}

	switch *sortOrder {
	case "asc":
		cc.App.Articles.SetSortOrder(articlecache.SortAscending)
	case "desc":
		cc.App.Articles.SetSortOrder(articlecache.SortDescending)
	case "":
	default:
		return fmt.Errorf("invalid -sort %q (valid options: asc, desc)", *sortOrder)
	}

	return showArticles(cc, *force, *query)
}

func showArticles(cc *commandContext, force bool, query string) error {
	articles, err := cc.App.Articles.Load(cc.Ctx, force)
	if err != nil {
		return err
	}
	if query != "" {
		return renderQuery(cc.Out, articles, query)
	}
	renderArticles(cc.Out, articles)
	return nil
}

func runArticle(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("article", flag.ContinueOnError)
	id := fs.Int64("id", 0, "article id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticleDetail); err != nil {
		return skipToNil(err)
	}
	if *id <= 0 {
		return fmt.Errorf("-id is required")
	}

	// The detail view needs the article and its comments; fetch both at once.
	var (
		article  domain.Article
		comments []domain.Comment
	)
	g, ctx := errgroup.WithContext(cc.Ctx)
	g.Go(func() error {
		var err error
		article, err = cc.App.API.GetArticle(ctx, *id)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = cc.App.API.CommentsByArticle(ctx, *id)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	renderArticleDetail(cc.Out, article, comments)
	return nil
}

func runPublish(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	title := fs.String("title", "", "article title")
	content := fs.String("content", "", "article body")
	themeID := fs.Int64("theme", 0, "theme id the article belongs to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteCreateArticle); err != nil {
		return skipToNil(err)
	}
	if err := validate.Required(map[string]string{
		"title": *title, "content": *content,
	}, "title", "content"); err != nil {
		return err
	}
	if *themeID <= 0 {
		return fmt.Errorf("-theme is required")
	}

	article, err := cc.App.API.CreateArticle(cc.Ctx, domain.CreateArticleRequest{
		Title:   *title,
		Content: *content,
		ThemeID: *themeID,
	})
	if err != nil {
		return err
	}
	// Optimistic cache update; no reconciliation with the server.
	cc.App.Articles.Add(article)
	fmt.Fprintf(cc.Out, "published article %d: %s\n", article.ID, article.Title)
	return nil
}

func runEdit(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	id := fs.Int64("id", 0, "article id")
	title := fs.String("title", "", "new article title")
	content := fs.String("content", "", "new article body")
	themeID := fs.Int64("theme", 0, "new theme id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticles); err != nil {
		return skipToNil(err)
	}
	if *id <= 0 {
		return fmt.Errorf("-id is required")
	}
	if err := validate.Required(map[string]string{
		"title": *title, "content": *content,
	}, "title", "content"); err != nil {
		return err
	}
	if *themeID <= 0 {
		return fmt.Errorf("-theme is required")
	}

	article, err := cc.App.API.UpdateArticle(cc.Ctx, *id, domain.CreateArticleRequest{
		Title:   *title,
		Content: *content,
		ThemeID: *themeID,
	})
	if err != nil {
		return err
	}
	cc.App.Articles.Update(article)
	fmt.Fprintf(cc.Out, "updated article %d: %s\n", article.ID, article.Title)
	return nil
}

func runUnpublish(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("unpublish", flag.ContinueOnError)
	id := fs.Int64("id", 0, "article id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticles); err != nil {
		return skipToNil(err)
	}
	if *id <= 0 {
		return fmt.Errorf("-id is required")
	}
	if err := cc.App.API.DeleteArticle(cc.Ctx, *id); err != nil {
		return err
	}
	cc.App.Articles.Remove(*id)
	fmt.Fprintf(cc.Out, "deleted article %d\n", *id)
	return nil
}

func runSearch(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	keyword := fs.String("keyword", "", "search keyword")
	query := fs.String("query", "", "JMESPath expression applied to the results")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticles); err != nil {
		return skipToNil(err)
	}
	if err := validate.Required(map[string]string{"keyword": *keyword}, "keyword"); err != nil {
		return err
	}

	articles, err := cc.App.API.SearchArticles(cc.Ctx, *keyword)
	if err != nil {
		return err
	}
	if *query != "" {
		return renderQuery(cc.Out, articles, *query)
	}
	renderArticles(cc.Out, articles)
	return nil
}

func runMyArticles(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("my-articles", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath expression applied to the list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticles); err != nil {
		return skipToNil(err)
	}
	articles, err := cc.App.API.MyArticles(cc.Ctx)
	if err != nil {
		return err
	}
	if *query != "" {
		return renderQuery(cc.Out, articles, *query)
	}
	renderArticles(cc.Out, articles)
	return nil
}

func runThemeArticles(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("theme-articles", flag.ContinueOnError)
	themeID := fs.Int64("theme", 0, "theme id")
	query := fs.String("query", "", "JMESPath expression applied to the list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticles); err != nil {
		return skipToNil(err)
	}
	if *themeID <= 0 {
		return fmt.Errorf("-theme is required")
	}
	articles, err := cc.App.API.ArticlesByTheme(cc.Ctx, *themeID)
	if err != nil {
		return err
	}
	if *query != "" {
		return renderQuery(cc.Out, articles, *query)
	}
	renderArticles(cc.Out, articles)
	return nil
}

func runComment(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("comment", flag.ContinueOnError)
	articleID := fs.Int64("article", 0, "article id")
	message := fs.String("message", "", "comment text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticleDetail); err != nil {
		return skipToNil(err)
	}
	if *articleID <= 0 {
		return fmt.Errorf("-article is required")
	}
	if err := validate.Required(map[string]string{"message": *message}, "message"); err != nil {
		return err
	}

	comment, err := cc.App.API.CreateComment(cc.Ctx, domain.CreateCommentRequest{
		Content:   *message,
		ArticleID: *articleID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "comment %d added to article %d\n", comment.ID, comment.ArticleID)
	return nil
}

func runUncomment(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("uncomment", flag.ContinueOnError)
	id := fs.Int64("id", 0, "comment id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticleDetail); err != nil {
		return skipToNil(err)
	}
	if *id <= 0 {
		return fmt.Errorf("-id is required")
	}
	if err := cc.App.API.DeleteComment(cc.Ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "deleted comment %d\n", *id)
	return nil
}

func runMyComments(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("my-comments", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath expression applied to the list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteArticleDetail); err != nil {
		return skipToNil(err)
	}
	comments, err := cc.App.API.MyComments(cc.Ctx)
	if err != nil {
		return err
	}
	if *query != "" {
		return renderQuery(cc.Out, comments, *query)
	}
	renderComments(cc.Out, comments)
	return nil
}
