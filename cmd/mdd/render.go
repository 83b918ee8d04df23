package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/mdd-app/mdd-go/internal/domain"
	"github.com/mdd-app/mdd-go/internal/util"
)

func renderArticles(w io.Writer, articles []domain.Article) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "no articles yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tTHEME\tCOMMENTS\tPUBLISHED")
	now := time.Now()
	for _, a := range articles {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			a.ID, a.Title, a.AuthorUsername, a.Theme.Name, a.CommentsCount,
			util.FormatRelative(a.CreatedAt, now))
	}
	_ = tw.Flush()
}

func renderArticleDetail(w io.Writer, article domain.Article, comments []domain.Comment) {
	fmt.Fprintf(w, "%s\n", article.Title)
	fmt.Fprintf(w, "by %s in %s, %s\n\n", article.AuthorUsername, article.Theme.Name,
		util.FormatDateTime(article.CreatedAt))
	fmt.Fprintln(w, article.Content)
	fmt.Fprintf(w, "\ncomments (%d):\n", len(comments))
	now := time.Now()
	for _, c := range comments {
		fmt.Fprintf(w, "  [%d] %s (%s): %s\n", c.ID, c.Username,
			util.FormatRelative(c.CreatedAt, now), c.Content)
	}
}

func renderComments(w io.Writer, comments []domain.Comment) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "no comments yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tARTICLE\tPOSTED\tCOMMENT")
	now := time.Now()
	for _, c := range comments {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n",
			c.ID, c.ArticleID, util.FormatRelative(c.CreatedAt, now), c.Content)
	}
	_ = tw.Flush()
}

func renderThemes(w io.Writer, themes []domain.Theme, subscribed map[int64]bool) {
	if len(themes) == 0 {
		fmt.Fprintln(w, "no themes yet")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSUBSCRIBED\tDESCRIPTION")
	for _, t := range themes {
		mark := ""
		if subscribed[t.ID] {
			mark = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID, t.Name, mark, t.Description)
	}
	_ = tw.Flush()
}

func renderUser(w io.Writer, user domain.User) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\t%d\n", user.ID)
	fmt.Fprintf(tw, "username\t%s\n", user.Username)
	fmt.Fprintf(tw, "email\t%s\n", user.Email)
	if !user.CreatedAt.IsZero() {
		fmt.Fprintf(tw, "member since\t%s\n", util.FormatDateTime(user.CreatedAt))
	}
	_ = tw.Flush()
}

// renderQuery applies a JMESPath expression to the listing and prints the
// result as JSON. The typed slice goes through a JSON round trip first so the
// expression sees the wire field names.
func renderQuery(w io.Writer, data any, query string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("decode listing: %w", err)
	}
	result, err := jmespath.Search(query, generic)
	if err != nil {
		return fmt.Errorf("evaluate query %q: %w", query, err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode query result: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}
