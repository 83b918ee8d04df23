// Command mdd is the terminal frontend for the MDD blogging platform. Each
// command is a "view": it resolves its route against the guard table, then
// calls the API client and renders the result.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/mdd-app/mdd-go/internal/bootstrap"
)

type commandFn func(cc *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	App    *bootstrap.App
	Out    io.Writer
}

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	logger := bootstrap.InitLogger(cfg.Verbose)

	if len(os.Args) < 2 {
		if err := printUsage(os.Stderr); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		if err := printUsage(os.Stderr); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	ctx := context.Background()
	app, err := bootstrap.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "initialize client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close client", "error", cerr)
		}
	}()

	cc := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		App:    app,
		Out:    os.Stdout,
	}
	if runErr := cmd.run(cc, os.Args[2:]); runErr != nil {
		fmt.Fprintln(os.Stderr, "error:", runErr)
		os.Exit(1)
	}
}

func commands() map[string]command {
	return map[string]command{
		"home":           {"home", "Show the landing view", runHome},
		"login":          {"login", "Log in with email and password", runLogin},
		"register":       {"register", "Create an account and log in", runRegister},
		"logout":         {"logout", "Log out (local logout always succeeds)", runLogout},
		"whoami":         {"whoami", "Show the current user profile", runWhoami},
		"profile":        {"profile", "Update username, email and/or password", runProfile},
		"articles":       {"articles", "List the article feed", runArticles},
		"article":        {"article", "Show one article with its comments", runArticle},
		"publish":        {"publish", "Publish a new article", runPublish},
		"edit":           {"edit", "Edit one of your articles", runEdit},
		"unpublish":      {"unpublish", "Delete one of your articles", runUnpublish},
		"search":         {"search", "Search articles by keyword", runSearch},
		"my-articles":    {"my-articles", "List articles you wrote", runMyArticles},
		"theme-articles": {"theme-articles", "List articles in a theme", runThemeArticles},
		"comment":        {"comment", "Comment on an article", runComment},
		"uncomment":      {"uncomment", "Delete one of your comments", runUncomment},
		"my-comments":    {"my-comments", "List comments you wrote", runMyComments},
		"themes":         {"themes", "List themes with your subscription status", runThemes},
		"create-theme":   {"create-theme", "Create a new theme", runCreateTheme},
		"subscribe":      {"subscribe", "Subscribe to a theme", runSubscribe},
		"unsubscribe":    {"unsubscribe", "Unsubscribe from a theme", runUnsubscribe},
		"subscriptions":  {"subscriptions", "List themes you subscribe to", runSubscriptions},
	}
}

func printUsage(w io.Writer) error {
	fmt.Fprintln(w, "usage: mdd <command> [flags]")
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, cmds[name].description)
	}
	return tw.Flush()
}
