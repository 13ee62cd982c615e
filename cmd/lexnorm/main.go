package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/cobra"

	"gitlab.com/lexdraft/lexdraft-backend/internal/domain/document"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/env"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/errorx"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/i18nx"
	"gitlab.com/lexdraft/lexdraft-backend/pkg/logging"
)

// Config holds all configuration for the command
type Config struct {
	Mode     env.Mode
	Lang     string
	In       string
	Out      string
	View     string
	History  bool
	Fallback string
}

type cli struct {
	config    Config
	localizer *i18n.Localizer
}

func main() {
	c := &cli{}

	if err := newRootCmd(c).ExecuteContext(context.Background()); err != nil {
		appErr := errorx.As(err)
		if errorx.IsCode(appErr, errorx.CodeInternal) {
			slog.Error("Normalization failed", "error", err)
		} else {
			slog.Warn("Input rejected", "code", appErr.Code.String(), "error", err)
		}
		fmt.Fprintln(os.Stderr, appErr.Localize(c.localizer))
		os.Exit(appErr.ExitCode())
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "lexnorm",
		Short:         "Normalize dates and text in drafting backend payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errorx.NewInvalidRequest().WithCause(err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&c.config.In, "in", "-", "input JSON file, - for stdin")
	flags.StringVar(&c.config.Out, "out", "-", "output JSON file, - for stdout")
	flags.StringVar(&c.config.Fallback, "fallback", "", "label for dates that cannot be read")
	flags.StringVar(&c.config.Lang, "lang", getEnvOrDefault("LEXNORM_LANG", "en"), "language of date labels and messages")

	timelineCmd := &cobra.Command{
		Use:   "timeline",
		Short: "Order timeline events by date and format them for display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.execute(cmd, KindTimeline)
		},
	}

	documentCmd := &cobra.Command{
		Use:   "document",
		Short: "Normalize the line breaks of a generated document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.execute(cmd, KindDocument)
		},
	}
	documentCmd.Flags().StringVar(&c.config.View, "view", string(document.ViewDefault), "document view: default or history")
	documentCmd.Flags().BoolVar(&c.config.History, "history", false, "shorthand for --view history")

	root.AddCommand(timelineCmd, documentCmd)

	return root
}

func (c *cli) setup() error {
	mode, err := env.ParseMode(getEnvOrDefault("MODE", string(env.Dev)))
	if err != nil {
		return errorx.NewInvalidRequest().WithCause(err)
	}
	c.config.Mode = mode

	env.SetMode(mode)
	slog.SetDefault(logging.Setup(mode))

	bundle, err := i18nx.NewBundle()
	if err != nil {
		return errorx.NewInternalError().WithCause(err)
	}
	c.localizer = i18n.NewLocalizer(bundle, c.config.Lang)

	return nil
}

func (c *cli) execute(cmd *cobra.Command, kind Kind) error {
	view, err := document.ParseViewMode(c.config.View)
	if err != nil {
		return errorx.NewInvalidRequest().
			WithKey(i18nx.KeyViewModeUnknown).
			WithArgs(map[string]any{i18nx.ArgMode: c.config.View}).
			WithCause(err)
	}
	if c.config.History {
		view = document.ViewHistory
	}

	r := cmd.InOrStdin()
	if c.config.In != "" && c.config.In != "-" {
		f, err := os.Open(c.config.In)
		if err != nil {
			return errorx.NewInvalidRequest().
				WithKey(i18nx.KeyInputUnreadable).
				WithArgs(map[string]any{i18nx.ArgPath: c.config.In}).
				WithCause(err)
		}
		defer f.Close()
		r = f
	}

	var w io.Writer = cmd.OutOrStdout()
	if c.config.Out != "" && c.config.Out != "-" {
		f, err := os.Create(c.config.Out)
		if err != nil {
			return errorx.NewInternalError().WithCause(err)
		}
		defer f.Close()
		w = f
	}

	labels := i18nx.DateLabels(c.localizer)
	if c.config.Fallback != "" {
		labels.Invalid = c.config.Fallback
	}

	return run(cmd.Context(), Options{
		Kind:   kind,
		View:   view,
		Labels: labels,
	}, r, w)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
