package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/linoteia/portfolio/pkg/async"
	"github.com/linoteia/portfolio/pkg/config"
	"github.com/linoteia/portfolio/pkg/content"
	"github.com/linoteia/portfolio/pkg/i18n"
	"github.com/linoteia/portfolio/pkg/logger"
	"github.com/linoteia/portfolio/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		base   string
		extras bool
		wait   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "render <code>",
		Short: "Fetch one language document and print the content markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := i18n.ParseCode(args[0])
			if err != nil {
				return err
			}
			if base == "" {
				var cfg content.Config
				if err := config.Load(&cfg); err != nil {
					return err
				}
				base = cfg.BaseURL
			}
			fetcher, err := content.NewHTTPFetcher(base)
			if err != nil {
				return err
			}

			log := logger.New(logger.WithOutput(os.Stderr))
			fut := async.Async(cmd.Context(), code, fetcher.Fetch)
			var p content.Payload
			if wait > 0 {
				p, err = fut.AwaitWithTimeout(wait)
			} else {
				p, err = fut.Await()
			}
			switch {
			case content.IsHTTPError(err):
				return err
			case err != nil:
				log.WarnContext(cmd.Context(), "content request failed, using fallback",
					logger.Lang(code.String()), logger.Error(err))
				p = content.EmptyFallback()
			}

			x := render.Extras{}
			if extras {
				x = render.Extras{Portrait: true, CTA: true}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.BuildWithExtras(p, x))
			return err
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "content base URL, defaults to CONTENT_BASE_URL")
	cmd.Flags().BoolVar(&extras, "extras", false, "include the hero portrait and links")
	cmd.Flags().DurationVar(&wait, "wait", 0, "give up on the request after this long and print the fallback, 0 waits forever")
	return cmd
}
