package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/secmon-lab/ticklist/pkg/cli/config"
	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/service/generation"
)

// cmdGenerate runs one-shot checklist extraction without a server: each
// --text/--url input is extracted concurrently and the results are merged
// into a single checklist printed to stdout.
func cmdGenerate() *cli.Command {
	var texts []string
	var urls []string
	var llmCfg config.LLM

	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "text",
			Aliases:     []string{"t"},
			Usage:       "Free-form text to convert (can be specified multiple times)",
			Destination: &texts,
		},
		&cli.StringSliceFlag{
			Name:        "url",
			Aliases:     []string{"u"},
			Usage:       "Page URL to convert, e.g. a recipe (can be specified multiple times)",
			Destination: &urls,
		},
	}
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Convert text or URLs into a categorized checklist and print it",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if len(texts) == 0 && len(urls) == 0 {
				return goerr.New("at least one --text or --url is required")
			}

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			if llmClient == nil {
				return goerr.New("LLM credentials are required for generate")
			}

			genSvc, err := generation.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize generation service")
			}

			var mu sync.Mutex
			merged := model.Checklist{}
			collect := func(generated model.Checklist) {
				mu.Lock()
				defer mu.Unlock()
				merged = model.Merge(merged, generated)
			}

			eg, egCtx := errgroup.WithContext(ctx)
			eg.SetLimit(4)
			for _, text := range texts {
				eg.Go(func() error {
					generated, err := genSvc.FromText(egCtx, text)
					if err != nil {
						return err
					}
					collect(generated)
					return nil
				})
			}
			for _, url := range urls {
				eg.Go(func() error {
					generated, err := genSvc.FromURL(egCtx, url)
					if err != nil {
						return err
					}
					collect(generated)
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return goerr.Wrap(err, "generation failed")
			}

			if merged.IsEmpty() {
				fmt.Println("Nothing could be extracted from the input.")
				return nil
			}

			printChecklist(merged)
			return nil
		},
	}
}

func printChecklist(cl model.Checklist) {
	categoryColor := color.New(color.FgCyan, color.Bold)
	doneColor := color.New(color.FgGreen)

	for _, cat := range cl.Categories {
		categoryColor.Printf("%s\n", cat.Name)
		for _, item := range cat.Items {
			if item.Completed {
				doneColor.Printf("  [x] %s\n", item.Text)
			} else {
				fmt.Printf("  [ ] %s\n", item.Text)
			}
		}
		fmt.Println()
	}
}
