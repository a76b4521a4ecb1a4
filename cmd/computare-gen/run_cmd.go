// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"sync"

	"github.com/computare/computare-gen/internal/codegen"
	"github.com/computare/computare-gen/internal/config"
	"github.com/computare/computare-gen/internal/embed"
	xglog "github.com/computare/computare-gen/internal/log"
	"github.com/computare/computare-gen/internal/watch"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRunCmd(a *app) *cobra.Command {
	var watching bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every job listed in the tool configuration",
		Long: `Runs the generate and embed jobs from computare-gen.yaml concurrently. The
first failing job cancels the others. With --watch, jobs are re-run when
one of their input files changes.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.cfg.Jobs) == 0 {
				return usageErrorf("no jobs configured (tool config: %q)", a.cfg.ConfigPath)
			}
			r := &jobRunner{cfg: a.cfg, stdout: a.stdout}
			ctx := cmd.Context()

			if !watching {
				return r.runAll(ctx, a.cfg.Jobs)
			}
			if err := r.runAll(ctx, a.cfg.Jobs); err != nil {
				logger := xglog.WithComponent("cli")
				logger.Error().Err(err).Str(xglog.FieldEvent, "run.failed").Msg("initial run failed")
			}
			return watch.Run(ctx, jobInputs(a.cfg.Jobs), watch.DefaultDebounce, func(ctx context.Context, changed []string) error {
				return r.runAll(ctx, affectedJobs(a.cfg.Jobs, changed))
			})
		},
	}
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "re-run jobs whenever their inputs change")
	return cmd
}

type jobRunner struct {
	cfg config.AppConfig

	mu     sync.Mutex
	stdout io.Writer
}

// runAll runs jobs concurrently. Validate guarantees distinct outputs.
func (r *jobRunner) runAll(ctx context.Context, jobs []config.Job) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			return r.runJob(xglog.ContextWithJobID(ctx, job.ID()), job)
		})
	}
	return g.Wait()
}

func (r *jobRunner) runJob(ctx context.Context, job config.Job) error {
	var summary string
	switch job.Kind {
	case config.JobGenerate:
		res, err := codegen.GenerateFile(ctx, codegen.FileRequest{
			Input:   job.Input,
			Output:  job.Output,
			Strict:  r.cfg.Strict,
			Options: r.cfg.CodegenOptions(),
		})
		if err != nil {
			return fmt.Errorf("job %s: %w", job.ID(), err)
		}
		summary = fmt.Sprintf("%d languages, %d ignore entries", res.Languages, res.Ignored)
	case config.JobEmbed:
		res, err := embed.Render(ctx, embed.RenderRequest{
			Template:    job.Template,
			Config:      job.Input,
			Output:      job.Output,
			Placeholder: job.PlaceholderOrDefault(),
			Mode:        r.cfg.EmbedMode(),
		})
		if err != nil {
			return fmt.Errorf("job %s: %w", job.ID(), err)
		}
		summary = fmt.Sprintf("%d placeholder(s) replaced", res.Replaced)
	default:
		return fmt.Errorf("job %s: unknown kind %q", job.ID(), job.Kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.stdout, "[%s] wrote %s (%s)\n", job.ID(), job.Output, summary)
	return nil
}

func jobInputs(jobs []config.Job) []string {
	var paths []string
	for _, job := range jobs {
		for _, p := range []string{job.Input, job.Template} {
			if p != "" && !slices.Contains(paths, p) {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// affectedJobs returns the jobs reading any of the changed (absolute) paths.
func affectedJobs(jobs []config.Job, changed []string) []config.Job {
	var out []config.Job
	for _, job := range jobs {
		for _, p := range []string{job.Input, job.Template} {
			if p == "" {
				continue
			}
			abs, err := filepath.Abs(p)
			if err == nil && slices.Contains(changed, abs) {
				out = append(out, job)
				break
			}
		}
	}
	return out
}
