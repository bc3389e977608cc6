package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"antennacalc/internal/calc"
	"antennacalc/internal/client"
	"antennacalc/internal/config"
	"antennacalc/internal/logger"
	"antennacalc/internal/models"
	"antennacalc/internal/reports"
	"antennacalc/internal/storage"
	"antennacalc/internal/units"
)

// Output formats
const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

// app holds the global flags shared by every calculator command
type app struct {
	unit       string
	format     string
	server     string
	save       bool
	reportsDir string
	logLevel   string

	u units.Unit
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "antcalc",
		Short:         "Antenna dimension and feed-line loss calculators",
		Version:       config.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.unit, "unit", string(units.Default), "length unit: mm, cm or m")
	flags.StringVar(&a.format, "format", formatText, "output format: text, json or markdown")
	flags.StringVar(&a.server, "server", "", "antennacalc server URL; calculations run locally when empty")
	flags.BoolVar(&a.save, "save", false, "store an HTML/markdown/text report bundle")
	flags.StringVar(&a.reportsDir, "reports-dir", "./data", "report directory for --save without --server")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		a.flowerPotCmd(),
		a.groundPlaneCmd(),
		a.jPoleCmd(),
		a.yagiCmd(),
		a.kharchenkoCmd(),
		a.coaxCmd(),
		awgCmd(),
		catalogCmd(),
		presetsCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level, ok := logger.ParseLevel(a.logLevel)
	if !ok {
		return fmt.Errorf("unsupported log level %q", a.logLevel)
	}
	logger.SetGlobalLogger(logger.New(logger.Config{
		Level:  level,
		Format: logger.TextFormat,
		Output: cmd.ErrOrStderr(),
	}))

	a.u = units.ParseOr(a.unit, "")
	if !a.u.Valid() {
		return fmt.Errorf("unsupported unit %q", a.unit)
	}
	switch a.format {
	case formatText, formatJSON, formatMarkdown:
	default:
		return fmt.Errorf("unsupported format %q", a.format)
	}
	return nil
}

// job is one calculation, runnable locally or through the API
type job struct {
	kind   models.Kind
	input  interface{}
	local  func() (models.Result, error)
	remote func(context.Context, *client.Client) (models.Result, error)
}

func newJob[I any, R models.Result](kind models.Kind, in I, local func(I) (R, error), remote func(*client.Client, context.Context, I) (R, error)) job {
	return job{
		kind:  kind,
		input: in,
		local: func() (models.Result, error) {
			r, err := calc.Run(func() (R, error) { return local(in) })
			if err != nil {
				return nil, err
			}
			return r, nil
		},
		remote: func(ctx context.Context, c *client.Client) (models.Result, error) {
			r, err := remote(c, ctx, in)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	}
}

func (a *app) run(cmd *cobra.Command, j job) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.WithComponent("cli")

	var (
		result models.Result
		err    error
	)
	if a.server != "" {
		c := client.New(a.server)
		result, err = j.remote(ctx, c)
	} else {
		result, err = j.local()
	}
	if err != nil {
		return userError(err)
	}
	log.Debug("Calculation finished", map[string]interface{}{"calculator": string(j.kind)})

	if err := a.print(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if a.save {
		return a.saveReport(ctx, cmd.OutOrStdout(), j, result)
	}
	return nil
}

func (a *app) saveReport(ctx context.Context, w io.Writer, j job, result models.Result) error {
	if a.server != "" {
		saved, err := client.New(a.server).SaveReport(ctx, j.kind, j.input, a.u)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Fprintf(w, "\nReport saved: %s%s\n", strings.TrimRight(a.server, "/"), saved.URL)
		return nil
	}

	store, err := storage.NewLocalStorageClient(a.reportsDir)
	if err != nil {
		return fmt.Errorf("failed to open report directory: %w", err)
	}
	defer store.Close()

	saved, err := reports.NewReportService(store, config.GetVersion()).Save(ctx, result, a.u)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	fmt.Fprintf(w, "\nReport saved: %s\n", filepath.Join(store.Root(), saved.Folder, reports.HTMLFile))
	return nil
}

func (a *app) print(w io.Writer, result models.Result) error {
	switch a.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case formatMarkdown:
		md, err := reports.Markdown(result, a.u)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	default:
		text, err := reports.TextReport(result, a.u)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
		if r, ok := result.(models.CoaxResult); ok && len(r.Bands) > 0 {
			_, err = io.WriteString(w, "\n"+bandSummary(r.Bands))
		}
		return err
	}
}

// userError flattens validation messages into one readable error
func userError(err error) error {
	if calc.IsValidation(err) {
		return fmt.Errorf("invalid input: %s", strings.Join(calc.Messages(err), "; "))
	}
	return err
}
