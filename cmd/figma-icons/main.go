package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	figmaicons "github.com/kataras/figma-icons"
	"github.com/kataras/figma-icons/pkg/config"
	"github.com/kataras/figma-icons/pkg/entrypoints"
	"github.com/kataras/figma-icons/pkg/figma"
	"github.com/kataras/figma-icons/pkg/formatter"
	"github.com/kataras/figma-icons/pkg/progress"

	"github.com/spf13/cobra"
)

const version = figma.Version

var (
	format         string
	output         string
	parallel       int
	envFile        string
	entrypointName string
)

func main() {
	reporter := progress.NewConsole(os.Stdout, os.Stderr)

	rootCmd := newRootCmd(reporter)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		reporter.Fail("[Error] %v", err)
		os.Exit(1)
	}
}

func newRootCmd(reporter progress.Reporter) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "figma-icons",
		Short: "Export icon components from a Figma file",
		Long: "Export every component of a Figma file as an SVG icon.\n\n" +
			"The access token is read from " + config.EnvToken + " and the file key from " + config.EnvFileKey +
			", falling back to figma.fileKey in package.json. Both may also live in a .env file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), reporter)
		},
	}

	rootCmd.Flags().StringVarP(&format, "format", "f", formatter.FormatFiles, "Output format: "+strings.Join(formatter.Formats(), ", "))
	rootCmd.Flags().StringVarP(&output, "out", "o", "", "Output directory (files, react) or file (json); defaults to icons, dist/data.json or src/icons")
	rootCmd.Flags().IntVar(&parallel, "parallel", 5, "Maximum number of concurrent SVG downloads")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Load environment variables from this file instead of .env")

	entrypointsCmd := &cobra.Command{
		Use:           "entrypoints DIR...",
		Short:         "Generate an index.ts re-exporting every component module of each directory",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := entrypoints.GenerateAll(args, entrypoints.Options{FileName: entrypointName}, reporter)
			return err
		},
	}
	entrypointsCmd.Flags().StringVar(&entrypointName, "name", entrypoints.DefaultFileName, "Entrypoint file name")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "figma-icons version %s\n", version)
		},
	}

	rootCmd.AddCommand(entrypointsCmd, versionCmd)

	return rootCmd
}

func runExport(ctx context.Context, reporter progress.Reporter) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}

	var clientOpts []figma.ClientOption
	if cfg.APIURL != "" {
		clientOpts = append(clientOpts, figma.WithBaseURL(cfg.APIURL))
	}

	_, err = figmaicons.Run(ctx, figmaicons.Options{
		AccessToken:   cfg.AccessToken,
		FileKey:       cfg.FileKey,
		Format:        format,
		Output:        output,
		Parallel:      parallel,
		Reporter:      reporter,
		ClientOptions: clientOpts,
	})

	return err
}
