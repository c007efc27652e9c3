package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/beanleaf/internal/catalogfile"
	"github.com/terraincognita07/beanleaf/internal/cli"
	"github.com/terraincognita07/beanleaf/internal/services"
)

func newRootCommand() *cobra.Command {
	options := defaultCatalogOptions()

	root := &cobra.Command{
		Use:           "beanleaf",
		Short:         "Bean plant disease knowledge base and diagnostic tool",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := options.load(cmd.Context())
			if err != nil {
				return err
			}
			return cli.RunExampleCommand(cmd.OutOrStdout(), catalog)
		},
	}

	root.PersistentFlags().StringVar(&options.dbPath, "catalog-db", options.dbPath, "read the catalog from a SQLite mirror (env CATALOG_DB_PATH)")
	root.PersistentFlags().StringVar(&options.filePath, "catalog-file", options.filePath, "read the catalog from a YAML or JSON file (env CATALOG_FILE)")

	root.AddCommand(
		exampleCmd(&options),
		symptomsCmd(&options),
		diseasesCmd(&options),
		diagnoseCmd(&options),
		exportCmd(&options),
		seedCmd(&options),
		serveCmd(&options),
	)
	return root
}

func exampleCmd(options *catalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print the symptoms of Anthracnose and the diseases causing wilting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := options.load(cmd.Context())
			if err != nil {
				return err
			}
			return cli.RunExampleCommand(cmd.OutOrStdout(), catalog)
		},
	}
}

func symptomsCmd(options *catalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symptoms [disease name]",
		Short: "List the symptoms of a disease",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := options.load(cmd.Context())
			if err != nil {
				return err
			}
			return cli.RunSymptomsCommand(cmd.OutOrStdout(), catalog, strings.Join(args, " "))
		},
	}
}

func diseasesCmd(options *catalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diseases [symptom]",
		Short: "List the diseases that show a symptom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := options.load(cmd.Context())
			if err != nil {
				return err
			}
			return cli.RunDiseasesCommand(cmd.OutOrStdout(), catalog, args[0])
		},
	}
}

func diagnoseCmd(options *catalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose [symptom...]",
		Short: "List every disease showing at least one of the given symptoms",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := options.load(cmd.Context())
			if err != nil {
				return err
			}
			err = cli.RunDiagnoseCommand(cmd.OutOrStdout(), catalog, args)
			if errors.Is(err, cli.ErrNoSymptomsSelected) {
				fmt.Fprintln(cmd.ErrOrStderr(), "⚠️  Please select at least one symptom!")
			}
			return err
		},
	}
}

func exportCmd(options *catalogOptions) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && !cmd.Flags().Changed("format") {
				format = string(catalogfile.FormatFromPath(output))
			}

			if output == "" {
				return cli.RunExportCommand(cmd.Context(), cmd.OutOrStdout(), options.source(), format)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("export: create %s: %w", output, err)
			}
			return writeExport(cmd.Context(), file, options.source(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(catalogfile.FormatYAML), "output format (yaml|json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func seedCmd(options *catalogOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Mirror the catalog into a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var source services.CatalogSource
			if options.filePath != "" {
				source = catalogfile.NewFileSource(options.filePath)
			}
			return cli.RunSeedCommand(cmd.Context(), cmd.OutOrStdout(), dbPath, source)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", getEnv("CATALOG_DB_PATH", "data/beanleaf.db"), "SQLite database path")
	return cmd
}

func serveCmd(options *catalogOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web diagnostic tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveServerConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				if config.Port, err = parsePort(port); err != nil {
					return err
				}
			}

			catalog, err := options.load(cmd.Context())
			if err != nil {
				return err
			}
			log.Printf("catalog loaded from %s", options.describe())
			return runServer(cmd.Context(), catalog, config)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (env PORT, default 8080)")
	return cmd
}

// writeExport closes out after writing and reports a failed close, so a
// truncated export file never exits successfully.
func writeExport(ctx context.Context, out io.WriteCloser, source services.CatalogSource, format string) (err error) {
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("export: close output: %w", closeErr)
		}
	}()
	return cli.RunExportCommand(ctx, out, source, format)
}
