package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/neuroguard/internal/cli/formatter"
	"github.com/alexanderramin/neuroguard/internal/dataset"
	"github.com/alexanderramin/neuroguard/internal/domain"
	"github.com/alexanderramin/neuroguard/internal/service"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configured dataset for invalid years and coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				name string
				errs []error
			)
			if path := app.Config.Data.File; path != "" {
				schema, err := dataset.LoadFile(path)
				if err != nil {
					return err
				}
				errs = dataset.ValidateSchema(schema)
				name = dataset.Convert(schema).Name
			} else {
				d, err := loadDataset(cmd, app)
				if err != nil {
					return err
				}
				errs = d.Validate()
				name = d.Name
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProblems(name, errs))
			if len(errs) > 0 {
				return fmt.Errorf("dataset %s failed validation", name)
			}
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the milestones and institutions of the configured dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDataset(cmd, app)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDataset(d))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the configured dataset as a YAML or JSON dataset file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDataset(cmd, app)
			if err != nil {
				return err
			}
			schema := dataset.FromDataset(d)
			switch strings.ToLower(format) {
			case "yaml", "yml":
				return dataset.WriteYAML(cmd.OutOrStdout(), schema)
			case "json":
				return dataset.WriteJSON(cmd.OutOrStdout(), schema)
			default:
				return fmt.Errorf("unknown format %q (expected yaml or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	return cmd
}

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store a dataset in the SQLite store (built-in data unless --data is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := app.datasetRepo()
			if err != nil {
				return err
			}

			d := dataset.Default()
			if path := app.Config.Data.File; path != "" {
				d, err = dataset.NewFileSource(path).Load(cmd.Context())
				if err != nil {
					return err
				}
			}
			d.Name = app.Config.Data.Dataset

			svc := service.NewDatasetService(repo, app.observer())
			if err := svc.Seed(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored dataset %s: %d milestones, %d institutions\n",
				formatter.Bold(d.Name), len(d.Milestones), len(d.Institutions))
			return nil
		},
	}
}

func newDatasetsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List datasets in the SQLite store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := app.datasetRepo()
			if err != nil {
				return err
			}
			summaries, err := service.NewDatasetService(repo, app.observer()).List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDatasetList(summaries))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a dataset from the SQLite store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := app.datasetRepo()
			if err != nil {
				return err
			}
			if err := service.NewDatasetService(repo, app.observer()).Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted dataset %s\n", formatter.Bold(args[0]))
			return nil
		},
	})

	return cmd
}

func loadDataset(cmd *cobra.Command, app *App) (*domain.Dataset, error) {
	dash, err := app.dashboard()
	if err != nil {
		return nil, err
	}
	return dash.Dataset(cmd.Context())
}
