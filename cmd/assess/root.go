package main

import (
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/saferoute/internal/artifact"
	"github.com/couchcryptid/saferoute/internal/config"
	"github.com/couchcryptid/saferoute/internal/domain"
	"github.com/couchcryptid/saferoute/internal/observability"
	"github.com/couchcryptid/saferoute/internal/pipeline"
)

type options struct {
	modelPath   string
	catalogPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "assess",
		Short:        "Assess road accident severity risk",
		Long:         "assess runs the SafeRoute severity classifier on a single scenario, lists the form fields, and checks the artifacts.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.modelPath, "model",
		sharedcfg.EnvOrDefault("MODEL_PATH", config.DefaultModelPath), "Path to the model artifact (overrides MODEL_PATH env var)")
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog",
		sharedcfg.EnvOrDefault("CATALOG_PATH", config.DefaultCatalogPath), "Path to the domain catalog (overrides CATALOG_PATH env var)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level for diagnostics written to stderr")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newFieldsCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	return cmd
}

// newPipeline loads both artifacts and builds a pipeline exposing the given
// fields. Metrics go to a private registry since nothing scrapes a CLI run.
func (o *options) newPipeline(cmd *cobra.Command, exposed []string) (*pipeline.Pipeline, *artifact.Artifacts, error) {
	arts, err := artifact.Load(o.modelPath, o.catalogPath)
	if err != nil {
		return nil, nil, err
	}
	policy, err := domain.NewExposurePolicy(exposed)
	if err != nil {
		return nil, nil, err
	}
	logger := observability.NewLoggerTo(cmd.ErrOrStderr(), o.logLevel, "text")
	metrics := observability.NewMetricsWith(prometheus.NewRegistry())
	return pipeline.New(arts.Catalog, arts.Classifier, policy, logger, metrics), arts, nil
}
