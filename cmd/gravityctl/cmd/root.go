package cmd

import (
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/argus-labs/gravity/app"
	"github.com/argus-labs/gravity/config"
	"github.com/argus-labs/gravity/x/gravity/client/cli"
	"github.com/argus-labs/gravity/x/gravity/querier"
	"github.com/argus-labs/gravity/x/gravity/types"
)

const (
	flagGRPC     = "grpc"
	flagTimeout  = "timeout"
	flagLogLevel = "log-level"
	flagConfig   = "config"
)

// NewRootCmd returns the gravityctl root command. It must be executed with a context holding a
// cli.Context, which PersistentPreRunE fills from the config and flags.
func NewRootCmd(opts ...querier.Option) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gravityctl",
		Short:         "Query the gravity bridge and encode gravity transactions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return setupContext(cmd, cfg, opts...)
		},
	}

	rootCmd.PersistentFlags().String(flagGRPC, "", "gravity gRPC endpoint, overrides GRAVITY_GRPC_ENDPOINT")
	rootCmd.PersistentFlags().String(flagTimeout, "", "per query timeout, overrides GRAVITY_QUERY_TIMEOUT")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "log level (debug|info|error|none), overrides GRAVITY_LOG_LEVEL")
	rootCmd.PersistentFlags().String(flagConfig, "", "file of KEY=value pairs read before the environment")

	rootCmd.AddCommand(
		cli.NewQueryCmd(),
		cli.NewEncodeCmd(),
	)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if file, _ := cmd.Flags().GetString(flagConfig); file != "" {
		cfg, err = config.LoadFrom(file)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed(flagGRPC) {
		cfg.GRPCEndpoint, _ = cmd.Flags().GetString(flagGRPC)
	}
	if cmd.Flags().Changed(flagTimeout) {
		cfg.QueryTimeout, _ = cmd.Flags().GetString(flagTimeout)
	}
	if cmd.Flags().Changed(flagLogLevel) {
		cfg.LogLevel, _ = cmd.Flags().GetString(flagLogLevel)
	}
	return cfg, cfg.Validate()
}

func setupContext(cmd *cobra.Command, cfg config.Config, opts ...querier.Option) error {
	clientCtx, err := cli.GetContext(cmd)
	if err != nil {
		return err
	}

	sdkConfig := sdk.GetConfig()
	sdkConfig.SetBech32PrefixForAccount(cfg.Bech32Prefix, cfg.Bech32Prefix+sdk.PrefixPublic)
	sdkConfig.SetBech32PrefixForValidator(
		cfg.Bech32Prefix+sdk.PrefixValidator+sdk.PrefixOperator,
		cfg.Bech32Prefix+sdk.PrefixValidator+sdk.PrefixOperator+sdk.PrefixPublic,
	)

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	opts = append([]querier.Option{querier.WithLogger(logger)}, opts...)
	clientCtx.Querier = querier.New(cfg.Endpoint(), opts...)
	clientCtx.Timeout = timeout
	clientCtx.Registry = app.MakeEncodingConfig().InterfaceRegistry
	return nil
}

func newLogger(level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	option, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	return log.NewFilter(logger, option).With("module", types.ModuleName), nil
}
