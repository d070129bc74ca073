package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/confrec/cmd/confrec/commands/apply"
	"github.com/arthur-debert/confrec/cmd/confrec/commands/plan"
	"github.com/arthur-debert/confrec/internal/version"
	"github.com/arthur-debert/confrec/pkg/config"
	"github.com/arthur-debert/confrec/pkg/logging"
	"github.com/arthur-debert/confrec/pkg/output"
)

var (
	verbosity       int
	configPath      string
	continueOnError bool

	rootCmd = &cobra.Command{
		Use:   "confrec",
		Short: "Config-file reconciliation for package transactions",
		Long: `confrec decides and applies what happens to config files on disk during
package install, upgrade and removal. It never silently destroys local
edits: modified files survive either live or under a backup suffix
(.rpmorig, .rpmsave, .rpmnew).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if verbosity == 0 {
				verbosity = cfg.Verbosity()
			}
			if !cmd.Flags().Changed("continue-on-error") {
				continueOnError = cfg.ContinueOnError()
			}

			logging.SetupLogger(verbosity)
			output.ConfigureColor(cfg.ColorMode())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/confrec/confrec.toml)")
	rootCmd.PersistentFlags().BoolVar(&continueOnError, "continue-on-error", false, "Keep processing remaining paths when one path fails")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(plan.NewCommand(&continueOnError))
	rootCmd.AddCommand(apply.NewCommand(&continueOnError))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for confrec`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("confrec version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
