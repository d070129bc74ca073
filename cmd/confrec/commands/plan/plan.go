package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/confrec/internal/cli"
	"github.com/arthur-debert/confrec/pkg/output"
)

// NewCommand creates the plan command
func NewCommand(continueOnError *bool) *cobra.Command {
	var (
		oldManifest string
		newManifest string
		root        string
	)

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := cli.Reconcile(cli.ReconcileOptions{
				OldManifest:     oldManifest,
				NewManifest:     newManifest,
				Root:            root,
				Apply:           false,
				ContinueOnError: *continueOnError,
			})
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(true)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderResults(results))
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Summary(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&oldManifest, "old", "", "Manifest of the currently installed version")
	cmd.Flags().StringVar(&newManifest, "new", "", "Manifest of the target version")
	cmd.Flags().StringVar(&root, "root", "/", "Target root to reconcile against")

	return cmd
}
