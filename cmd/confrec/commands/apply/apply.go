package apply

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/confrec/internal/cli"
	"github.com/arthur-debert/confrec/pkg/output"
)

// NewCommand creates the apply command
func NewCommand(continueOnError *bool) *cobra.Command {
	var (
		oldManifest string
		newManifest string
		payload     string
		root        string
	)

	cmd := &cobra.Command{
		Use:     "apply",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := cli.Reconcile(cli.ReconcileOptions{
				OldManifest:     oldManifest,
				NewManifest:     newManifest,
				Payload:         payload,
				Root:            root,
				Apply:           true,
				ContinueOnError: *continueOnError,
			})
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(false)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderResults(results))
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Summary(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&oldManifest, "old", "", "Manifest of the currently installed version")
	cmd.Flags().StringVar(&newManifest, "new", "", "Manifest of the target version")
	cmd.Flags().StringVar(&payload, "payload", "", "Directory with the new package content")
	cmd.Flags().StringVar(&root, "root", "/", "Target root to reconcile against")

	return cmd
}
