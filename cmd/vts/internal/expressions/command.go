// Package expressions implements `vts expressions`: listing expression
// states and activating or deactivating expression files.
package expressions

import (
	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

func NewExpressionsCommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expressions",
		Aliases: []string{"expression"},
		Short:   "List and toggle expressions",
	}
	cmd.AddCommand(
		newListCommand(opts),
		newActivationCommand(opts, true),
		newActivationCommand(opts, false),
	)
	return cmd
}

func newListCommand(opts *internal.Options) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "list [expression-file]",
		Short: "List expressions in the current model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := protocol.ExpressionStateRequest{Details: details}
			if len(args) > 0 {
				req.ExpressionFile = args[0]
			}

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.ExpressionState(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "Include used hotkeys and parameters")
	return cmd
}

func newActivationCommand(opts *internal.Options, active bool) *cobra.Command {
	use, short := "activate <expression-file>", "Activate an expression"
	if !active {
		use, short = "deactivate <expression-file>", "Deactivate an expression"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.ActivateExpression(cmd.Context(), args[0], active)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}
