// Package params implements `vts params`: reading, creating, deleting,
// listing, and injecting tracking parameters.
package params

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

func NewParamsCommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params",
		Aliases: []string{"param"},
		Short:   "Read, create, and inject parameters",
	}
	cmd.AddCommand(
		newGetCommand(opts),
		newCreateCommand(opts),
		newInjectCommand(opts),
		newDeleteCommand(opts),
		newListInputsCommand(opts),
		newListLive2DCommand(opts),
	)
	return cmd
}

func newGetCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Get the value of a parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.ParameterValue(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newCreateCommand(opts *internal.Options) *cobra.Command {
	req := protocol.ParameterCreationRequest{Min: 0, Max: 100, DefaultValue: 0}

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a custom parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ParameterName = args[0]

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.CreateParameter(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().Float64Var(&req.Min, "min", req.Min, "Minimum value")
	cmd.Flags().Float64Var(&req.Max, "max", req.Max, "Maximum value")
	cmd.Flags().Float64Var(&req.DefaultValue, "default", req.DefaultValue, "Default value")
	cmd.Flags().StringVar(&req.Explanation, "explanation", "", "Short description shown in the app")
	return cmd
}

func newInjectCommand(opts *internal.Options) *cobra.Command {
	var (
		weight    float64
		add       bool
		faceFound bool
	)

	cmd := &cobra.Command{
		Use:   "inject <id> <value>",
		Short: "Temporarily set the value of a parameter",
		Long: "Temporarily set the value of a parameter.\n\n" +
			"The app resets the value if it has not been refreshed for about a second.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}

			mode := protocol.InjectModeSet
			if add {
				mode = protocol.InjectModeAdd
			}

			param := protocol.ParameterValue{ID: args[0], Value: value}
			if cmd.Flags().Changed("weight") {
				param.Weight = &weight
			}

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.InjectParameterData(cmd.Context(), protocol.InjectParameterDataRequest{
				FaceFound:       faceFound,
				Mode:            mode,
				ParameterValues: []protocol.ParameterValue{param},
			})
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 1, "Mix weight between 0 and 1")
	cmd.Flags().BoolVar(&add, "add", false, "Add the value instead of setting it")
	cmd.Flags().BoolVar(&faceFound, "face-found", false, "Report the face as found while injecting")
	return cmd
}

func newDeleteCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a custom parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.DeleteParameter(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newListInputsCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list-inputs",
		Short: "List all input parameters in the current model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.InputParameterList(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newListLive2DCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list-live2d",
		Short: "List all Live2D parameters in the current model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.Live2DParameterList(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}
