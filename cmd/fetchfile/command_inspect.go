package main

import (
	"github.com/picatz/fetchfile"
	"github.com/spf13/cobra"
)

func newInspectCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Print a saved file as JSON or structured text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			formatFlag, _ := cmd.Flags().GetString("format")
			format, err := a.cfg.format(formatFlag, path)
			if err != nil {
				return err
			}

			outputFlag, _ := cmd.Flags().GetString("output")
			output, err := fetchfile.ParseFormat(outputFlag)
			if err != nil {
				return err
			}

			codec, err := fetchfile.CodecFor[any](format)
			if err != nil {
				return err
			}

			doc, err := fetchfile.Read(path, codec, a.options()...)
			if err != nil {
				return err
			}

			if query, _ := cmd.Flags().GetString("query"); query != "" {
				return printQuery(cmd.OutOrStdout(), doc, query)
			}
			return printDocument(cmd.OutOrStdout(), doc, output, a.cfg.Style)
		},
	}

	cmd.Flags().StringP("format", "f", "", "Format of the file (binary, text or json)")
	cmd.Flags().StringP("output", "o", "json", "Output format (text or json)")
	cmd.Flags().StringP("query", "q", "", "Only print the value at this path, e.g. servers.0.host")

	return cmd
}
