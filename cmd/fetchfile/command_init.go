package main

import (
	"errors"
	"fmt"

	"github.com/picatz/fetchfile"
	"github.com/spf13/cobra"
)

func newInitCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Create an empty document unless a readable one already exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			formatFlag, _ := cmd.Flags().GetString("format")
			format, err := a.cfg.format(formatFlag, path)
			if err != nil {
				return err
			}

			anyCodec, err := fetchfile.CodecFor[any](format)
			if err != nil {
				return err
			}

			_, err = fetchfile.Read(path, anyCodec, a.options()...)
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleNote.Render("exists"), stylePath.Render(path))
				return nil
			}
			if force, _ := cmd.Flags().GetBool("force"); errors.Is(err, fetchfile.ErrDecode) && !force {
				return fmt.Errorf("%s cannot be decoded as %s, use --force to replace it: %w", path, format, err)
			}

			codec, err := fetchfile.CodecFor[document](format)
			if err != nil {
				return err
			}

			_, created, err := fetchfile.FetchOrInitWith(path, codec, a.options()...)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					styleStatusOK.Render("created"), stylePath.Render(path), styleNote.Render("("+format.String()+")"))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleNote.Render("exists"), stylePath.Render(path))
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "", "Format of the file (binary, text or json)")
	cmd.Flags().Bool("force", false, "Replace a file that cannot be decoded")

	return cmd
}
