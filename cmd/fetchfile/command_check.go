package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/picatz/fetchfile"
	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Report whether a file would load or fall back to a default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			formatFlag, _ := cmd.Flags().GetString("format")
			format, err := a.cfg.format(formatFlag, path)
			if err != nil {
				return err
			}

			codec, err := fetchfile.CodecFor[any](format)
			if err != nil {
				return err
			}

			_, err = fetchfile.Read(path, codec, a.options()...)
			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					styleStatusOK.Render("ok"), stylePath.Render(path), styleNote.Render("("+format.String()+")"))
				return nil
			case errors.Is(err, os.ErrNotExist):
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					styleStatusProblem.Render("missing"), stylePath.Render(path), styleNote.Render("(default would be used)"))
			case errors.Is(err, fetchfile.ErrDecode):
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					styleStatusProblem.Render("corrupt"), stylePath.Render(path), styleNote.Render("(default would be used)"))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					styleStatusProblem.Render("unreadable"), stylePath.Render(path))
			}
			return err
		},
	}

	cmd.Flags().StringP("format", "f", "", "Format of the file (binary, text or json)")

	return cmd
}
