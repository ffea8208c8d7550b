package main

import (
	"fmt"

	"github.com/picatz/fetchfile"
	"github.com/spf13/cobra"
)

func newConvertCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Re-encode a saved file in another format",
		Long: "Re-encode a saved file in another format.\n\n" +
			"The source must decode cleanly; nothing is written otherwise. " +
			"src and dst may be the same file.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]

			fromFlag, _ := cmd.Flags().GetString("from")
			from, err := a.cfg.format(fromFlag, src)
			if err != nil {
				return err
			}

			toFlag, _ := cmd.Flags().GetString("to")
			to, err := a.cfg.format(toFlag, dst)
			if err != nil {
				return err
			}

			fromCodec, err := fetchfile.CodecFor[any](from)
			if err != nil {
				return err
			}
			toCodec, err := fetchfile.CodecFor[any](to)
			if err != nil {
				return err
			}

			if err := fetchfile.Convert(src, fromCodec, dst, toCodec, a.options()...); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
				stylePath.Render(src), styleNote.Render("("+from.String()+")"),
				styleNote.Render("->"),
				stylePath.Render(dst), styleNote.Render("("+to.String()+")"),
			)
			return nil
		},
	}

	cmd.Flags().String("from", "", "Format of the source file (binary, text or json)")
	cmd.Flags().String("to", "", "Format of the destination file (binary, text or json)")

	return cmd
}
