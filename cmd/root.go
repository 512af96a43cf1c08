package cmd

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/streambinder/yturl/provider"
	"github.com/streambinder/yturl/util"
)

const version = "1.0.0"

func cmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "yturl <query>",
		Short:        "Search YouTube and print the URL of the top result",
		Version:      version,
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one search query must be issued")
			}
			if strings.TrimSpace(args[0]) == "" {
				return errors.New("search query cannot be empty")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(args[0])
			if util.ErrWrap(false)(cmd.Flags().GetBool("verbose")) {
				cmd.PrintErrln("Searching for:", query)
			}

			result, err := provider.Search(query)
			if err != nil {
				return err
			}

			if util.ErrWrap(false)(cmd.Flags().GetBool("copy")) {
				if err := clipboard.WriteAll(result.URL()); err != nil {
					return err
				}
			}

			cmd.Println(result.URL())
			return nil
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Print search progress on standard error")
	cmd.Flags().BoolP("copy", "c", false, "Copy the result URL to the system clipboard, too")
	return cmd
}

func Execute() error {
	return cmdRoot().Execute()
}
