package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-filecms/internal/credentials"
)

func (c *cli) newHashPasswordCmd() *cobra.Command {
	var (
		cost     int
		username string
	)
	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for the credential file",
		Long: `Hash a password with bcrypt. The password is read from the first argument
or, when absent, from the first line of standard input. With --username the
output is a ready to paste credential file entry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			hash, err := credentials.HashPassword(password, cost)
			if err != nil {
				return err
			}
			if username != "" {
				fmt.Fprintln(cmd.OutOrStdout(), credentials.Entry(username, hash))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().IntVarP(&cost, "cost", "c", 0, "bcrypt cost (0 uses the library default)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "emit a 'username: hash' entry")
	return cmd
}

func readPassword(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
