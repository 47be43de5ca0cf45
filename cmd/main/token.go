package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"halocat-queries/internal/app/utils"
)

func newTokenCmd() *cobra.Command {
	var (
		publisher string
		readOnly  bool
		ttl       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the publish endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ttl") {
				ttl = cfg.JWTAccessExpire
			}
			token, expiresAt, err := utils.GenerateAccessToken(publisher, !readOnly, cfg.JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&publisher, "publisher", "halocat", "publisher name stored in the token")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "mint a token without publish rights")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
