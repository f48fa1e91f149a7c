/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2023 Philip Eklöf
 */

package cmd

import (
	"io"
	"log"
	"strings"

	"github.com/phiekl/unraw/pkg/textio"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Short:             "Convert raw escape sequences to the characters they denote.",
	Use:               "unraw",
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().BoolP(
		"verbose",
		"v",
		false,
		"log every input and result to stderr",
	)

	rootCmd.PersistentFlags().StringP(
		"encoding",
		"E",
		textio.Default,
		"text encoding of stdin and stdout ("+strings.Join(textio.Names(), ", ")+")",
	)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	if verbose {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}
	return nil
}

// Execute runs the argument parsing and the rest of the configured program.
func Execute() error {
	return rootCmd.Execute()
}
