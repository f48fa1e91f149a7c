/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2023 Philip Eklöf
 */

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/phiekl/unraw/pkg/textio"
	"github.com/phiekl/unraw/pkg/unraw"

	"github.com/spf13/cobra"
)

const allowOctalsEnv = "UNRAW_ALLOW_OCTALS"

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP(
		"allow-octals",
		"O",
		false,
		"decode legacy octal escapes such as \\101 instead of rejecting them (env: "+allowOctalsEnv+")",
	)

	cmd.Flags().BoolP(
		"json",
		"J",
		false,
		"use JSON output formatting",
	)
}

// allowOctals reads --allow-octals, falling back to the environment when the
// flag was not given.
func allowOctals(cmd *cobra.Command) (bool, error) {
	allow, err := cmd.Flags().GetBool("allow-octals")
	if err != nil {
		return false, err
	}
	if cmd.Flags().Changed("allow-octals") {
		return allow, nil
	}
	env := os.Getenv(allowOctalsEnv)
	if env == "" {
		return allow, nil
	}
	allow, err = strconv.ParseBool(env)
	if err != nil {
		return false, fmt.Errorf("Invalid %s value %q: %v", allowOctalsEnv, env, err)
	}
	return allow, nil
}

type rawInputs struct {
	texts     []string
	fromStdin bool
}

// readInputs returns the arguments, or all of stdin when there are none.
func readInputs(cmd *cobra.Command, args []string) (*rawInputs, error) {
	if len(args) > 0 {
		return &rawInputs{texts: args}, nil
	}
	enc, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return nil, err
	}
	text, err := textio.ReadAll(cmd.InOrStdin(), enc)
	if err != nil {
		return nil, err
	}
	return &rawInputs{texts: []string{text}, fromStdin: true}, nil
}

func (in *rawInputs) wrapError(i int, err error) error {
	where := "stdin"
	if !in.fromStdin {
		where = fmt.Sprintf("argument %d", i+1)
	}
	var se *unraw.SyntaxError
	if errors.As(err, &se) {
		return fmt.Errorf("%s, offset %d: %w", where, se.Offset, err)
	}
	return fmt.Errorf("%s: %w", where, err)
}

type errorResult struct {
	Kind    string
	Message string
	Offset  int
}

func newErrorResult(err error) *errorResult {
	res := &errorResult{Message: err.Error()}
	var se *unraw.SyntaxError
	if errors.As(err, &se) {
		res.Kind = se.Kind.Name()
		res.Offset = se.Offset
	}
	return res
}

// writeOutput writes s to stdout in the configured encoding.
func writeOutput(cmd *cobra.Command, s string) error {
	enc, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return err
	}
	w, err := textio.NewWriter(cmd.OutOrStdout(), enc)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	return w.Close()
}
