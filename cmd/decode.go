/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2023 Philip Eklöf
 */

package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/phiekl/unraw/pkg/unraw"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Short: "Decode raw escape sequences in each argument, or in stdin.",
	Long: "Decode raw escape sequences in each argument, or in stdin.\n\n" +
		"Each argument is printed decoded on its own line. Without arguments all of\n" +
		"stdin is decoded as one string and written back without a trailing newline.",
	Use:          "decode [RAW...]",
	RunE:         decodeMain,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	addInputFlags(decodeCmd)
}

type decodeResult struct {
	Input  string
	Output *string      `json:",omitempty"`
	Error  *errorResult `json:",omitempty"`
}

func decodeMain(cmd *cobra.Command, args []string) error {
	octals, err := allowOctals(cmd)
	if err != nil {
		return err
	}
	outputJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	if outputJSON {
		return decodeJSON(cmd, inputs, octals)
	}

	var out strings.Builder
	for i, raw := range inputs.texts {
		log.Printf("> %q\n", raw)
		cooked, err := unraw.DecodeString(raw, octals)
		if err != nil {
			log.Printf("< ERR %s\n", err)
			return inputs.wrapError(i, err)
		}
		log.Printf("< %q\n", cooked)
		out.WriteString(cooked)
		if !inputs.fromStdin {
			out.WriteByte('\n')
		}
	}
	return writeOutput(cmd, out.String())
}

func decodeJSON(cmd *cobra.Command, inputs *rawInputs, octals bool) error {
	results := make([]decodeResult, 0, len(inputs.texts))
	failed := 0
	for _, raw := range inputs.texts {
		log.Printf("> %q\n", raw)
		res := decodeResult{Input: raw}
		cooked, err := unraw.DecodeString(raw, octals)
		if err != nil {
			log.Printf("< ERR %s\n", err)
			res.Error = newErrorResult(err)
			failed++
		} else {
			log.Printf("< %q\n", cooked)
			res.Output = &cooked
		}
		results = append(results, res)
	}

	output, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, string(output)+"\n"); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to decode", failed, len(results))
	}
	return nil
}
