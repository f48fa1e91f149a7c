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
	"strconv"
	"strings"

	"github.com/phiekl/unraw/pkg/unraw"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Short: "List the escape sequences found in each argument, or in stdin.",
	Long: "List the escape sequences found in each argument, or in stdin.\n\n" +
		"Each sequence is printed as tab separated columns: input number, offset and\n" +
		"length in UTF-16 code units, kind, raw text and quoted decoded text.",
	Use:          "scan [RAW...]",
	RunE:         scanMain,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	addInputFlags(scanCmd)
}

type scanSequence struct {
	Offset int
	Len    int
	Kind   string
	Raw    string
	Cooked string
}

type scanResult struct {
	Input     string
	Sequences []scanSequence
	Error     *errorResult `json:",omitempty"`
}

func scanInput(raw string, octals bool) (*scanResult, error) {
	res := &scanResult{Input: raw, Sequences: []scanSequence{}}
	units := unraw.StringToUTF16(raw)
	seqs, err := unraw.Sequences(units, octals)
	if err != nil {
		return res, err
	}
	for _, seq := range seqs {
		res.Sequences = append(res.Sequences, scanSequence{
			Offset: seq.Offset,
			Len:    seq.Len,
			Kind:   seq.Kind.String(),
			Raw:    unraw.UTF16ToString(units[seq.Offset : seq.Offset+seq.Len]),
			Cooked: unraw.UTF16ToString(seq.Cooked),
		})
	}
	return res, nil
}

func scanMain(cmd *cobra.Command, args []string) error {
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

	var out strings.Builder
	results := make([]*scanResult, 0, len(inputs.texts))
	failed := 0
	for i, raw := range inputs.texts {
		log.Printf("> %q\n", raw)
		res, err := scanInput(raw, octals)
		if err != nil {
			log.Printf("< ERR %s\n", err)
			if !outputJSON {
				return inputs.wrapError(i, err)
			}
			res.Error = newErrorResult(err)
			failed++
		} else {
			log.Printf("< %d sequences\n", len(res.Sequences))
		}
		results = append(results, res)

		for _, seq := range res.Sequences {
			fmt.Fprintf(&out, "%d\t%d\t%d\t%s\t%s\t%s\n",
				i+1, seq.Offset, seq.Len, seq.Kind, seq.Raw, strconv.Quote(seq.Cooked))
		}
	}

	if outputJSON {
		output, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, string(output)+"\n"); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d inputs failed to scan", failed, len(results))
		}
		return nil
	}

	return writeOutput(cmd, out.String())
}
