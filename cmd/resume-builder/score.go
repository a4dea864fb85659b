package main

import (
	"encoding/json"
	"fmt"

	"resume-builder/internal/usecase"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the completion score of a resume JSON file",
	RunE:  runScore,
}

var scoreInput string

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "in", "i", "", "Path to resume JSON file (required)")
	if err := scoreCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	rootCmd.AddCommand(scoreCmd)
}

type scoreReport struct {
	Progress int                       `json:"progress"`
	Sections []usecase.SectionProgress `json:"sections"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	r, err := loadResume(scoreInput)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(scoreReport{Progress: usecase.Score(r), Sections: usecase.Breakdown(r)}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
