package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/config"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume JSON file",
	Long: `Render a resume to its layout document (JSON), to HTML when --out ends
in .html, or to PDF with --pdf.`,
	RunE: runRender,
}

var (
	renderInput    string
	renderOutput   string
	renderPDF      bool
	renderTemplate string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output path (default stdout, or <Name>_Resume.pdf with --pdf)")
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "Print to PDF with headless Chrome")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template override")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	rootCmd.AddCommand(renderCmd)
}

// loadResume reads a resume file and applies the same checks as the API.
func loadResume(path string) (model.ResumeData, error) {
	var r model.ResumeData
	raw, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := model.ValidateJSON(raw); err != nil {
		return r, err
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return r, fmt.Errorf("failed to decode resume: %w", err)
	}
	if err := model.ValidateIDs(r); err != nil {
		return r, err
	}
	return r, nil
}

func runRender(cmd *cobra.Command, _ []string) error {
	r, err := loadResume(renderInput)
	if err != nil {
		return err
	}
	if renderTemplate != "" {
		r.Template = model.Template(renderTemplate)
	}

	if renderPDF {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return renderToPDF(ctx, r)
	}

	doc := render.Render(r)
	var out []byte
	if strings.EqualFold(filepath.Ext(renderOutput), ".html") {
		html, err := render.RenderHTML(doc)
		if err != nil {
			return err
		}
		out = []byte(html)
	} else {
		out, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		out = append(out, '\n')
	}
	return writeOutput(cmd.OutOrStdout(), renderOutput, out)
}

func renderToPDF(ctx context.Context, r model.ResumeData) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log := newLogger(cfg, false)

	exporter := usecase.NewExporter(infra.NewChromedpRenderer(cfg.ChromePath), nil, cfg.RenderAttempts, log)
	art, err := exporter.Export(ctx, r)
	if err != nil {
		return err
	}
	path := renderOutput
	if path == "" {
		path = art.FileName
	}
	if err := os.WriteFile(path, art.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	log.Info("pdf written", "path", path, "pages", art.Pages, "bytes", len(art.PDF))
	return nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
