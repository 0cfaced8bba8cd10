package cmd

import (
	"github.com/MeKo-Tech/textscan/internal/config"
	"github.com/MeKo-Tech/textscan/internal/pipeline"
	"github.com/spf13/cobra"
)

// buildPipeline assembles the OCR pipeline from the effective configuration,
// with per-command flag overrides for the engine parameters.
func buildPipeline(cmd *cobra.Command, cfg *config.Config) (*pipeline.Pipeline, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}

	b := pipeline.NewBuilder().
		WithPreprocessConfig(cfg.PreprocessConfig()).
		WithDefaults(mode, cfg.OCR.DefaultThreshold).
		WithLanguage(cfg.Tesseract.Lang).
		WithPageSegMode(cfg.Tesseract.PSM).
		WithEngineMode(cfg.Tesseract.OEM).
		WithTessdataPrefix(cfg.Tesseract.TessdataPrefix)

	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		b = b.WithLanguage(lang)
	}
	if cmd.Flags().Changed("psm") {
		psm, _ := cmd.Flags().GetInt("psm")
		b = b.WithPageSegMode(psm)
	}
	return b.Build()
}
