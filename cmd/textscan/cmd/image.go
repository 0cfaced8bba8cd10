package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/textscan/internal/config"
	"github.com/MeKo-Tech/textscan/internal/coords"
	"github.com/MeKo-Tech/textscan/internal/preprocess"
	"github.com/MeKo-Tech/textscan/internal/utils"
	"github.com/spf13/cobra"
)

const (
	outputFormatJSON = "json"
	outputFormatText = "text"
)

// imageCmd represents the image command.
var imageCmd = &cobra.Command{
	Use:   "image <file>...",
	Short: "Extract text from image files",
	Long: `Extract printed text from one or more image files.

Supported formats: JPEG, PNG, BMP, TIFF

A region of interest limits extraction to part of the image. When the
selection was made against a scaled rendering, pass --display-size so the
rectangle is mapped back into the source image's pixel space.

Examples:
  textscan image photo.jpg
  textscan image scan.png --mode adaptive-threshold
  textscan image page.jpg --roi 10,20,200,80 --display-size 600x400`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runImage,
}

type imageResult struct {
	File string `json:"file"`
	Text string `json:"text"`
}

func runImage(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("no input files provided")
	}
	cfg := GetConfig()

	mode, threshold, err := modeAndThreshold(cmd, cfg)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format != outputFormatText && format != outputFormatJSON {
		return fmt.Errorf("invalid output format: %s (must be text or json)", format)
	}

	roiFlag, _ := cmd.Flags().GetString("roi")
	displayFlag, _ := cmd.Flags().GetString("display-size")

	p, err := buildPipeline(cmd, cfg)
	if err != nil {
		return err
	}

	results := make([]imageResult, 0, len(args))
	for _, path := range args {
		img, meta, err := utils.LoadImage(path)
		if err != nil {
			return err
		}

		var text string
		if roiFlag != "" {
			roi, err := resolveROI(roiFlag, displayFlag, coords.Size{Width: meta.Width, Height: meta.Height})
			if err != nil {
				return err
			}
			text, err = p.RunROIOCR(img, roi, mode, threshold)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		} else {
			text, err = p.RunFullImageOCR(img, mode, threshold)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		results = append(results, imageResult{File: path, Text: text})
	}

	return writeImageResults(cmd, results, format)
}

func writeImageResults(cmd *cobra.Command, results []imageResult, format string) error {
	out := cmd.OutOrStdout()
	if format == outputFormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, r := range results {
		if len(results) > 1 {
			_, _ = fmt.Fprintf(out, "== %s ==\n", r.File)
		}
		if r.Text == "" {
			_, _ = fmt.Fprintln(out, "(no text detected)")
		} else {
			_, _ = fmt.Fprintln(out, r.Text)
		}
	}
	return nil
}

// resolveROI parses the ROI flag and, when a display size is given, maps the
// rectangle from display space into source space.
func resolveROI(roiFlag, displayFlag string, source coords.Size) (coords.Rectangle, error) {
	rect, err := parseRect(roiFlag)
	if err != nil {
		return coords.Rectangle{}, err
	}
	if displayFlag == "" {
		return rect, nil
	}
	display, err := parseSize(displayFlag)
	if err != nil {
		return coords.Rectangle{}, err
	}
	return coords.ToSourceSpace(rect, display, source)
}

func parseRect(s string) (coords.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return coords.Rectangle{}, fmt.Errorf("invalid ROI %q: expected x,y,width,height", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return coords.Rectangle{}, fmt.Errorf("invalid ROI %q: %w", s, err)
		}
		vals[i] = v
	}
	return coords.Rectangle{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

func parseSize(s string) (coords.Size, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return coords.Size{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil {
		return coords.Size{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", s)
	}
	return coords.Size{Width: w, Height: h}, nil
}

// modeAndThreshold resolves the preprocessing mode and threshold from flags,
// falling back to the configured defaults.
func modeAndThreshold(cmd *cobra.Command, cfg *config.Config) (preprocess.Mode, int, error) {
	modeFlag, _ := cmd.Flags().GetString("mode")
	threshold := cfg.OCR.DefaultThreshold
	if cmd.Flags().Changed("threshold") {
		threshold, _ = cmd.Flags().GetInt("threshold")
	}

	var mode preprocess.Mode
	var err error
	if modeFlag != "" {
		mode, err = preprocess.ParseMode(modeFlag)
	} else {
		mode, err = cfg.Mode()
	}
	if err != nil {
		return 0, 0, err
	}
	if threshold < 0 || threshold > 255 {
		return 0, 0, fmt.Errorf("invalid threshold: %d (must be between 0 and 255)", threshold)
	}
	return mode, threshold, nil
}

func init() {
	rootCmd.AddCommand(imageCmd)

	imageCmd.Flags().String("mode", "", "preprocessing mode (grayscale, threshold, adaptive-threshold, morphological)")
	imageCmd.Flags().Int("threshold", 127, "binary threshold value (0-255)")
	imageCmd.Flags().String("roi", "", "region of interest as x,y,width,height")
	imageCmd.Flags().String("display-size", "", "display size WIDTHxHEIGHT the ROI was drawn against")
	imageCmd.Flags().StringP("format", "f", outputFormatText, "output format (text, json)")
	imageCmd.Flags().String("lang", "", "recognition language code (default from config)")
	imageCmd.Flags().Int("psm", -1, "page segmentation mode (0-13, default from config)")
}
