package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MeKo-Tech/textscan/internal/pipeline"
	"github.com/MeKo-Tech/textscan/internal/recognize"
	"github.com/MeKo-Tech/textscan/internal/utils"
	"github.com/spf13/cobra"
)

// detectCmd represents the detect command.
var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Detect text blocks and optionally write an overlay image",
	Long: `Detect text blocks in an image and list their bounding boxes with
confidence scores. With --overlay-out, a copy of the image with the boxes
drawn on it is written as well.

Box coordinates are expressed in the source image's pixel space.

Examples:
  textscan detect page.jpg
  textscan detect page.jpg --format json
  textscan detect page.jpg --overlay-out page_boxes.png`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runDetect,
}

type detectResult struct {
	File       string                `json:"file"`
	Width      int                   `json:"width"`
	Height     int                   `json:"height"`
	Detections []recognize.Detection `json:"detections"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("no input file provided")
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

	p, err := buildPipeline(cmd, cfg)
	if err != nil {
		return err
	}

	path := args[0]
	img, meta, err := utils.LoadImage(path)
	if err != nil {
		return err
	}

	res, err := p.RunOverlayDetection(img, mode, threshold)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if overlayOut, _ := cmd.Flags().GetString("overlay-out"); overlayOut != "" {
		boxColor, err := cfg.BoxColor()
		if err != nil {
			return err
		}
		overlay := pipeline.RenderOverlay(res.Image, res.Detections, boxColor, cfg.Display.BoxThickness)
		if err := utils.SaveImage(overlay, overlayOut); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if format == outputFormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(detectResult{
			File:       path,
			Width:      meta.Width,
			Height:     meta.Height,
			Detections: res.Detections,
		})
	}

	if len(res.Detections) == 0 {
		_, _ = fmt.Fprintln(out, "no text blocks detected")
		return nil
	}
	for _, d := range res.Detections {
		_, _ = fmt.Fprintf(out, "[%3d%%] (%d,%d) %dx%d  %s\n",
			d.Confidence, d.X, d.Y, d.Width, d.Height, d.Text)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().String("mode", "", "preprocessing mode (grayscale, threshold, adaptive-threshold, morphological)")
	detectCmd.Flags().Int("threshold", 127, "binary threshold value (0-255)")
	detectCmd.Flags().StringP("format", "f", outputFormatText, "output format (text, json)")
	detectCmd.Flags().String("overlay-out", "", "write an overlay image with detection boxes to this path")
	detectCmd.Flags().String("lang", "", "recognition language code (default from config)")
	detectCmd.Flags().Int("psm", -1, "page segmentation mode (0-13, default from config)")
}
