package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MeKo-Tech/textscan/internal/camera"
	"github.com/spf13/cobra"
)

// cameraCmd represents the camera command.
var cameraCmd = &cobra.Command{
	Use:   "camera",
	Short: "Scan text from a live frame feed",
	Long: `Run the live capture loop: a frame producer pushes frames at the
configured rate, and text is extracted on demand from the most recent frame.

Real camera hardware is out of scope; frames come from a synthetic source
that renders printed text, exercising the same producer/consumer path a
device-backed source would use.

Examples:
  textscan camera
  textscan camera --frames 10 --mode threshold`,
	SilenceUsage: true,
	RunE:         runCamera,
}

func runCamera(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	mode, threshold, err := modeAndThreshold(cmd, cfg)
	if err != nil {
		return err
	}
	scans, _ := cmd.Flags().GetInt("frames")
	if scans < 1 {
		return fmt.Errorf("invalid frame count: %d (must be positive)", scans)
	}

	p, err := buildPipeline(cmd, cfg)
	if err != nil {
		return err
	}

	capture, err := camera.NewCapture(camera.NewSyntheticSource(), cfg.CameraOptions())
	if err != nil {
		return err
	}
	defer capture.Release()

	producer := camera.NewProducer(capture)
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := producer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("frame producer stopped", "error", err)
		}
	}()

	out := cmd.OutOrStdout()
	for i := 0; i < scans; i++ {
		frame, ok := <-producer.Frames()
		if !ok {
			break
		}
		text, err := p.RunFullImageOCR(frame, mode, threshold)
		if err != nil {
			// Recognition failures are recoverable; keep the feed alive.
			slog.Warn("recognition failed", "frame", i, "error", err)
			continue
		}
		if text == "" {
			_, _ = fmt.Fprintf(out, "frame %d: (no text detected)\n", i)
		} else {
			_, _ = fmt.Fprintf(out, "frame %d: %s\n", i, text)
		}
	}

	cancel()
	<-done
	slog.Debug("capture finished", "frames_read", capture.FrameCount())
	return nil
}

func init() {
	rootCmd.AddCommand(cameraCmd)

	cameraCmd.Flags().Int("frames", 5, "number of frames to scan before exiting")
	cameraCmd.Flags().String("mode", "", "preprocessing mode (grayscale, threshold, adaptive-threshold, morphological)")
	cameraCmd.Flags().Int("threshold", 127, "binary threshold value (0-255)")
	cameraCmd.Flags().String("lang", "", "recognition language code (default from config)")
	cameraCmd.Flags().Int("psm", -1, "page segmentation mode (0-13, default from config)")
}
