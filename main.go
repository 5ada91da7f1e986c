package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"radcurve/internal/app"
	"radcurve/internal/config"
	"radcurve/internal/dose"
	"radcurve/internal/server"
)

var (
	flagDose     float64
	flagRefDist  float64
	flagAtt      float64
	flagOp       float64
	flagDistance float64
	flagMin      float64
	flagMax      float64
	flagPoints   int
	flagListen   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "radcurve",
		Short: "radcurve - terminal dose-vs-distance visualizer for angiography teaching",
		Long: `radcurve estimates ionizing radiation dose rate as a function of distance
from a point source, using the inverse-square law with attenuation and
operational scaling factors.

It is an educational tool for medical-physics students and angiography
staff. It assumes a point source under simplified conditions and is not a
clinical dosimetry instrument.`,
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagDose, "dose", config.DefaultReferenceDose, "Reference dose rate in μSv/h")
	pf.Float64Var(&flagRefDist, "ref-distance", config.DefaultReferenceDist, "Reference distance in meters")
	pf.Float64Var(&flagAtt, "attenuation", config.DefaultAttenuation, "Attenuation factor (shielding)")
	pf.Float64Var(&flagOp, "operational", config.DefaultOperational, "Operational factor (exposure settings)")
	pf.Float64Var(&flagDistance, "distance", config.DefaultDistance, "Evaluation distance in meters")
	pf.Float64Var(&flagMin, "min", config.DefaultCurveMin, "Curve minimum distance in meters")
	pf.Float64Var(&flagMax, "max", config.DefaultCurveMax, "Curve maximum distance in meters")
	pf.IntVar(&flagPoints, "points", config.DefaultPoints, "Number of points on the curve")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Print the sampled curve as a plain text table",
		RunE:  runTable,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dose model as a JSON API",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&flagListen, "listen", ":8080", "Listen address")

	rootCmd.AddCommand(tableCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func flagParams() dose.Parameters {
	return dose.Parameters{
		ReferenceDose: flagDose,
		ReferenceDist: flagRefDist,
		Attenuation:   flagAtt,
		Operational:   flagOp,
	}
}

func flagRange() dose.Range {
	return dose.Range{Min: flagMin, Max: flagMax, Points: flagPoints}
}

func runTUI(cmd *cobra.Command, args []string) error {
	model := app.New(flagParams(), flagRange(), flagDistance)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	_, err := p.Run()
	return err
}

func runTable(cmd *cobra.Command, args []string) error {
	params := flagParams()
	samples, err := dose.SampleCurve(flagRange(), params)
	if err != nil {
		return err
	}

	fmt.Printf("# dose at %.2f m: %.2f μSv/h\n", flagDistance, dose.At(flagDistance, params))
	fmt.Printf("%-12s %s\n", "distance_m", "dose_uSv_h")
	for _, s := range samples {
		fmt.Printf("%-12.4f %.4f\n", s.Distance, s.Dose)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := server.New()

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(flagListen, srv.Routes()) }()
	log.Printf("listening on %s", flagListen)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		time.Sleep(300 * time.Millisecond)
		return nil
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}
