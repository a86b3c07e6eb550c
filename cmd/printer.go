package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/j0taaa/tp1-CD/logger"
	"github.com/j0taaa/tp1-CD/printer"
)

var (
	printerAddress string
	printerPort    string
	printDelayMin  time.Duration
	printDelayMax  time.Duration
)

var printerCmd = &cobra.Command{
	Use:   "printer",
	Short: "Start the printer server",
	Long: `Start the shared printer server. The printer simulates a physical device:
each document takes a random delay to print, and jobs are written to
stdout with their Lamport timestamp.

Examples:
  # Start the printer on the default port
  tp1cd printer

  # Faster printing for demos
  tp1cd printer --port=50051 --delay-min=500ms --delay-max=1s`,
	Run: runPrinter,
}

func init() {
	rootCmd.AddCommand(printerCmd)

	printerCmd.Flags().StringVarP(&printerAddress, "address", "a", printer.DefaultAddress, "Address to bind the server to")
	printerCmd.Flags().StringVarP(&printerPort, "port", "p", printer.DefaultPort, "Port to bind the server to")
	printerCmd.Flags().DurationVar(&printDelayMin, "delay-min", 2*time.Second, "Minimum simulated print duration")
	printerCmd.Flags().DurationVar(&printDelayMax, "delay-max", 3*time.Second, "Maximum simulated print duration")
}

func runPrinter(cmd *cobra.Command, args []string) {
	logger.Init(true)

	config := printer.DefaultConfig()
	config.Address = printerAddress
	config.Port = printerPort
	config.DelayMin = printDelayMin
	config.DelayMax = printDelayMax

	srv, err := printer.New(config, nil)
	if err != nil {
		log.Fatalf("failed to create printer: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("failed to start printer: %v", err)
	}
	logger.Printf("[printer] listening on %s", srv.Addr())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Infof("Shutting down...")
	if err := srv.Stop(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
