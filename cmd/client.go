package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/j0taaa/tp1-CD/logger"
	"github.com/j0taaa/tp1-CD/node"
)

var (
	clientID       int32
	clientAddress  string
	clientPort     string
	printerAddr    string
	peerAddrs      []string
	jobIntervalMin time.Duration
	jobIntervalMax time.Duration
	autoJobs       bool
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Start a client node",
	Long: `Start one client of the distributed printing system. The client answers
access requests from its peers and generates print jobs, acquiring
exclusive printer access before each one.

Examples:
  # Start client 1 alone
  tp1cd client --id=1 --port=50052

  # Start client 2 with a peer
  tp1cd client --id=2 --port=50053 --peers=127.0.0.1:50052

  # Manual mode, no automatic jobs
  tp1cd client --id=1 --port=50052 --auto=false`,
	Run: runClient,
}

func init() {
	rootCmd.AddCommand(clientCmd)

	clientCmd.Flags().Int32VarP(&clientID, "id", "i", 1, "Unique client identifier (positive integer)")
	clientCmd.Flags().StringVarP(&clientAddress, "address", "a", node.DefaultAddress, "Address to bind the server to")
	clientCmd.Flags().StringVarP(&clientPort, "port", "p", node.DefaultPort, "Port to bind the server to")
	clientCmd.Flags().StringVar(&printerAddr, "printer", node.DefaultPrinterAddr, "Printer server address")
	clientCmd.Flags().StringSliceVar(&peerAddrs, "peers", []string{}, "Peer client addresses (comma-separated)")
	clientCmd.Flags().DurationVar(&jobIntervalMin, "job-interval-min", 5*time.Second, "Minimum delay between automatic jobs")
	clientCmd.Flags().DurationVar(&jobIntervalMax, "job-interval-max", 10*time.Second, "Maximum delay between automatic jobs")
	clientCmd.Flags().BoolVar(&autoJobs, "auto", true, "Generate print jobs automatically")
}

func runClient(cmd *cobra.Command, args []string) {
	logger.Init(true)

	config := node.DefaultConfig(clientID)
	config.Address = clientAddress
	config.Port = clientPort
	config.PrinterAddr = printerAddr
	config.Peers = peerAddrs
	config.JobIntervalMin = jobIntervalMin
	config.JobIntervalMax = jobIntervalMax
	config.AutoJobs = autoJobs

	n, err := node.New(config)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	if err := n.Start(); err != nil {
		log.Fatalf("failed to start client: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Infof("Shutting down...")
	if err := n.Stop(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
