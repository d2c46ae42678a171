package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"socialdl/pkg/svd"
	"socialdl/pkg/svd/api"

	"github.com/fatih/color"
	"github.com/lrstanley/go-ytdlp"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:      appName,
		Usage:     "download video, audio, and subtitles from social media URLs",
		ArgsUsage: "[url]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "headless",
				Usage: "run any browser-assisted extraction headless",
			},
			&cli.StringFlag{
				Name:  "download-dir",
				Usage: "directory to save downloads",
				Value: "./downloads",
			},
			&cli.StringFlag{
				Name:  "batch",
				Usage: "file containing URLs (one per line)",
			},
		},
		Action: download,
		Commands: []*cli.Command{{
			Name:   "serve",
			Usage:  "run the background-task HTTP API",
			Action: serve,
		}},
	}
}

func download(c *cli.Context) error {
	url := c.Args().First()
	batchFile := c.String("batch")
	if (url == "") == (batchFile == "") {
		_ = cli.ShowAppHelp(c)
		return cli.Exit(
			"provide exactly one of a URL argument or --batch FILE",
			1,
		)
	}

	urls := []string{url}
	if batchFile != "" {
		var err error
		if urls, err = readURLFile(batchFile); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	ctx := c.Context
	if err := installExtractionTool(ctx); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	batcher := newBatcher(c.String("download-dir"))
	batcher.OnResult = printMarker

	fmt.Printf("Processing %d URLs...\n", len(urls))
	result := batcher.DownloadAll(ctx, urls, svd.AllAssets())
	printSummary(result)
	return nil
}

func serve(c *cli.Context) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		c.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	if config.InstallTool {
		if err := installExtractionTool(ctx); err != nil {
			return err
		}
	}

	store := svd.NewMemoryTaskStore()
	queue := svd.NewQueue(config.QueueSize)
	submitter := &svd.Submitter{Tasks: store, Queue: queue}

	api := &api.API{
		Tasks:  store,
		Submit: submitter,
		Root:   config.DownloadDir,
		Logger: slog.Default().With("component", "API"),
	}

	results := make(chan error)

	for i := range config.Workers {
		logger := slog.Default().With("component", "WORKER", "worker", i)
		batcher := newBatcher(config.DownloadDir)
		worker := &svd.Worker{
			Tasks:      store,
			Queue:      queue,
			Downloader: batcher.Downloader,
			Batcher:    batcher,
			Logger:     logger,
		}
		go func() { results <- worker.Run(ctx) }()
	}
	go func() { results <- api.Run(ctx, config.Addr) }()

	for range config.Workers + 1 {
		if err := <-results; err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

func newBatcher(downloadDir string) *svd.Batcher {
	downloader := &svd.Downloader{
		Extractor: svd.YTDLPExtractor{},
		Root:      downloadDir,
		Logger:    slog.Default().With("component", "DOWNLOADER"),
	}
	return &svd.Batcher{
		Downloader: downloader,
		Logger:     slog.Default().With("component", "BATCHER"),
	}
}

// installExtractionTool makes sure a yt-dlp binary is available,
// downloading one on first run if the host has none.
func installExtractionTool(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("installing extraction tool: %w", err)
	}
	return nil
}

// readURLFile reads newline-separated URLs, skipping blank lines.
func readURLFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls, nil
}

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

func printMarker(result *svd.DownloadResult) {
	if result.Success {
		fmt.Printf("%s Successfully processed: %s\n", okMark, result.URL)
		return
	}
	fmt.Printf("%s Failed to process: %s\n", failMark, result.URL)
}

func printSummary(result *svd.BatchResult) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("DOWNLOAD SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Date: %s\n", result.Date)
	fmt.Printf("Output Directory: %s\n", result.DownloadDir)
	fmt.Printf("Total URLs processed: %d\n", result.TotalURLs)
	fmt.Printf("Total videos found: %d\n", result.TotalVideos)
	fmt.Printf("Successful downloads: %d\n", result.SuccessfulDownloads)
	fmt.Printf("Failed downloads: %d\n", result.FailedDownloads)
	fmt.Println(strings.Repeat("=", 60))
}
