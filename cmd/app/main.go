package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ProjectAEye/internal/config"
	"ProjectAEye/internal/feature/video"
	"ProjectAEye/pkg/log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env", ".env", "path to the environment file")
	mode := pflag.String("mode", "assistant", "run mode: assistant, video or docs")
	docPath := pflag.String("doc", "", "PDF to ingest in docs mode")
	collection := pflag.String("collection", "", "existing collection to query in docs mode")
	outputPDF := pflag.String("pdf", "video_analysis.pdf", "output PDF in video mode")
	interval := pflag.Int("interval", 2, "seconds between frames in video mode")
	pflag.Parse()

	logger := log.NewLogger()
	if err := godotenv.Load(*envFile); err != nil {
		logger.Warnf("Could not load env file %s: %v", *envFile, err)
	}

	cfg := config.New()
	if err := cfg.Validate(config.NewValidator()); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "assistant":
		runAssistant(ctx, logger, cfg)
	case "video":
		runVideo(ctx, logger, cfg, *outputPDF, *interval)
	case "docs":
		runDocs(ctx, logger, cfg, *docPath, *collection)
	default:
		logger.Fatalf("Unknown mode: %s", *mode)
	}
}

func runAssistant(ctx context.Context, logger *logrus.Logger, cfg *config.Config) {
	assistant, err := config.NewAssistant(
		config.WithLogger(logger),
		config.WithConfig(cfg),
		config.WithValidator(config.NewValidator()),
		config.WithVoiceGateway(),
		config.WithCamera(),
		config.WithServo(),
		config.WithGeminiClient(),
		config.WithGroqClient(),
		config.WithAlertSender(),
		config.WithGeolocator(),
		config.WithS3Client(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatalf("Error building assistant: %v", err)
	}
	defer assistant.Close()

	if err := assistant.RegisterFeatures(); err != nil {
		logger.Fatalf("Error registering features: %v", err)
	}

	logger.Info("Assistant started successfully")
	if err := assistant.Run(ctx); err != nil && err != context.Canceled {
		logger.Fatalf("Session ended with error: %v", err)
	}
	logger.Info("Shutting down assistant...")
}

func runVideo(ctx context.Context, logger *logrus.Logger, cfg *config.Config, outputPDF string, interval int) {
	assistant, err := config.NewAssistant(
		config.WithLogger(logger),
		config.WithConfig(cfg),
		config.WithCamera(),
		config.WithGeminiClient(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatalf("Error building assistant: %v", err)
	}
	defer assistant.Close()

	logger.Info("Video analysis started, press Ctrl+C to stop recording")
	path, err := assistant.NewVideoService().Analyze(ctx, video.Options{
		IntervalSeconds: interval,
		FrameDir:        "frames",
		OutputPDF:       outputPDF,
	})
	if err != nil {
		logger.Fatalf("Video analysis failed: %v", err)
	}
	logger.Infof("Narration written to %s", path)
}

func runDocs(ctx context.Context, logger *logrus.Logger, cfg *config.Config, docPath, collection string) {
	assistant, err := config.NewAssistant(
		config.WithLogger(logger),
		config.WithConfig(cfg),
		config.WithGeminiClient(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatalf("Error building assistant: %v", err)
	}
	defer assistant.Close()

	service, repo, err := assistant.NewDocumentService("documents.db")
	if err != nil {
		logger.Fatalf("Error opening document store: %v", err)
	}
	defer repo.Close()

	if docPath != "" {
		collection, err = service.Ingest(ctx, docPath)
		if err != nil {
			logger.Fatalf("Error ingesting document: %v", err)
		}
		logger.Infof("Document ingested into collection %s", collection)
	}
	if collection == "" {
		logger.Fatal("docs mode needs --doc to ingest or --collection to query")
	}

	if err := service.InteractiveQA(ctx, collection, os.Stdin, os.Stdout); err != nil && err != context.Canceled {
		logger.Fatalf("Q&A session ended with error: %v", err)
	}
}
