package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/clinitab/uplink/internal/adapter"
	"github.com/clinitab/uplink/internal/config"
	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/internal/service"
	"github.com/clinitab/uplink/internal/store"
	"github.com/clinitab/uplink/internal/workers"
	"github.com/clinitab/uplink/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// taskCatalogue declares the task tables this client build ships.
var taskCatalogue = models.Catalogue{
	TaskTables: []string{"gad7", "phq9"},
}

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("uplink")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, taskCatalogue, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, serverAdapter, taskCatalogue, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = runCommand(ctx, cfg, services, log); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func runCommand(ctx context.Context, cfg *config.ClientConfig, services *service.ClientServices, log *logger.Logger) error {
	args := flag.Args()
	command := "upload"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "register":
		return services.Registration.Register(ctx)

	case "refresh":
		return services.Registration.RefreshServerInfo(ctx)

	case "watch":
		// periodic metadata refresh until interrupted
		job := workers.NewRefreshJob(services.Registration, log)
		job.Start(ctx, cfg.Sync.RefreshInterval)
		<-ctx.Done()
		job.Stop()
		return nil

	case "upload":
		mode := models.UploadCopy
		if len(args) > 1 {
			var err error
			if mode, err = models.ParseUploadMode(args[1]); err != nil {
				return err
			}
		}

		result, err := services.Upload.Upload(ctx, service.UploadContext{
			Mode:     mode,
			Notifier: consoleNotifier{},
		})
		if err != nil {
			return err
		}
		if result.Cancelled {
			return fmt.Errorf("upload cancelled")
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q (expected register, refresh, watch or upload)", command)
	}
}

// consoleNotifier prints engine progress to stdout.
type consoleNotifier struct{}

func (consoleNotifier) ShowWait(message string) {
	fmt.Println(message)
}

func (consoleNotifier) Progress(table string, done, total int) {
	fmt.Printf("[%d/%d] %s\n", done+1, total, table)
}

func (consoleNotifier) ShowMessage(title, message string) {
	fmt.Printf("%s: %s\n", title, message)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
