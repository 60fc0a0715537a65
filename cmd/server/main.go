package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/hirestack/go-interview-server/internal/config"
	"github.com/hirestack/go-interview-server/reports"
	"github.com/hirestack/go-interview-server/rooms"
	"github.com/hirestack/go-interview-server/server"
	"github.com/hirestack/go-interview-server/uploads"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler, err := buildServer(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: handler}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func buildServer(ctx context.Context, c config.Config) (http.Handler, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	uploadRepo := uploads.NewInMemoryRepo()
	pipeline := uploads.NewPipeline(uploadRepo, uploads.DefaultProcessor(), logger)
	pipeline.Start(ctx)

	deps := server.Deps{
		UploadRepo: uploadRepo,
		Pipeline:   pipeline,
	}
	if reportsBase := c.GetReportsAPIBase(); reportsBase != "" {
		deps.ReportSource = reports.NewHTTPSource(reportsBase, c.GetReportsAPIKey())
	}
	if roomsBase := c.GetRoomsAPIBase(); roomsBase != "" {
		deps.Rooms = rooms.NewClient(roomsBase, c.GetRoomsAPIKey())
	}

	return server.New(c, deps)
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
