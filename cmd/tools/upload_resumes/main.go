// Command upload_resumes submits a batch of resume files to the portal and
// polls the upload until it reaches a terminal state.
//
// Usage: upload_resumes [-job jobID] file.pdf [file.pdf ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hirestack/go-interview-server/internal/config"
	"github.com/hirestack/go-interview-server/uploads"
)

func main() {
	jobID := flag.String("job", "", "job ID to attach the candidates to")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("no files provided")
	}

	c := config.New()

	files := make([]uploads.File, 0, flag.NArg())
	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("failed to open %s: %v", path, err)
		}
		defer f.Close()
		files = append(files, uploads.File{Filename: filepath.Base(path), Content: f})
	}

	client := uploads.NewClient(c.GetAPIBaseURL(), uploads.WithTokenSource(func() string {
		return os.Getenv(c.GetAccessTokenStorageKey())
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	batch, err := client.Submit(ctx, files, *jobID)
	if err != nil {
		log.Fatalf("submit failed: %v", err)
	}
	log.Printf("submitted upload %s (%d files)", batch.UploadID, len(batch.Items))

	final, err := client.PollUntilTerminal(ctx, batch.UploadID, uploads.PollOptions{
		Interval: c.GetUploadPollInterval(),
		Timeout:  c.GetUploadPollTimeout(),
	})
	if err != nil {
		log.Fatalf("polling failed: %v", err)
	}

	log.Printf("upload %s finished with status %s", final.UploadID, final.Status)
	for _, item := range final.Items {
		if item.Status == uploads.StatusCompleted {
			fmt.Printf("  %-30s candidate %s\n", item.Filename, item.CandidateID)
		} else {
			fmt.Printf("  %-30s %s: %s\n", item.Filename, item.ErrorCode, item.ErrorMessage)
		}
	}
}
