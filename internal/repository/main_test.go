//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"idea-marketplace-backend/internal/testutils"
)

// TestMain shares one Postgres container across the repository suite and removes it on exit or interrupt
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interrupted
		log.Printf("repository suite got %s: removing the shared Postgres container", sig)
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("repository suite: idea, approval, history and notification stores against Postgres")
	code := m.Run()
	signal.Stop(interrupted)

	log.Printf("repository suite finished with code %d: removing the shared Postgres container", code)
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
