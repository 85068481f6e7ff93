//go:build !ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rtlife/internal/app"
	"rtlife/internal/term"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// The terminal build is the default; build with -tags ebiten for a window.
func main() {
	cfg, err := app.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Printf("config: %v", err)
		os.Exit(2)
	}

	session, err := app.NewSession(*cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return session.Run(ctx) })
	g.Go(func() error {
		defer cancel()
		return term.New(screen, session, cfg.TPS).Run(ctx)
	})
	err = g.Wait()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	fmt.Printf("stopped after %d generations\n", session.Generation())
}
