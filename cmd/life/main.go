//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"rtlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return session.Run(ctx) })

	n := session.Size()
	ebiten.SetWindowTitle("rtlife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(n*cfg.Scale+app.HUDWidth, n*cfg.Scale)

	runErr := ebiten.RunGame(app.New(session))
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
