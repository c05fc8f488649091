// Command knightpath finds knight routes across weighted boards.
//
// One-shot mode reads a board (file or stdin), searches from -start to -end
// and prints the route and its cost:
//
//	knightpath -board maze.txt -start 0,0 -end 7,7 -strategy shortest -show
//
// With -serve (or KNIGHTPATH_ADDR / PORT) it runs the HTTP API instead.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/internal/config"
	"github.com/katalvlaran/knightpath/internal/httpapi"
	"github.com/katalvlaran/knightpath/render"
	"github.com/katalvlaran/knightpath/route"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := cfg.NewLogger(os.Stderr)

	if cfg.Serving() {
		logger.WithField("addr", cfg.Addr).Info("serving knightpath API")
		logger.Fatalln(http.ListenAndServe(cfg.Addr, httpapi.NewServer(logger)))
	}

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.WithError(err).Error("search failed")
		if errors.Is(err, route.ErrNoPath) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func run(cfg config.Config, logger log.FieldLogger, stdin io.Reader, stdout io.Writer) error {
	provider := board.FileProvider(cfg.BoardPath)
	if cfg.BoardPath == "-" {
		provider = board.ReaderProvider(stdin)
	}
	g, err := board.Load(provider)
	if err != nil {
		return err
	}

	res, err := route.Find(g, cfg.Start, cfg.End, cfg.Strategy,
		route.WithLogger(logger),
		route.WithSight(cfg.Sight),
	)
	if err != nil {
		return err
	}
	// Frames are drawn only for an accepted route.
	if cfg.Show {
		if err := render.NewText(stdout, g, cfg.Start, cfg.End).Route(res.Sequence); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(stdout, "route %v cost %d (%s, explored %d)\n",
		res.Sequence, res.Cost, res.Strategy, res.Explored)

	return err
}
