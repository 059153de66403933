package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"

	"github.com/fweiss/armclash/internal/config"
	"github.com/fweiss/armclash/internal/game"
	"github.com/fweiss/armclash/internal/hw/sim"
	"github.com/fweiss/armclash/internal/ws"
	staticserver "github.com/fweiss/armclash/static"
)

const version = "v1.0.0"

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		portFlag    = flag.String("port", "", "Port to listen on (overrides PORT env var)")
	)
	flag.BoolVar(showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showHelp {
		fmt.Printf(`armclash - arm-wrestling machine control core (simulator build)

Usage: %s [options]

Options:
  -h, --help      Show this help message
  -v, --version   Show version information
  --port PORT     Port to listen on (default: 8080 or PORT env var)

Environment Variables:
  PORT            Port to listen on (default: 8080)
  POLL_INTERVAL   Control loop poll interval (default: 5ms)
  PIXEL_COUNT     Simulated LED strip length (default: 30)
  PANEL_RATE      Panel broadcast interval (default: 50ms)
  RAND_SEED       Seed for effects/jitter randomness (default: clock)

Visit http://localhost:8080 after starting for the browser panel.
`, os.Args[0])
		return
	}

	if *showVersion {
		fmt.Printf("armclash %s\n", version)
		return
	}

	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)

	cfg := config.FromEnv()
	port := *portFlag
	if port == "" {
		port = cfg.Port
	}

	// Gin setup with custom logger (skip /socket.io noise)
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/socket.io") {
			return
		}
		status := c.Writer.Status()
		dur := time.Since(start)
		zerologlog.Info().Str("path", path).Int("status", status).Dur("dur", dur).Msg("http")
	})

	// Healthcheck
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	// Simulated peripherals; real GPIO/serial bindings live out of tree
	// and plug into the same interfaces.
	strip := sim.NewStrip(cfg.PixelCount)
	actuator := sim.NewActuator(game.ArmCenter)
	audio := sim.NewAudio()
	inputs := sim.NewInputs()

	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctrl := game.New(game.Deps{
		Strip:    strip,
		Actuator: actuator,
		Audio:    audio,
		Inputs:   inputs,
		Rand:     rng,
		Log:      zerologlog.Logger,
	}, time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx, cfg.PollInterval)

	sock := ws.New(ctrl, inputs, strip, cfg.PanelRate)
	io := sock.Mount(ctx, r)
	defer io.Close()

	// Snapshot API for scripts and checks.
	r.GET("/api/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, ctrl.Snapshot(time.Now()))
	})

	// Serve the embedded panel for everything else.
	r.NoRoute(func(c *gin.Context) {
		staticserver.Handler().ServeHTTP(c.Writer, c.Request)
	})

	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
