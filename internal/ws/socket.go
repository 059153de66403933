package ws

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"

	"github.com/fweiss/armclash/internal/game"
	"github.com/fweiss/armclash/internal/hw/sim"
)

// Server streams the machine to connected panel pages and feeds their
// virtual button presses into the simulated inputs. It is a development
// surface: with real hardware attached there is nothing to mount.
type Server struct {
	ctrl   *game.Controller
	inputs *sim.Inputs
	strip  *sim.Strip
	rate   time.Duration
}

func New(ctrl *game.Controller, inputs *sim.Inputs, strip *sim.Strip, rate time.Duration) *Server {
	return &Server{ctrl: ctrl, inputs: inputs, strip: strip, rate: rate}
}

type buttonPayload struct {
	Button string `json:"button"` // "start" | "p1" | "p2"
}

// Mount attaches the Socket.IO server to the Gin engine and starts the
// broadcast loop. The loop stops when ctx ends.
func (srv *Server) Mount(ctx context.Context, r *gin.Engine) *socketio.Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(s socketio.Conn) error {
		s.Join("panel")
		log.Info().Str("sid", s.ID()).Msg("panel connected")
		s.Emit("panel:hello", map[string]any{"pixels": srv.strip.PixelCount()})
		return nil
	})

	io.OnEvent("/", "input:down", func(s socketio.Conn, p buttonPayload) {
		srv.setButton(p.Button, true)
	})

	io.OnEvent("/", "input:up", func(s socketio.Conn, p buttonPayload) {
		srv.setButton(p.Button, false)
	})

	io.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Info().Str("sid", s.ID()).Str("reason", reason).Msg("panel disconnected")
	})

	go io.Serve()
	go srv.broadcast(ctx, io)

	r.GET("/socket.io/*any", gin.WrapH(io))
	r.POST("/socket.io/*any", gin.WrapH(io))
	r.OPTIONS("/socket.io/*any", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
	})

	return io
}

func (srv *Server) setButton(name string, down bool) {
	switch name {
	case "start":
		srv.inputs.SetStart(down)
	case "p1":
		srv.inputs.SetPlayer1(down)
	case "p2":
		srv.inputs.SetPlayer2(down)
	}
}

// broadcast pushes a snapshot plus the committed strip frame to every
// panel at the configured rate.
func (srv *Server) broadcast(ctx context.Context, io *socketio.Server) {
	t := time.NewTicker(srv.rate)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			frame := srv.strip.Frame()
			hexes := make([]string, len(frame))
			for i, c := range frame {
				hexes[i] = fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
			}
			io.BroadcastToRoom("/", "panel", "panel:tick", map[string]any{
				"machine": srv.ctrl.Snapshot(now),
				"frame":   hexes,
			})
		}
	}
}
