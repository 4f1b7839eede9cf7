//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/23skdu/longbow-sinew/internal/client"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Pushes a canary benchmark record at a running Longbow server and checks
// the upload is accepted. Usage: go run scripts/verify_push.go [addr]
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	addr := "localhost:3000"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	log.Info().Str("addr", addr).Msg("Connecting to Longbow Flight endpoint")

	// Retry connection loop
	var p *client.Pusher
	var err error

	for i := 0; i < 10; i++ {
		p, err = client.NewPusher(addr)
		if err == nil {
			break
		}
		log.Warn().Err(err).Msg("Connection failed, retrying...")
		time.Sleep(1 * time.Second)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect after retries")
	}
	defer p.Close()

	samples := []client.Sample{{
		Routine:   "canary",
		Backend:   "none",
		Device:    "cpu:0",
		N:         1,
		Iters:     1,
		ElapsedNS: int64(time.Millisecond),
		MFlops:    0,
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Info().Int("count", len(samples)).Msg("Pushing canary record")

	start := time.Now()
	if err := p.PushSamples(ctx, "sinew_canary", samples); err != nil {
		log.Fatal().Err(err).Msg("Push failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("Push accepted")

	fmt.Println("VERIFICATION PASSED")
}
