// Command ibkr-console is a terminal viewer for a live gateway session: it
// connects, subscribes to nothing on its own, and renders whatever events
// the embedded Wrapper receives (errors, ticks, order and account updates)
// in a scrollable, inspectable list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	ibkr "github.com/wvietor/ibkr-go"
	"github.com/wvietor/ibkr-go/callback"
	"github.com/wvietor/ibkr-go/console"
)

var version = "dev"

func main() {
	fs := flag.NewFlagSet("ibkr-console", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "ibkr-console — live event viewer for a gateway session\n\nUsage:\n  ibkr-console [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "path to a TOML config file (host/port/clientId)")
	host := fs.String("host", "", "gateway host (overrides config)")
	port := fs.Int("port", 0, "gateway port (overrides config)")
	clientID := fs.Int("client-id", -1, "API client id (overrides config)")
	showVersion := fs.Bool("version", false, "show version and exit")

	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("ibkr-console %s\n", version)
		return
	}

	if err := run(*configPath, *host, *port, *clientID); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, host string, port, clientID int) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := ibkr.DefaultConfig()
	if configPath != "" {
		loaded, err := ibkr.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configPath, err)
		}
		cfg = loaded
	}
	if host != "" {
		cfg.Host = host
	}
	if port != 0 {
		cfg.Port = port
	}
	if clientID >= 0 {
		cfg.ClientID = int64(clientID)
	}

	events := make(chan console.Event, 256)
	feed := console.NewFeedWrapper(events)

	sess, err := ibkr.Connect(ctx, cfg, func(*ibkr.Session, context.CancelFunc) callback.Wrapper {
		return feed
	}, callback.NoOpRecurring{})
	if err != nil {
		return fmt.Errorf("connect %s: %w", cfg.Address(), err)
	}
	defer func() { _ = sess.Close() }()

	log.Printf("connected to %s (client id %d)", cfg.Address(), cfg.ClientID)

	go func() {
		<-ctx.Done()
		close(events)
	}()

	p := tea.NewProgram(console.New(events), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}
