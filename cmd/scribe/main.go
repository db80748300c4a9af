package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"scribe/internal/config"
	"scribe/internal/document"
	"scribe/internal/editor"
	"scribe/internal/eventbus"
	"scribe/internal/storage"
	"scribe/internal/ui"
	"scribe/internal/version"
	"scribe/internal/viewport"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logPath     string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	flag.StringVar(&logPath, "log", filepath.Join(os.TempDir(), "scribe.log"), "Log file (empty to disable logging)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(version.GetFullVersion())
		return 0
	}
	if flag.NArg() > 1 {
		flag.Usage()
		return 1
	}
	fileName := flag.Arg(0)

	// Set up logging
	if logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		logFile, err := tea.LogToFile(logPath, "scribe")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
			return 1
		}
		defer logFile.Close()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	// Forward the events the UI reports on
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventError,
		eventbus.EventDocumentCreated,
		eventbus.EventConfigSaved,
	} {
		bus.Subscribe(t, forward)
	}

	configSvc := config.NewConfigServiceWithFs(afero.NewOsFs(), configPath, bus)
	cfg, err := configSvc.LoadOrCreate()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		bus.Publish(eventbus.ErrorEvent{Message: "config unavailable, using defaults", Err: err})
		cfg = config.DefaultConfig()
	}

	store := storage.NewFileStore(afero.NewOsFs())
	lines := loadDocument(store, bus, fileName)

	ed := editor.New(document.New(lines...), viewport.New(1, 1))
	model := ui.NewModel(cfg, ed, store, bus, fileName)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	log.Printf("Starting scribe %s", version.GetVersion())
	_, err = p.Run()
	close(eventChan)

	switch {
	case err != nil && !errors.Is(err, tea.ErrProgramKilled):
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	case err != nil:
		log.Printf("Terminated: %v", err)
		return 1
	case model.Err() != nil:
		log.Printf("Exiting with error: %v", model.Err())
		fmt.Fprintln(os.Stderr, model.Err())
		return 1
	}
	return 0
}

// loadDocument reads fileName into lines. A missing file starts a new
// buffer under that name; any other failure starts an empty one.
func loadDocument(store *storage.FileStore, bus eventbus.EventBus, fileName string) []string {
	if fileName == "" {
		return nil
	}

	lines, err := store.Load(fileName)
	switch {
	case err == nil:
		log.Printf("Loaded %s (%d lines)", fileName, len(lines))
		bus.Publish(eventbus.DocumentLoadedEvent{Path: fileName, Lines: len(lines)})
		return lines
	case errors.Is(err, storage.ErrNotFound):
		bus.Publish(eventbus.DocumentCreatedEvent{Path: fileName, Reason: fileName})
		return nil
	default:
		log.Printf("Error loading %s: %v", fileName, err)
		bus.Publish(eventbus.ErrorEvent{Message: "can't open " + fileName, Err: err})
		return nil
	}
}
