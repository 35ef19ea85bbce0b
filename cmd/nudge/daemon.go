package main

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/dispatch"
	"github.com/1broseidon/nudge/internal/drag"
	"github.com/1broseidon/nudge/internal/highlight"
	"github.com/1broseidon/nudge/internal/hotkeys"
	"github.com/1broseidon/nudge/internal/ipc"
	"github.com/1broseidon/nudge/internal/platform"
)

func runDaemon() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (%d hotkeys, snap tolerance %.0fpx)", len(cfg.Hotkeys), cfg.SnapTolerance)

	// Connect to display server
	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	log.Println("nudge daemon started successfully")

	// Edge highlight overlay
	overlay := highlight.New(backend.XUtil(), backend.RootWindow())
	defer overlay.Cleanup()

	// Engines behind the operation dispatcher
	dispatcher := dispatch.New(backend, cfg, overlay)

	// Global hotkeys
	hotkeyHandler, err := hotkeys.NewHandler(backend, dispatcher)
	if err != nil {
		log.Fatalf("Failed to create hotkey handler: %v", err)
	}
	if err := hotkeyHandler.RegisterAll(cfg.Hotkeys); err != nil {
		log.Printf("Warning: %v", err)
	}

	// Pointer drags: producer accumulates deltas, consumer applies one
	// frame write per tick. The watchdog recreates the pointer grabs
	// when the motion stream dies mid-drag.
	var dragMu sync.Mutex
	var pointer *drag.Pointer
	var runner *drag.Runner

	startDrag := func(dragCfg config.DragConfig) {
		dragMu.Lock()
		defer dragMu.Unlock()

		session := drag.NewSession()
		runner = drag.NewRunner(backend, session, dragCfg, func() {
			dragMu.Lock()
			defer dragMu.Unlock()
			if pointer != nil {
				pointer.Detach()
				pointer.Attach()
			}
		})

		p, err := drag.NewPointer(backend, session, runner, dragCfg)
		if err != nil {
			log.Printf("Warning: pointer drags disabled: %v", err)
			return
		}
		pointer = p
		pointer.Attach()
		runner.Start()
	}
	stopDrag := func() {
		dragMu.Lock()
		defer dragMu.Unlock()
		if pointer != nil {
			pointer.Detach()
			pointer = nil
		}
		if runner != nil {
			runner.Stop()
			runner = nil
		}
	}

	startDrag(cfg.Drag)
	defer stopDrag()

	// Create config reload channel
	reloadChan := make(chan struct{}, 1)

	// Start IPC server
	ipcServer, err := ipc.NewServer(cfg, dispatcher, backend, reloadChan)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := ipcServer.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer ipcServer.Stop()

	applyConfig := func(newCfg *config.Config) {
		ipcServer.SetConfig(newCfg)
		dispatcher.UpdateConfig(newCfg)

		hotkeyHandler.Detach()
		if err := hotkeyHandler.RegisterAll(newCfg.Hotkeys); err != nil {
			log.Printf("Warning: %v", err)
		}

		stopDrag()
		startDrag(newCfg.Drag)
	}

	// Setup signal handlers
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	// Handle signals and config reloads
	go func() {
		for {
			select {
			case sig := <-sigCh:
				switch sig {
				case syscall.SIGHUP:
					log.Println("Received SIGHUP, reloading config...")
					newCfg, err := config.Load()
					if err != nil {
						log.Printf("Config reload failed: %v", err)
						continue
					}
					applyConfig(newCfg)
					log.Println("Config reloaded successfully")

				case os.Interrupt, syscall.SIGTERM:
					log.Println("Shutting down nudge daemon...")
					stopDrag()
					ipcServer.Stop()
					overlay.Cleanup()
					os.Exit(0)
				}

			case <-reloadChan:
				// Config was reloaded via IPC, re-wire components
				applyConfig(ipcServer.GetConfig())
				log.Println("Config reloaded successfully")
			}
		}
	}()

	// Start event loop (blocking)
	log.Println("Entering event loop...")
	backend.EventLoop()
}
