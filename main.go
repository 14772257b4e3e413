/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/leek/engine"
	"github.com/spaghettifunk/leek/engine/assets"
	"github.com/spaghettifunk/leek/engine/core"
	"github.com/spaghettifunk/leek/engine/platform"
	"github.com/spaghettifunk/leek/engine/textures"
	"github.com/spaghettifunk/leek/testbed"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "leek",
		Short:         "Run the Leek engine testbed",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("assets") {
				config.Assets.Dir, _ = cmd.Flags().GetString("assets")
			}
			if cmd.Flags().Changed("log-level") {
				level, _ := cmd.Flags().GetString("log-level")
				config.LogLevel = core.LogLevel(level)
			}
			if cmd.Flags().Changed("debug") {
				config.Debug, _ = cmd.Flags().GetBool("debug")
			}
			if err := run(config); err != nil {
				core.LogError("%s", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to a TOML configuration file")
	cmd.Flags().StringP("assets", "a", "assets", "Folder holding the game assets")
	cmd.Flags().StringP("log-level", "l", string(core.InfoLevel), "Log level: debug, info, warn, error")
	cmd.Flags().Bool("debug", false, "Enable the debug hotkeys (F10, F11, F12)")
	return cmd
}

func loadConfig(path string) (*engine.ApplicationConfig, error) {
	if path == "" {
		config := engine.DefaultConfig()
		config.Name = "Leek Testbed"
		return config, nil
	}
	return engine.LoadConfig(path)
}

func run(config *engine.ApplicationConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := core.SetLogLevel(config.LogLevel); err != nil {
		return err
	}

	window, err := platform.New()
	if err != nil {
		return err
	}
	if err := window.Startup(platform.Options{
		Title:          config.Name,
		X:              config.StartPosX,
		Y:              config.StartPosY,
		Width:          config.StartWidth,
		Height:         config.StartHeight,
		LogicalWidth:   config.LogicalWidth,
		LogicalHeight:  config.LogicalHeight,
		Fullscreen:     config.Fullscreen,
		HideCursor:     config.HideCursor,
		RelativeCursor: config.RelativeCursor,
	}); err != nil {
		return fmt.Errorf("failed to start the platform: %w", err)
	}
	defer window.Shutdown()

	speaker := platform.NewSpeaker(0)
	if err := speaker.Initialize(); err != nil {
		return fmt.Errorf("failed to open the audio device: %w", err)
	}
	defer speaker.Close()

	assetManager, err := assets.NewManager(
		assets.Config{Dir: config.Assets.Dir, WatchBuffer: config.Assets.WatchBuffer},
		textures.NewSoftwareCreator(),
		speaker,
	)
	if err != nil {
		return err
	}
	// closes the watcher when engine.New fails, a no-op after e.Shutdown
	defer assetManager.Shutdown()

	e, err := engine.New(config, window, assetManager)
	if err != nil {
		return err
	}
	defer e.Shutdown()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	// the loop owns the main thread, a signal only asks it to quit
	go func() {
		<-sigCh
		window.RequestQuit()
	}()

	return e.Run(testbed.NewTitleScene)
}
