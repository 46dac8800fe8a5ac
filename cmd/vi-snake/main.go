package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/scoreboard"
	"github.com/lixenwraith/vi-snake/vmath"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()

	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %+v", cfg)

	name := playerName(cfg.PlayerName, os.Stdin, os.Stdout)

	result, err := play(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Score: %d\n", result.score)
	fmt.Printf("Size: %d\n", result.size)

	if err := saveScore(cfg.Scoreboard, name, result.score); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the optional -config file and flags, then validates
func loadConfig(args []string) (config.Config, error) {
	cfg, err := config.Load(configPath(args))
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("vi-snake", flag.ContinueOnError)
	fs.String("config", "", "TOML config file")
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// configPath finds -config before the full flag set exists, file values become flag defaults
func configPath(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// playerName prompts on an interactive stdin when no name was configured
func playerName(configured string, in *os.File, out io.Writer) string {
	if configured != "" {
		return configured
	}
	if !term.IsTerminal(int(in.Fd())) {
		return constants.DefaultPlayerName
	}
	return promptName(in, out)
}

func promptName(in io.Reader, out io.Writer) string {
	fmt.Fprint(out, "Enter your name: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return constants.DefaultPlayerName
	}
	if name := strings.TrimSpace(line); name != "" {
		return name
	}
	return constants.DefaultPlayerName
}

type sessionResult struct {
	score int
	size  int
	alive bool
}

// play runs one session on the terminal and restores it before returning
func play(cfg config.Config) (sessionResult, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("session start: grid %dx%d, seed %d", cfg.Grid.Width, cfg.Grid.Height, seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return sessionResult{}, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return sessionResult{}, fmt.Errorf("init screen: %w", err)
	}
	engine.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	sound := audio.NewSoundManager()
	sound.SetMuted(cfg.Mute)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()

	g, err := game.New(cfg.Grid.Width, cfg.Grid.Height,
		game.WithRand(vmath.NewFastRand(seed)),
		game.WithScheduler(engine.NewTimerScheduler()),
		game.WithListener(game.Listeners{sound, logListener{}}),
	)
	if err != nil {
		return sessionResult{}, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	intents := make(chan input.Intent, constants.InputQueueSize)
	input.NewMachine().Pump(ctx, screen, intents)

	// Clipped rendering still works on a small terminal, the player just sees part of the grid
	if sw, sh := screen.Size(); sw < g.Width()*constants.CellColumns || sh < g.Height()+1 {
		log.Printf("terminal %dx%d smaller than grid %dx%d", sw, sh, g.Width(), g.Height())
	}

	renderer := render.NewTerminalRenderer(screen)
	s := &session{
		game:     g,
		renderer: renderer,
		intents:  intents,
		sound:    sound,
		onResize: screen.Sync,
	}

	loop := engine.NewFrameLoop(cfg.FrameDelay(), engine.NewMonotonicTimeProvider(), func(frames int) {
		renderer.UpdateTitle(g.Score(), frames)
	})
	log.Printf("frame delay %v", loop.Target())
	frames := loop.Run(ctx, s)

	result := sessionResult{score: g.Score(), size: g.Size(), alive: g.Alive()}
	log.Printf("session end: %d frames, score %d, size %d, quit %v", frames, result.score, result.size, s.quit)

	if !result.alive {
		time.Sleep(constants.GameOverPause)
	}
	return result, nil
}

func saveScore(path, name string, score int) error {
	store, err := scoreboard.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Append(scoreboard.Entry{Name: name, Score: score, Time: time.Now()}); err != nil {
		return err
	}
	log.Printf("score %d for %s appended to %s", score, name, path)
	return nil
}
