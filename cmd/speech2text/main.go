package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oneoblomov/speech2text/internal/capture"
	"github.com/oneoblomov/speech2text/internal/config"
	"github.com/oneoblomov/speech2text/internal/deps"
	"github.com/oneoblomov/speech2text/internal/llm"
	"github.com/oneoblomov/speech2text/internal/notify"
	"github.com/oneoblomov/speech2text/internal/recognizer"
	"github.com/oneoblomov/speech2text/internal/recognizer/vosk"
	"github.com/oneoblomov/speech2text/internal/source"
	"github.com/oneoblomov/speech2text/internal/state"
	"github.com/oneoblomov/speech2text/internal/tui"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "speech2text",
	Short: "Live speech capture and recognition for PulseAudio",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecord()
	},
}

var (
	recordSource    string
	recordOutputDir string
)

func init() {
	addRecordFlags(rootCmd)
	rootCmd.AddCommand(
		recordCmd(),
		modelCmd(),
		doctorCmd(),
		versionCmd(),
	)
}

func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&recordSource, "source", "", "audio source: 1/microphone or 2/system (prompts when omitted)")
	cmd.Flags().StringVar(&recordOutputDir, "output-dir", "", "directory for WAV artifacts (defaults to the working directory)")
}

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Capture a session (the default when no subcommand is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord()
		},
	}
	addRecordFlags(cmd)
	return cmd
}

func runRecord() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if recordOutputDir != "" {
		cfg.Output.Dir = recordOutputDir
	}

	if st := deps.CheckParec(); !st.Installed {
		return fmt.Errorf("parec not found in PATH (install pulseaudio-utils or pipewire-pulse)")
	}

	var kind source.Kind
	if recordSource != "" {
		kind, err = source.ParseKind(recordSource)
		if err != nil {
			return err
		}
	} else {
		fmt.Println(tui.Logo())
		fmt.Println()
		kind, err = tui.SelectSource()
		if err != nil {
			return fmt.Errorf("source selection: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)
	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, finishing session", sig)
		cancel()
	}()

	srcCfg := cfg.ToSourceConfig()
	if kind == source.SystemAudio {
		monitor, err := source.DefaultMonitorSource(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve system audio source: %w", err)
		}
		srcCfg.Device = monitor
	}

	sink, closeSink, err := newSink(cfg)
	if err != nil {
		return fmt.Errorf("failed to open state sink: %w", err)
	}
	defer closeSink()
	pub := state.NewPublisher(sink)

	var recSession recognizer.Session
	if handle := openRecognizer(ctx, cfg); handle != nil {
		defer handle.Close()
		recSession = handle.Session
	}

	src, err := source.Open(ctx, srcCfg)
	if err != nil {
		return fmt.Errorf("failed to open audio source: %w", err)
	}
	defer src.Close()

	notifier := notify.New(cfg.Notifications.Enabled, cfg.Notifications.Type)
	notifier.SessionStarted(kind.String())

	opts := cfg.ToCaptureOptions()
	opts.Status = os.Stdout

	tui.HideCursor()
	sum := capture.New(src, recSession, pub, kind, opts).Run(ctx)
	tui.ShowCursor()

	if cfg.IsPolishEnabled() && sum.Transcript != "" {
		if polished := polishTranscript(cfg, sum.Transcript); polished != "" {
			if err := pub.SetTranscript(context.Background(), polished); err != nil {
				log.Printf("State: publish polished transcript: %v", err)
			}
			sum.Transcript = polished
		}
	}

	if sum.WriteErr != nil {
		msg := fmt.Sprintf("artifact write failed: %v", sum.WriteErr)
		fmt.Fprintln(os.Stderr, tui.StyleError.Render(msg))
		notifier.Error(msg)
	}
	if sum.OutputFile != "" {
		notifier.ArtifactSaved(sum.OutputFile)
	}

	fmt.Println()
	fmt.Print(tui.RenderSummary(sum.OutputFile, sum.Bytes, sum.Duration, sum.Transcript))
	return nil
}

// newSink picks the state backend. The returned func releases it.
func newSink(cfg *config.Config) (state.Sink, func(), error) {
	switch cfg.State.Backend {
	case "redis":
		sink, err := state.NewRedisSink(cfg.State.RedisURL, cfg.State.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return sink, func() {
			if err := sink.Close(); err != nil {
				log.Printf("State: close redis: %v", err)
			}
		}, nil
	case "none":
		return state.NewMemorySink(), func() {}, nil
	default:
		sink, err := state.NewFileSink(cfg.State.Dir, "", "", "")
		if err != nil {
			return nil, nil, err
		}
		return sink, func() {}, nil
	}
}

// openRecognizer builds the engine candidate list for the configured
// backend and opens a session. Recognition is optional: when every
// candidate fails the session runs capture-only. The model slot is never
// written here; `model set` owns it and the session only reads it.
func openRecognizer(ctx context.Context, cfg *config.Config) *recognizer.Handle {
	var opens []recognizer.OpenFunc
	var used string

	switch cfg.Recognizer.Backend {
	case "server":
		opens = append(opens, func() (recognizer.Engine, error) {
			return recognizer.NewServerEngine(cfg.Recognizer.ServerURL)
		})
	default:
		openModel := func(path string) recognizer.OpenFunc {
			return func() (recognizer.Engine, error) {
				eng, err := vosk.Open(path)
				if err == nil {
					used = path
				}
				return eng, err
			}
		}
		resolved, ok := config.ResolveModelPath(modelFilePath(cfg), cfg.Recognizer.ModelPath)
		if ok {
			opens = append(opens, openModel(resolved))
		}
		if def, err := config.DefaultModelDir(); err == nil && def != resolved {
			opens = append(opens, openModel(def))
		}
	}

	handle, err := recognizer.OpenSession(ctx, cfg.Capture.SampleRate, opens...)
	if err != nil {
		log.Printf("Recognizer: recognition disabled: %v", err)
		return nil
	}
	if used != "" {
		log.Printf("Recognizer: using model %s", used)
	}
	return handle
}

// modelFilePath locates the persisted model selection. Only the files
// state backend has one; other backends resolve from config alone.
func modelFilePath(cfg *config.Config) string {
	if cfg.State.Backend != "files" {
		return ""
	}
	dir := cfg.State.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, state.DefaultModelFile)
}

// polishTranscript runs the optional cleanup pass. Any failure leaves the
// published transcript untouched.
func polishTranscript(cfg *config.Config, text string) string {
	adapter, err := llm.NewAdapter(llm.Config{
		APIKey: cfg.PolishAPIKey(),
		Model:  cfg.Polish.Model,
	})
	if err != nil {
		log.Printf("LLM: %v", err)
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	polished, err := adapter.Process(ctx, text)
	if err != nil {
		log.Printf("LLM: %v", err)
		return ""
	}
	return polished
}

func modelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage the recognizer model selection",
	}
	cmd.AddCommand(modelShowCmd(), modelSetCmd())
	return cmd
}

func modelShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the model directory the next session will use",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			resolved, ok := config.ResolveModelPath(modelFilePath(cfg), cfg.Recognizer.ModelPath)
			if !ok {
				fmt.Println("no usable model found; recognition will be disabled")
				return nil
			}
			fmt.Println(resolved)
			return nil
		},
	}
}

func modelSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path>",
		Short: "Persist the model directory for future sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelSet(args[0])
		},
	}
}

func runModelSet(path string) error {
	if !config.ValidModelDir(path) {
		return fmt.Errorf("not a model directory: %s (missing %s)", path, config.ModelMarker)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	sink, closeSink, err := newSink(cfg)
	if err != nil {
		return fmt.Errorf("failed to open state sink: %w", err)
	}
	defer closeSink()

	if err := sink.SetModelPath(context.Background(), path); err != nil {
		return fmt.Errorf("failed to persist model path: %w", err)
	}
	fmt.Printf("model set to %s\n", path)
	return nil
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tools and model availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

func runDoctor() error {
	printStatus := func(name string, st deps.Status) {
		if st.Installed {
			ver := st.Version
			if ver == "" {
				ver = "version unknown"
			}
			fmt.Printf("  [x] %s: %s (%s)\n", name, st.Path, ver)
		} else {
			fmt.Printf("  [ ] %s: not found\n", name)
		}
	}

	fmt.Println("Tools:")
	printStatus("parec", deps.CheckParec())
	printStatus("pactl", deps.CheckPactl())
	printStatus("notify-send", deps.CheckNotifySend())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println()
	fmt.Println("Model:")
	if resolved, ok := config.ResolveModelPath(modelFilePath(cfg), cfg.Recognizer.ModelPath); ok {
		fmt.Printf("  [x] %s\n", resolved)
	} else {
		def, _ := config.DefaultModelDir()
		fmt.Printf("  [ ] no usable model (expected %s)\n", def)
	}

	configPath, _ := config.GetConfigPath()
	fmt.Printf("\nConfig file location: %s\n", configPath)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
