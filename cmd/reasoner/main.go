// In file: cmd/reasoner/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dileep-u-k/tool-reasoner/internal/llm"
	"github.com/dileep-u-k/tool-reasoner/internal/reasoner"
	"github.com/dileep-u-k/tool-reasoner/internal/render"
	"github.com/dileep-u-k/tool-reasoner/internal/repl"
	"github.com/dileep-u-k/tool-reasoner/internal/server"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// Both roles of the profiler are consumed through interfaces.
var (
	_ reasoner.UsageRecorder = (*llm.Profiler)(nil)
	_ server.UsageReporter   = (*llm.Profiler)(nil)
)

var (
	configPath    string
	modelOverride string
	quiet         bool

	rootCmd = &cobra.Command{
		Use:   "reasoner",
		Short: "Answer questions with chain-of-thought reasoning and local tools",
		Long: `reasoner sends each query to an LLM, executes the TOOL: calls found in its
reasoning with local arithmetic, string and comparison tools, and prints the
combined answer. Without a subcommand it starts an interactive session.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet {
				log.SetOutput(io.Discard)
			}
		},
		RunE: runREPL,
	}

	askCmd = &cobra.Command{
		Use:   "ask [query]",
		Short: "Answer a single query and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve queries over HTTP on $PORT",
		RunE:  runServe,
	}

	toolsCmd = &cobra.Command{
		Use:   "tools",
		Short: "List the tools available to the model",
		Run: func(cmd *cobra.Command, args []string) {
			render.Tools(cmd.OutOrStdout(), tools.NewDefaultRegistry().Definitions())
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), GetBuildInfo())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the model settings file (default ./config.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&modelOverride, "model", "", "model to use, overriding the config file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output")

	rootCmd.AddCommand(askCmd, serveCmd, toolsCmd, versionCmd)
}

// main is the entry point for the application.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// services is everything a query-processing command needs.
type services struct {
	cfg      *AppConfig
	reasoner *reasoner.Reasoner
	profiler *llm.Profiler
	rdb      *redis.Client
}

func (s *services) Close() {
	if s.rdb != nil {
		if err := s.rdb.Close(); err != nil {
			log.Printf("Warning: Failed to close Redis client: %v", err)
		}
	}
}

// initializeServices is the composition root: it loads configuration, builds
// the LLM client and wires the reasoner.
func initializeServices(ctx context.Context) (*services, error) {
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting tool-reasoner | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	cfg, err := LoadConfig(configPath, modelOverride)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	log.Printf("✅ Configuration loaded (model: %s, provider: %s).", cfg.Model.Model, cfg.Provider)

	client, err := llm.NewClient(cfg.Provider, cfg.Model.Model, cfg.APIKey, cfg.Model.BaseURL)
	if err != nil {
		return nil, err
	}

	svc := &services{cfg: cfg}
	var recorder reasoner.UsageRecorder
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Printf("WARNING: Could not connect to Redis at %s, usage profiling disabled: %v", cfg.RedisAddr, err)
			_ = rdb.Close()
		} else {
			svc.rdb = rdb
			svc.profiler = llm.NewProfiler(rdb)
			recorder = svc.profiler
			log.Println("✅ Usage profiler connected.")
		}
	}

	registry := tools.NewDefaultRegistry()
	svc.reasoner = reasoner.New(client, registry, cfg.GenerationConfig(), recorder)
	log.Printf("✅ Reasoner initialized with %d tools.", registry.ToolCount())
	return svc, nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	svc, err := initializeServices(cmd.Context())
	if err != nil {
		log.Printf("❌ FATAL: %v", err)
		return err
	}
	defer svc.Close()

	r := repl.New(svc.reasoner, svc.reasoner.Model(), svc.reasoner.Registry().ToolCount())
	r.In = cmd.InOrStdin()
	r.Out = cmd.OutOrStdout()
	return r.Run(cmd.Context())
}

func runAsk(cmd *cobra.Command, args []string) error {
	svc, err := initializeServices(cmd.Context())
	if err != nil {
		log.Printf("❌ FATAL: %v", err)
		return err
	}
	defer svc.Close()

	result, err := svc.reasoner.Process(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		render.Error(cmd.ErrOrStderr(), err)
		return err
	}
	render.Result(cmd.OutOrStdout(), result)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, err := initializeServices(cmd.Context())
	if err != nil {
		log.Printf("❌ FATAL: %v", err)
		return err
	}
	defer svc.Close()

	var usage server.UsageReporter
	if svc.profiler != nil {
		usage = svc.profiler
	}
	gin.SetMode(os.Getenv("GIN_MODE"))
	handler := server.NewHandler(svc.reasoner, usage)
	return runServerWithGracefulShutdown(cmd.Context(), ":"+svc.cfg.Port, server.NewRouter(handler))
}
