package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pathlight/insights-engine/constants"
	"github.com/pathlight/insights-engine/internal/common"
	"github.com/pathlight/insights-engine/internal/insight"
	"github.com/pathlight/insights-engine/internal/llm/openai"
)

// One-shot generation for scripting and prompt iteration: reads a profile
// JSON from a file or stdin, prints the envelope body to stdout.
func main() {
	_ = godotenv.Load()

	var (
		kindArg     = flag.String("kind", string(constants.KindDashboardAnalysis), "insight kind to generate")
		profilePath = flag.String("profile", "-", "path to profile JSON, - for stdin")
		paramsArg   = flag.String("params", "{}", "request parameters as a JSON object")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	kind, ok := constants.ParseKind(*kindArg)
	if !ok {
		logger.Error("unknown kind", "kind", *kindArg, "supported", constants.KindsAsStringSlice())
		os.Exit(2)
	}

	profile, err := readProfile(*profilePath)
	if err != nil {
		logger.Error("failed to read profile", "path", *profilePath, "error", err)
		os.Exit(2)
	}

	var params map[string]any
	if err := json.Unmarshal([]byte(*paramsArg), &params); err != nil {
		logger.Error("invalid -params JSON", "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	client := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	validator, err := insight.NewValidator(logger)
	if err != nil {
		logger.Error("failed to compile insight schemas", "error", err)
		os.Exit(1)
	}
	orch := insight.NewOrchestrator(client, validator, nil, cfg.LLM.PersistTimeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	env, err := orch.Generate(ctx, insight.Request{
		Kind:       kind,
		Profile:    profile,
		Parameters: params,
	})
	if err != nil {
		logger.Error("generation failed", "kind", kind, "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(env.Body(), "", "  ")
	if err != nil {
		logger.Error("failed to encode envelope", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func readProfile(path string) (map[string]any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var profile map[string]any
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}
