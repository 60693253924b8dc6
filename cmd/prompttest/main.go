package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"resume-portfolio/internal/bootstrap"
	"resume-portfolio/internal/extract"
	"resume-portfolio/internal/portfolio"
	"resume-portfolio/internal/shared/config"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume PDF")
	outPath := flag.String("out", "", "Path to write normalized profile JSON (optional)")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider (groq, openai, gemini)")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}
	if *provider != cfg.LLMProvider && *model == cfg.LLMModel {
		*model = config.DefaultModel(*provider)
	}
	cfg.LLMProvider = *provider
	cfg.LLMModel = *model

	resumeBytes, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}

	ctx := context.Background()
	client, err := bootstrap.BuildCompleter(ctx, cfg)
	if err != nil {
		exitErr(err.Error())
	}

	svc := &portfolio.Service{Extractor: extract.PDF{}, LLM: client}
	profile, err := svc.Extract(ctx, resumeBytes)
	if err != nil {
		exitErr(fmt.Sprintf("extract profile: %v", err))
	}

	pretty, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}
	pretty = append(pretty, '\n')

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}
	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
