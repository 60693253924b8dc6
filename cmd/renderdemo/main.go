package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-portfolio/internal/portfolio"
)

const sampleProfile = `{
  "name": "Ada Lovelace",
  "email": "ada@example.com",
  "bio": "Analyst of engines and author of the first published algorithm.",
  "skills": ["Mathematics", "Algorithms", "Technical writing"],
  "education": [{"school": "Private tutoring", "degree": "Mathematics", "year": "1833"}],
  "experience": [{"role": "Analyst", "company": "Analytical Engine project", "duration": "1842-1843", "desc": "Translated and annotated Menabrea's memoir."}],
  "achievements": ["Note G"],
  "projects": [{"title": "Bernoulli numbers", "techStack": "Analytical Engine", "description": "Program computing Bernoulli numbers."}]
}`

func main() {
	inPath := flag.String("in", "", "profile JSON file (defaults to a built-in sample)")
	outPath := flag.String("out", "./out/portfolio.html", "output path for generated HTML")
	year := flag.Int("year", time.Now().Year(), "footer year")
	flag.Parse()

	content := sampleProfile
	if *inPath != "" {
		raw, err := os.ReadFile(*inPath)
		if err != nil {
			exitErr(fmt.Sprintf("read profile: %v", err))
		}
		content = string(raw)
	}

	profile, doc, err := portfolio.ParseProfile(content)
	if err != nil {
		exitErr(fmt.Sprintf("parse profile: %v", err))
	}
	if drift, err := portfolio.Drift(doc); err == nil && len(drift) > 0 {
		fmt.Fprintf(os.Stderr, "profile drift: %s\n", strings.Join(drift, "; "))
	}

	renderer, err := portfolio.NewRenderer(*year)
	if err != nil {
		exitErr(fmt.Sprintf("load template: %v", err))
	}
	html, err := renderer.Render(profile)
	if err != nil {
		exitErr(fmt.Sprintf("render failed: %v", err))
	}

	if err := writeOutputs(*outPath, html); err != nil {
		exitErr(fmt.Sprintf("write failed: %v", err))
	}
	fmt.Printf("OK: wrote %s\n", *outPath)
}

// writeOutputs writes the page and the stylesheet it links next to it.
func writeOutputs(outPath string, html []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, html, 0o644); err != nil {
		return err
	}
	cssPath := filepath.Join(dir, strings.TrimPrefix(portfolio.StylesheetPath, "/"))
	return os.WriteFile(cssPath, portfolio.Stylesheet(), 0o644)
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
