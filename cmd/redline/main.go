// Command redline applies tracked-changes edits to a .docx document: it
// extracts its flat text, compiles a diff between two texts into edit
// records, or applies a set of edits as OOXML w:ins/w:del revisions.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/corvid/redline-docx/internal/config"
	"github.com/corvid/redline-docx/internal/diffcompiler"
	"github.com/corvid/redline-docx/internal/extract"
	"github.com/corvid/redline-docx/internal/redline"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "extract":
		err = runExtract(os.Args[2:])
	case "diff":
		err = runDiff(os.Args[2:], logger)
	case "apply":
		err = runApply(os.Args[2:], logger)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "redline: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  redline extract INPUT.docx [-o OUTPUT.txt]
  redline diff ORIGINAL MODIFIED [-json]
  redline apply INPUT.docx CHANGES [-o OUTPUT.docx] [-author NAME] [-config FILE]`)
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	out := fs.String("o", "", "output text file (defaults to stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("extract: missing INPUT.docx")
	}

	blob, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	text, err := extract.Text(blob)
	if err != nil {
		return err
	}

	if *out == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(*out, []byte(text), 0o644)
}

// runDiff compares ORIGINAL against MODIFIED, each of which may be a plain
// text file or a .docx (extracted first), and prints the compiled edits one
// per line, or as JSON when -json is given.
func runDiff(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "print edits as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("diff: missing ORIGINAL or MODIFIED")
	}

	original, err := readTextOrDocx(fs.Arg(0))
	if err != nil {
		return err
	}
	modified, err := readTextOrDocx(fs.Arg(1))
	if err != nil {
		return err
	}

	edits := diffcompiler.Compile(original, modified, log)

	if !*jsonOut {
		for _, e := range edits {
			fmt.Printf("%s %q -> %q\n", e.Operation, e.TargetText, e.NewText)
		}
		return nil
	}
	enc, err := json.MarshalIndent(edits, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(enc))
	return nil
}

// runApply applies CHANGES (a JSON edit list, or a text file diffed
// on-the-fly against INPUT's extracted text) to INPUT.docx.
func runApply(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	out := fs.String("o", "", "output .docx path (defaults to <stem>_redlined.docx)")
	author := fs.String("author", "", "track-changes author (overrides config/env)")
	configPath := fs.String("config", ".redline.yaml", "optional config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("apply: missing INPUT.docx or CHANGES")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *author != "" {
		cfg.Author = *author
	}

	inputPath := fs.Arg(0)
	blob, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	edits, err := loadEdits(fs.Arg(1), blob, log)
	if err != nil {
		return err
	}
	if !cfg.CommentsEnabled {
		for i := range edits {
			edits[i].Comment = ""
		}
	}

	engine, err := redline.NewEngine(blob, cfg.Author, log)
	if err != nil {
		return err
	}
	applied, skipped := engine.ApplyEdits(edits)
	log.Info("edits applied", "applied", applied, "skipped", skipped)

	result, err := engine.Save()
	if err != nil {
		return err
	}

	outputPath := *out
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, cfg.OutputSuffix)
	}
	if err := os.WriteFile(outputPath, result, 0o644); err != nil {
		return err
	}

	if skipped > 0 {
		os.Exit(1)
	}
	return nil
}

// loadEdits reads changesPath as a JSON edit list when its extension is
// .json, otherwise treats it as a plain-text "modified" document and
// diffs it against origBlob's extracted flat text.
func loadEdits(changesPath string, origBlob []byte, log *slog.Logger) ([]redline.Edit, error) {
	data, err := os.ReadFile(changesPath)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(changesPath), ".json") {
		return redline.ParseEditsJSON(data)
	}

	originalText, err := extract.Text(origBlob)
	if err != nil {
		return nil, err
	}
	return diffcompiler.Compile(originalText, string(data), log), nil
}

func readTextOrDocx(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		blob, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return extract.Text(blob)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func defaultOutputPath(inputPath, suffix string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(inputPath, ext)
	return stem + suffix + ext
}
