// Command transcribe converts English text to IPA from the command line.
// Text is taken from the arguments or, when none are given, read line by
// line from stdin.
//
// Flags:
//
//	-dict      dictionary URL or path (default: DICT_SOURCE from config)
//	-no-dict   skip the dictionary and use only the letter-to-sound rules
//	-format    output format: "ipa" (/kæt/ per word), "json", "table" or
//	           "auto" (table on a terminal, ipa otherwise)
//	-segment   treat input as IPA and print its phonemes
//	-v         verbose logging to stderr
//	-version   print version and exit
//
// Exit codes: 0 = success, 1 = error, 2 = bad usage.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/heartmarshall/myenglish-g2p/internal/app"
	"github.com/heartmarshall/myenglish-g2p/internal/config"
	"github.com/heartmarshall/myenglish-g2p/internal/dictionary"
	"github.com/heartmarshall/myenglish-g2p/internal/domain"
	"github.com/heartmarshall/myenglish-g2p/internal/phonetics/ipa"
	"github.com/heartmarshall/myenglish-g2p/internal/service/g2p"
)

const (
	formatAuto  = "auto"
	formatIPA   = "ipa"
	formatJSON  = "json"
	formatTable = "table"
)

var errUsage = errors.New("usage")

type options struct {
	dict    string
	noDict  bool
	format  string
	segment bool
	verbose bool
	version bool
	words   []string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "transcribe: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("transcribe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.dict, "dict", "", "dictionary URL or path (default: DICT_SOURCE from config)")
	fs.BoolVar(&opts.noDict, "no-dict", false, "use only the letter-to-sound rules")
	fs.StringVar(&opts.format, "format", formatAuto, `output format: "auto", "ipa", "json" or "table"`)
	fs.BoolVar(&opts.segment, "segment", false, "treat input as IPA and print its phonemes")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging to stderr")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, errUsage
	}
	switch opts.format {
	case formatAuto, formatIPA, formatJSON, formatTable:
	default:
		fmt.Fprintf(stderr, "unknown -format %q\n", opts.format)
		return opts, errUsage
	}
	opts.words = fs.Args()
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, app.BuildVersion())
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logCfg := config.LogConfig{Level: "error", Format: "text"}
	if opts.verbose {
		logCfg.Level = "debug"
	}
	logger := app.NewLoggerTo(stderr, logCfg)

	svc := newService(cfg.Dictionary, opts, logger)

	format := opts.format
	if format == formatAuto {
		format = formatIPA
		if isTerminal(stdout) {
			format = formatTable
		}
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	tbl := &tableWriter{segment: opts.segment}
	emit := func(line string) error {
		switch {
		case opts.segment && format == formatTable:
			tbl.addSegmentation(line, svc.Segment(ctx, line))
			return nil
		case opts.segment:
			return writeSegmentation(out, svc.Segment(ctx, line), format)
		case format == formatTable:
			tbl.addResults(svc.Transcribe(ctx, line))
			return nil
		default:
			return writeResults(out, svc.Transcribe(ctx, line), format)
		}
	}

	if err := readInput(ctx, opts.words, stdin, emit); err != nil {
		return err
	}
	return tbl.render(out)
}

// readInput feeds emit the joined arguments or, without arguments, each
// non-blank stdin line.
func readInput(ctx context.Context, words []string, stdin io.Reader, emit func(string) error) error {
	if len(words) > 0 {
		return emit(strings.Join(words, " "))
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		if err := emit(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

func newService(cfg config.DictionaryConfig, opts options, logger *slog.Logger) *g2p.Service {
	if opts.noDict {
		return g2p.NewService(logger, noDictionary{})
	}
	if opts.dict != "" {
		cfg.Source = opts.dict
	}
	return g2p.NewService(logger, app.NewStore(cfg, logger))
}

// noDictionary is a store that never loads, forcing the fallback rules.
type noDictionary struct{}

func (noDictionary) Load(context.Context) error { return domain.ErrNotLoaded }

func (noDictionary) Lookup(string) ([]dictionary.Pronunciation, error) {
	return nil, domain.ErrNotLoaded
}

func writeResults(w io.Writer, results []domain.G2PResult, format string) error {
	if format == formatJSON {
		return json.NewEncoder(w).Encode(results)
	}
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = "/" + ipa.Join(r.Phonemes) + "/"
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func writeSegmentation(w io.Writer, seg domain.Segmentation, format string) error {
	if format == formatJSON {
		return json.NewEncoder(w).Encode(seg)
	}
	_, err := fmt.Fprintln(w, strings.Join(seg.Phonemes, " "))
	return err
}
