// Copyright 2021 Tamas Gulacsi. All rights reserved.

// Command xlsview shows the first sheet of an uploaded spreadsheet as a sortable, paginated table.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/UNO-SOFT/sheetview"
	"github.com/UNO-SOFT/sheetview/ingest"
	"github.com/UNO-SOFT/sheetview/web"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	ffOpts := []ff.Option{ff.WithEnvVarPrefix("XLSVIEW")}

	fs := flag.NewFlagSet("xlsview", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	_ = fs.String("config", "", "config file (optional)")
	flagLocale := fs.String("locale", "en-US", "date locale when the browser does not tell one")
	flagTZ := fs.String("tz", "UTC", "time zone the dates are shown in")

	normalizer := func() (sheetview.Normalizer, error) {
		loc, err := time.LoadLocation(*flagTZ)
		if err != nil {
			return sheetview.Normalizer{}, fmt.Errorf("tz=%q: %w", *flagTZ, err)
		}
		return sheetview.Normalizer{Locale: sheetview.ParseLocale(*flagLocale), Location: loc}, nil
	}

	serveFS := flag.NewFlagSet("serve", flag.ContinueOnError)
	flagAddr := serveFS.String("addr", ":8080", "address to listen on")
	flagMaxUpload := serveFS.Int64("max-upload", web.DefaultMaxUpload, "upload size limit in bytes")
	flagTTL := serveFS.Duration("session-ttl", time.Hour, "forget the dataset of sessions idle for this long")
	serveCmd := ffcli.Command{Name: "serve", FlagSet: serveFS, Options: ffOpts,
		ShortUsage: "xlsview serve [flags]",
		ShortHelp:  "serve the upload form and table view",
		Exec: func(ctx context.Context, args []string) error {
			n, err := normalizer()
			if err != nil {
				return err
			}
			srv := web.New(web.Config{
				Addr:       *flagAddr,
				MaxUpload:  *flagMaxUpload,
				SessionTTL: *flagTTL,
				Locale:     n.Locale,
				Location:   n.Location,
			}, logger)
			return srv.ListenAndServe(ctx)
		},
	}

	dumpCmd := ffcli.Command{Name: "dump",
		ShortUsage: "xlsview dump file.xlsx",
		ShortHelp:  "print the normalized first sheet as JSON",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			n, err := normalizer()
			if err != nil {
				return err
			}
			return dump(ctx, os.Stdout, args[0], n)
		},
	}

	sampleFS := flag.NewFlagSet("sample", flag.ContinueOnError)
	flagRows := sampleFS.Int("rows", 100, "number of data rows")
	sampleCmd := ffcli.Command{Name: "sample", FlagSet: sampleFS,
		ShortUsage: "xlsview sample [-rows=N] out.xlsx",
		ShortHelp:  "write a demo workbook to try the viewer with",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			fh, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()
			if err := writeSample(fh, *flagRows); err != nil {
				return err
			}
			return fh.Close()
		},
	}

	app := ffcli.Command{Name: "xlsview", FlagSet: fs,
		ShortUsage: "xlsview [flags] <subcommand>",
		Options: append(ffOpts,
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ff.PlainParser),
			ff.WithAllowMissingConfigFile(true),
		),
		Subcommands: []*ffcli.Command{&serveCmd, &dumpCmd, &sampleCmd},
		Exec:        func(ctx context.Context, args []string) error { return flag.ErrHelp },
	}
	if err := app.Parse(os.Args[1:]); err != nil {
		return err
	}
	logger.Debug("config", "locale", *flagLocale, "tz", *flagTZ)

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

func dump(ctx context.Context, w io.Writer, fn string, n sheetview.Normalizer) error {
	b, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	ds, err := ingest.Normalize(ctx, b, n)
	if err != nil {
		return fmt.Errorf("%q: %w", fn, err)
	}
	logger.Debug("normalized", "file", fn, "columns", len(ds.Columns), "rows", len(ds.Rows))
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ds)
}
