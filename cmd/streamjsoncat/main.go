// Command streamjsoncat reads a JSON document from stdin (or a file
// argument) one byte at a time through a streamjson.Parser and prints
// either the KE wire protocol it emits or the fully buffered value as
// compact JSON.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mcvoid/streamjson"
)

type config struct {
	verbose  bool
	buffer   bool
	quiet    bool
	outputTo []string
	bufferTo []string
}

func main() {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:   "streamjsoncat [flags] [file]",
		Short: "Stream a JSON document through streamjson, byte by byte",
		Long: `streamjsoncat feeds a JSON document through a streamjson.Parser one byte
at a time and prints what comes out: the KE wire protocol rows by default,
or the reassembled value as JSON with --buffer.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log mapper diagnostics to stderr")
	flags.BoolVarP(&cfg.quiet, "quiet", "q", false, "suppress wire protocol output")
	flags.BoolVarP(&cfg.buffer, "buffer", "b", false, "print the reassembled value as JSON instead of wire rows")
	flags.StringSliceVar(&cfg.outputTo, "output-whitelist", nil, "dotted key-path patterns allowed through to wire output (default: all)")
	flags.StringSliceVar(&cfg.bufferTo, "buffer-whitelist", nil, "dotted key-path patterns mirrored into the value buffer (default: all)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config, args []string) error {
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("streamjsoncat: %w", err)
		}
		defer f.Close()
		in = f
	}

	opts := streamjson.ParserOptions{
		Filter: streamjson.ParserOptionsFilter{
			OutputWhitelist: cfg.outputTo,
			BufferWhitelist: cfg.bufferTo,
		},
	}

	refGen := streamjson.NewRefIndexGenerator()
	parser := streamjson.NewParser(refGen, refGen.Generate(), cfg.buffer, opts)

	if cfg.verbose {
		log.Debug().Bool("buffer", cfg.buffer).Strs("outputWhitelist", cfg.outputTo).
			Strs("bufferWhitelist", cfg.bufferTo).Msg("streamjsoncat: starting")
	}

	w := streamjson.NewWriter(os.Stdout, parser)
	if cfg.quiet || cfg.buffer {
		w = streamjson.NewWriter(io.Discard, parser)
	}

	buf := make([]byte, 4096)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("streamjsoncat: %w", werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("streamjsoncat: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("streamjsoncat: %w", err)
	}

	if cfg.buffer {
		v := parser.TakeBufferedData()
		if v == nil {
			return nil
		}
		fmt.Println(v.String())
	}

	return nil
}
