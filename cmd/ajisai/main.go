package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"golang.org/x/term"

	ajisai "github.com/jcorbin/goajisai"
)

const (
	historyFile = ".ajisai_history"
	prompt      = "ajisai> "
	helpText    = `REPL commands:
  :help          show this help
  :quit / :exit  exit the REPL
  :words         list dictionary words with descriptions
  :dump          dump engine state
  :reset         reset the engine (builtins only, empty stacks)
`
)

func main() {
	var timeout time.Duration
	var trace bool
	var loopLimit int
	var evalStr string
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&loopLimit, "loop-limit", 0, "override the loop iteration cap")
	flag.StringVar(&evalStr, "e", "", "evaluate the given source and exit")
	flag.Parse()

	var opts []ajisai.Option
	if trace {
		opts = append(opts, ajisai.WithLogf(log.Printf))
	}
	if loopLimit != 0 {
		opts = append(opts, ajisai.WithLoopLimit(loopLimit))
	}
	eng := ajisai.New(opts...)

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	switch {
	case evalStr != "":
		exitOnError(runBatch(ctx, eng, evalStr))

	case flag.NArg() > 0:
		src, err := os.ReadFile(flag.Arg(0))
		exitOnError(err)
		exitOnError(runBatch(ctx, eng, string(src)))

	case term.IsTerminal(int(os.Stdin.Fd())):
		repl(ctx, eng)

	default:
		src, err := io.ReadAll(os.Stdin)
		exitOnError(err)
		exitOnError(runBatch(ctx, eng, string(src)))
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

// runBatch executes one whole source text, printing whatever the program
// printed before reporting any error.
func runBatch(ctx context.Context, eng *ajisai.Engine, src string) error {
	err := eng.ExecuteContext(ctx, src)
	flushOutput(eng)
	return err
}

func flushOutput(eng *ajisai.Engine) {
	if out := eng.DrainOutput(); out != "" {
		fmt.Print(out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Println()
		}
	}
}

func repl(ctx context.Context, eng *ajisai.Engine) {
	fmt.Println("ajisai (Ctrl+D exits, :help lists commands)")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(trimmed, ":") {
			if quit := replCommand(eng, trimmed); quit {
				break
			}
			continue
		}

		err = eng.ExecuteContext(ctx, line)
		flushOutput(eng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		}
		fmt.Printf("-- stack: %v\n", eng.Stack())
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
}

func replCommand(eng *ajisai.Engine, line string) (quit bool) {
	switch cmd := strings.Fields(line)[0]; strings.ToLower(cmd) {
	case ":help":
		fmt.Print(helpText)

	case ":quit", ":exit":
		return true

	case ":reset":
		eng.Reset()
		fmt.Println("engine reset")

	case ":words":
		for _, info := range eng.Words() {
			if info.Description != "" {
				fmt.Printf("%v ( %v )\n", info.Name, info.Description)
			} else {
				fmt.Println(info.Name)
			}
		}

	case ":dump":
		eng.Dump(os.Stdout)

	default:
		fmt.Printf("unknown command %v, :help lists commands\n", cmd)
	}
	return false
}
