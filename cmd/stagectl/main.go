// stagectl resolves stage declaration files and answers queries against the
// resolved definitions. It never mutates state: checking a transition only
// reports whether the transition would be legal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/ahrav/stageflow/internal/config"
	"github.com/ahrav/stageflow/internal/config/fileloader"
	"github.com/ahrav/stageflow/pkg/common/logger"
	"github.com/ahrav/stageflow/pkg/stage"
)

const serviceType = "stagectl"

func main() {
	_, _ = maxprocs.Set()

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatalf("failed to get hostname: %v", err)
	}

	svcName := fmt.Sprintf("STAGECTL-%s", hostname)
	metadata := map[string]string{
		"service":  svcName,
		"hostname": hostname,
		"run_id":   uuid.New().String(),
		"app":      serviceType,
	}

	// Diagnostics go to stderr so stdout stays clean for query output.
	lg := logger.NewWithMetadata(os.Stderr, logger.LevelInfo, svcName, nil, logger.Events{}, metadata)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, lg, os.Stdout, os.Args[1:]); err != nil {
		lg.Error(ctx, "stagectl failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, lg *logger.Logger, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: stagectl <validate|show|check> [-config file] [args]")
	}
	cmd, args := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	configPath := fs.String("config", "stages.yaml", "path to the stage declaration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := loadRegistry(ctx, lg, *configPath)
	if err != nil {
		return err
	}

	switch cmd {
	case "validate":
		// Loading already resolved every declaration; report and finish.
		fmt.Fprintf(w, "%s: %d stage(s) resolved\n", *configPath, len(reg.Names()))
		return nil

	case "show":
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: stagectl show [-config file] <stage>")
		}
		return show(w, reg, fs.Arg(0))

	case "check":
		if fs.NArg() != 3 {
			return fmt.Errorf("usage: stagectl check [-config file] <stage> <from> <to>")
		}
		return check(w, reg, fs.Arg(0), fs.Arg(1), fs.Arg(2))

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func loadRegistry(ctx context.Context, lg *logger.Logger, path string) (*stage.Registry, error) {
	cfg, err := fileloader.NewFileLoader(path).Load(ctx)
	if err != nil {
		return nil, err
	}

	reg, err := config.BuildDefinitions(cfg)
	if err != nil {
		return nil, err
	}

	lg.Info(ctx, "stage declarations resolved", "path", path, "stages", len(reg.Names()))
	return reg, nil
}

func show(w io.Writer, reg *stage.Registry, name string) error {
	def, ok := reg.Lookup(name)
	if !ok {
		return fmt.Errorf("stage %q not found; declared stages: %v", name, reg.Names())
	}

	fmt.Fprintf(w, "stage %s\n\nmembers:\n", def.Name())
	for _, m := range def.Members() {
		note := ""
		if !def.IsComparable(m) {
			note = "  (not order-comparable)"
		}
		fmt.Fprintf(w, "  %-3d %-20s value=%s%s\n", m.Code(), m.Name(), m.Value(), note)
	}

	fmt.Fprintf(w, "\nordering:\n")
	ordering := def.Ordering()
	if len(ordering) == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		fmt.Fprint(w, " ")
		for i, m := range ordering {
			if i > 0 {
				fmt.Fprint(w, " <")
			}
			fmt.Fprintf(w, " %s", m.Name())
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\ntransitions:\n")
	for _, m := range def.Members() {
		next, err := def.Successors(m)
		if err != nil {
			return err
		}
		if len(next) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s -> %v\n", m.Name(), next)
	}
	return nil
}

func check(w io.Writer, reg *stage.Registry, name, from, to string) error {
	def, ok := reg.Lookup(name)
	if !ok {
		return fmt.Errorf("stage %q not found; declared stages: %v", name, reg.Names())
	}

	fromMember, err := def.Coerce(from)
	if err != nil {
		return err
	}
	toMember, err := def.Coerce(to)
	if err != nil {
		return err
	}

	legal, err := fromMember.Precedes(toMember)
	if err != nil {
		return err
	}
	if !legal {
		return fmt.Errorf("transition %s -> %s is not allowed", fromMember, toMember)
	}

	fmt.Fprintf(w, "transition %s -> %s is allowed\n", fromMember, toMember)
	return nil
}
