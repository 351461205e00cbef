package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gameroom/internal/config"
	"gameroom/internal/game"
)

type options struct {
	format  string
	verbose bool
	ids     []int64
	names   []string
	indexes []int
}

// NewRootCmd builds the gameroom command. Every invocation registers into reg,
// so callers decide how long the registry lives.
func NewRootCmd(reg *game.Registry, cfg config.Config) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "gameroom [name...]",
		Short: "Register games by name and look them up",
		Long: `Registers each name (from arguments, or one per line on stdin) in an
in-memory game registry, runs the requested lookups and prints the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, reg, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", cfg.Format, "output format: text or json")
	f.BoolVarP(&opts.verbose, "verbose", "v", cfg.Verbose, "log each registration to stderr")
	f.Int64SliceVar(&opts.ids, "id", nil, "look up a game by id (repeatable)")
	f.StringArrayVar(&opts.names, "name", nil, "look up a game by name (repeatable)")
	f.IntSliceVar(&opts.indexes, "index", nil, "look up a game by position (repeatable)")
	return cmd
}

func run(cmd *cobra.Command, reg *game.Registry, opts *options, args []string) error {
	if err := config.ValidateFormat(opts.format); err != nil {
		return err
	}
	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(cmd.ErrOrStderr(), "gameroom: ", log.LstdFlags)
	}

	names := args
	if len(names) == 0 {
		var err error
		names, err = readNames(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read names: %w", err)
		}
	}
	for _, name := range names {
		before := reg.Count()
		g := reg.Add(name)
		if reg.Count() > before {
			logger.Printf("registered %s", g)
		} else {
			logger.Printf("%s already registered", g)
		}
	}

	rep := report{Games: reg.List(), Count: reg.Count()}
	for _, id := range opts.ids {
		g, ok := reg.ByID(id)
		rep.add("id", strconv.FormatInt(id, 10), g, ok)
	}
	for _, name := range opts.names {
		g, ok := reg.ByName(name)
		rep.add("name", name, g, ok)
	}
	for _, i := range opts.indexes {
		g, err := reg.At(i)
		if err != nil {
			return fmt.Errorf("lookup: %w", err)
		}
		rep.add("index", strconv.Itoa(i), g, true)
	}
	return rep.write(cmd.OutOrStdout(), opts.format)
}

// readNames returns the non-blank lines of in. An interactive terminal yields
// no names rather than blocking for input.
func readNames(in io.Reader) ([]string, error) {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil, nil
	}
	var names []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}
