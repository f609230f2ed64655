package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/eat-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/eat-cli/internal/core/services"
	"github.com/custodia-labs/eat-cli/internal/parsers"
)

const (
	fmiFixture       = "../../../parsers/fmi/testdata/Garching-Speiseplan_KW44_2017.txt"
	medizinerFixture = "../../../parsers/mediziner/testdata/menu_kw_44_2018.txt"
	ippFixtureKW18   = "../../../parsers/ipp/testdata/menu_kw_18_2018.txt"
	ippFixtureKW19   = "../../../parsers/ipp/testdata/menu_kw_19_2018.txt"
	garchingFixture  = "../../../parsers/studentenwerk/testdata/speiseplan_mensa_garching_2017.html"
)

type testApp struct {
	store  *memory.MenuStore
	config *memory.ConfigStore
	opts   Options
}

// useTestApp installs a bootstrap backed by in-memory stores.
func useTestApp(t *testing.T) *testApp {
	t.Helper()

	env := &testApp{
		store:  memory.NewMenuStore(),
		config: memory.NewConfigStore(),
	}
	prev := bootstrap
	SetBootstrap(func(opts Options) (*App, error) {
		env.opts = opts
		out := opts.OutputDir
		if out == "" {
			out = "memory"
		}
		return &App{
			Menu:      services.NewMenuService(parsers.NewDefaultRegistry(), env.store, env.store),
			Config:    env.config,
			OutputDir: out,
		}, nil
	})
	t.Cleanup(func() { bootstrap = prev })
	return env
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetCommand()
	t.Cleanup(resetCommand)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetCommand restores flag defaults and contexts; cobra keeps both
// between runs and only hands the root context to subcommands without one.
func resetCommand() {
	rootCmd.SetArgs(nil)
	resetTree(rootCmd)
}

func resetTree(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	cmd.SetContext(nil) //nolint:staticcheck // nil lets Execute install its own context
	for _, c := range cmd.Commands() {
		resetTree(c)
	}
}
