package main

import (
	"fmt"
	"os"

	"github.com/govalues/calculator/internal/config"
	"github.com/govalues/calculator/internal/logging"
	"github.com/govalues/calculator/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var cmdMain = &cobra.Command{
	Use:   "deskcalc",
	Short: "Desk calculator over integer, floating-point and rational numbers",
	Long: `Desk calculator over integer, floating-point and rational numbers.

Each line typed is a sequence of key presses, such as "1/2 + 1/3 =".
Type :help for the list of keys.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runMain,
}

var flagMain struct {
	Config    string
	Domain    string
	Prompt    string
	History   string
	LogLevel  string
	LogFormat string
	Exec      string
}

func init() {
	flags := cmdMain.PersistentFlags()
	flags.StringVarP(&flagMain.Config, "config", "c", "", "Configuration file (TOML)")
	flags.StringVarP(&flagMain.Domain, "domain", "d", "", "Numeric domain, see 'deskcalc domains'")
	flags.StringVar(&flagMain.Prompt, "prompt", "", "Prompt of the interactive mode")
	flags.StringVar(&flagMain.History, "history", "", "History file of the interactive mode")
	flags.StringVar(&flagMain.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&flagMain.LogFormat, "log-format", "", "Log format (plain, json)")
	cmdMain.Flags().StringVarP(&flagMain.Exec, "exec", "e", "", "Press the keys of a single line and print the display")

	cmdMain.AddCommand(cmdDomains, cmdConfig)
}

func main() {
	if err := cmdMain.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(flagMain.Config, cmd.Flags())
}

func runMain(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	screen := new(session.Screen)
	s, err := session.New(cfg.Domain, screen, session.WithLogger(logger))
	if err != nil {
		return err
	}
	p := &printer{w: cmd.OutOrStdout(), color: term.IsTerminal(int(os.Stdout.Fd()))}

	if cmd.Flags().Changed("exec") {
		return execLine(p, s, screen, flagMain.Exec)
	}

	rl, err := newReadline(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	logger.Debug().Str("domain", cfg.Domain.String()).Msg("Interactive mode")
	return repl(rl, p, s, screen, logger)
}

// execLine presses the keys of a single line and prints the display.
// It fails if the display ends up showing an error.
func execLine(p *printer, s *session.Session, screen *session.Screen, line string) error {
	err := s.Type(line)
	if err != nil {
		return err
	}
	p.render(screen)
	if screen.Error {
		return fmt.Errorf("%s", screen.Input)
	}
	return nil
}
