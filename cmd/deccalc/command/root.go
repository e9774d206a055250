package command

import (
	"bufio"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/decimalnumbers/decimal"
	"github.com/decimalnumbers/decimal/internal/calc"
	"github.com/decimalnumbers/decimal/internal/config"
)

type options struct {
	configPath string
	maxPrec    int
	scale      int
	rounding   string
	trim       bool
	logLevel   string

	cfg *config.Config
	log *logrus.Logger
}

// Root is the deccalc command.
var Root = New()

// New returns a deccalc command with its own flag values.
func New() *cobra.Command {
	o := &options{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "deccalc [expression...]",
		Short: "Evaluates decimal expressions written in Polish notation.",
		Long: `Evaluates decimal expressions written in Polish (prefix) notation.

Each argument is one expression. Without arguments, every non-blank line
of the standard input is one expression. Operators are + - * / ^ and the
comparisons < <= = >= >, which evaluate to 1 or 0. Quotients are rounded to
--scale digits after the decimal point using the --rounding mode.
Put -- before expressions that start with the - operator.`,
		Example: `  deccalc "* 10 + 1.23 4.56"
  deccalc --max-prec 34 -- "- 0.1 ^ 0.5 3"
  echo "/ 1 3" | deccalc --scale 5 --rounding half-up`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "",
		"path to a YAML config file; flags given explicitly take precedence over it")
	flags.IntVar(&o.maxPrec, "max-prec", defaults.MaxPrec,
		"maximum number of coefficient digits in any result, 0 means no limit")
	flags.IntVar(&o.scale, "scale", defaults.Scale,
		"number of digits after the decimal point in quotients")
	flags.StringVar(&o.rounding, "rounding", defaults.Rounding.String(),
		"rounding mode of quotients: half-even, half-up, truncate, ceiling or floor")
	flags.BoolVar(&o.trim, "trim", defaults.TrimSpace,
		"ignore white space other than spaces and tabs around operands")
	flags.StringVar(&o.logLevel, "log-level", defaults.Log.Level,
		"log level: trace, debug, info, warn or error")

	return cmd
}

// setup merges the config file with the flags and prepares the logger.
func (o *options) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("max-prec") {
		cfg.MaxPrec = o.maxPrec
	}
	if flags.Changed("scale") {
		cfg.Scale = o.scale
	}
	if flags.Changed("rounding") {
		mode, err := decimal.ParseRoundingMode(o.rounding)
		if err != nil {
			return fmt.Errorf("invalid --rounding: %w", err)
		}
		cfg.Rounding = mode
	}
	if flags.Changed("trim") {
		cfg.TrimSpace = o.trim
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	o.log = logrus.New()
	o.log.SetOutput(cmd.ErrOrStderr())
	o.log.SetLevel(level)
	o.cfg = cfg

	o.log.WithFields(logrus.Fields{
		"max_prec":   cfg.MaxPrec,
		"scale":      cfg.Scale,
		"rounding":   cfg.Rounding,
		"trim_space": cfg.TrimSpace,
	}).Debug("settings loaded")
	return nil
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	ev := calc.Evaluator{
		Context: o.cfg.Context(),
		Scale:   o.cfg.Scale,
		Mode:    o.cfg.Rounding,
	}
	out := cmd.OutOrStdout()

	failed := 0
	evaluate := func(expr string) {
		entry := o.log.WithField("expr", expr)
		d, err := ev.Evaluate(expr)
		if err != nil {
			entry.WithError(err).Error("evaluation failed")
			failed++
			return
		}
		entry.WithField("result", d).Debug("evaluated")
		fmt.Fprintln(out, d)
	}

	if len(args) > 0 {
		for _, expr := range args {
			evaluate(expr)
		}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		// Operands may have any number of digits
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			evaluate(line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading expressions: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%v expression(s) failed", failed)
	}
	return nil
}
