package lawcheck

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"gopkg.in/yaml.v3"
)

const (
	FormatAuto = "auto"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const ErrInvalidConfig errorkit.Error = "ErrInvalidConfig"

// Command is the algebralaws CLI command.
// Every flag can also be set through its environment variable.
type Command struct {
	Samples     int    `flag:"samples,n" env:"ALGEBRALAWS_SAMPLES" default:"256" desc:"number of random samples per check"`
	Seed        int64  `flag:"seed" env:"ALGEBRALAWS_SEED" default:"0" desc:"random seed, 0 picks one and reports it"`
	Concurrency int    `flag:"concurrency,c" env:"ALGEBRALAWS_CONCURRENCY" default:"4" desc:"checks running at once"`
	Format      string `flag:"format" env:"ALGEBRALAWS_FORMAT" default:"auto" enum:"auto,yaml,json" desc:"report format, auto is yaml on a terminal and json otherwise"`
	LogLevel    string `flag:"log-level" env:"ALGEBRALAWS_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" desc:"minimum level of the log written to stderr"`
	Checks      string `flag:"checks" env:"ALGEBRALAWS_CHECKS" desc:"comma separated check names, all checks when empty"`
	List        bool   `flag:"list" desc:"print the check names and exit"`

	// Terminal tells whether the report goes to an interactive terminal.
	Terminal bool
	Logger   *logging.Logger
	Catalog  []Check
}

func (cmd Command) Summary() string { return "check the algebraic laws of the native instances" }

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	catalog := cmd.catalog()

	if cmd.List {
		for _, c := range catalog {
			fmt.Fprintln(w, c.Name)
		}
		return
	}

	checks, err := cmd.selectChecks(catalog)
	if err != nil {
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(errOut(w), err.Error())
		return
	}

	runner := Runner{
		Checks:      checks,
		Samples:     cmd.Samples,
		Seed:        cmd.Seed,
		Concurrency: cmd.Concurrency,
		Logger:      cmd.logger(),
	}
	report, err := runner.Run(ctx)
	if err != nil {
		cli.HandleError(w, r, err)
		return
	}
	if err := Encode(w, cmd.format(), report); err != nil {
		cli.HandleError(w, r, err)
		return
	}
	if !report.Passed {
		w.ExitCode(cli.ExitCodeError)
	}
}

func (cmd Command) selectChecks(catalog []Check) ([]Check, error) {
	if cmd.Samples < 1 {
		return nil, ErrInvalidConfig.F("samples must be positive, got %d", cmd.Samples)
	}
	if cmd.Concurrency < 1 {
		return nil, ErrInvalidConfig.F("concurrency must be positive, got %d", cmd.Concurrency)
	}
	var names []string
	if cmd.Checks != "" {
		names = strings.Split(cmd.Checks, ",")
	}
	return Select(catalog, names...)
}

func (cmd Command) catalog() []Check {
	if cmd.Catalog != nil {
		return cmd.Catalog
	}
	return Catalog()
}

func (cmd Command) logger() *logging.Logger {
	if cmd.Logger == nil {
		return nil
	}
	l := cmd.Logger.Clone()
	if cmd.LogLevel != "" {
		l.Level = logging.Level(cmd.LogLevel)
	}
	return l
}

func (cmd Command) format() string {
	if cmd.Format != FormatAuto && cmd.Format != "" {
		return cmd.Format
	}
	if cmd.Terminal {
		return FormatYAML
	}
	return FormatJSON
}

// Encode writes the report in the given format.
func Encode(w io.Writer, format string, report Report) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		return ErrInvalidConfig.F("unknown format: %q", format)
	}
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		return ew.Stderr()
	}
	return w
}
