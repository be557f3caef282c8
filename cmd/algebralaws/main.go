// Command algebralaws samples random values and checks the algebraic laws of the native instances.
//
// It exits with 0 when every law holds, 1 on a violation and 2 on invalid input.
//
//	ALGEBRALAWS_SAMPLES=1000 ALGEBRALAWS_CHECKS=field/rat,ring/int algebralaws
//	algebralaws -format json -seed 42
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"go.llib.dev/algebrakit/internal/lawcheck"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
	"gopkg.in/yaml.v3"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cli.Main(ctx, lawcheck.Command{
		Terminal: isTerminal(os.Stdout),
		Logger:   newLogger(),
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newLogger() *logging.Logger {
	l := &logging.Logger{Out: os.Stderr}
	if isTerminal(os.Stderr) {
		l.MarshalFunc = yaml.Marshal
		l.Separator = "---\n"
	}
	return l
}
