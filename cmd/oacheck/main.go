// Command oacheck checks ./openapi.yaml against a fixed set of OpenAPI 3.0
// structural rules and prints a report. It takes no arguments.
//
// Exit status is 0 when the document has no errors (warnings are allowed)
// and 1 otherwise.
package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/erraggy/oacheck"
	"github.com/erraggy/oacheck/cmd/oacheck/commands"
	"github.com/erraggy/oacheck/loader"
)

func main() {
	os.Exit(run())
}

func run() int {
	zl := newLogger()
	logger := loader.NewZapAdapter(zl.Sugar())
	defer func() { _ = logger.Sync() }()

	out := commands.Run(commands.Config{
		Path:    commands.DefaultPath,
		Logger:  logger,
		Color:   term.IsTerminal(int(os.Stdout.Fd())),
		Version: oacheck.Version(),
	})
	commands.Print(os.Stdout, os.Stderr, out)
	return commands.ExitCode(out)
}

// newLogger builds a console logger on stderr that only emits warnings and
// above, so stdout carries nothing but the report.
func newLogger() *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.WarnLevel,
	)
	return zap.New(core)
}
