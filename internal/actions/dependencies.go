package actions

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/footprint-tools/sealion/internal/app"
	"github.com/footprint-tools/sealion/internal/config"
)

type actionDependencies struct {
	Version func() string
	Now     func() time.Time

	// config file editing
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Set        func([]string, string, string) ([]string, bool)
	Unset      func([]string, string) ([]string, bool)

	// interactive session
	Stdin      io.Reader
	Stdout     io.Writer
	IsTerminal func() bool
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Version:    func() string { return app.Version },
		Now:        time.Now,
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Set:        config.Set,
		Unset:      config.Unset,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}
