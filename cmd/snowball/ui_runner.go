package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"snowball/internal/driver"
	"snowball/internal/source"
	"snowball/internal/ui"
)

type parseDirOutcome struct {
	fs      *source.FileSet
	results []driver.ParseDirResult
	err     error
}

// runParseDirWithUI runs ParseDir while a Bubble Tea progress view renders
// its events on stderr.
func runParseDirWithUI(ctx context.Context, title, dir string, opts driver.DirOptions) (*source.FileSet, []driver.ParseDirResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseDirOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, opts)
		outcomeCh <- parseDirOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// UI мог закрыться раньше (Ctrl+C): дочитываем события, чтобы разбор не встал
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
