package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snowball/internal/observ"
	"snowball/internal/prof"
)

var (
	activeProfile *prof.Session
	// activeTimer is nil unless --timings is set; observ.Timer accepts nil.
	activeTimer *observ.Timer
)

func setupProfiling(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = pf.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = pf.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = pf.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	timings, err := pf.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		activeTimer = observ.NewTimer()
	}
	if !opts.Enabled() {
		return nil
	}
	activeProfile, err = prof.Start(opts)
	return err
}

// finishProfiling stops profiles and prints the phase table. It runs once
// after the command, whatever its outcome.
func finishProfiling() {
	if err := activeProfile.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "snowball: %v\n", err)
	}
	activeProfile = nil
	if err := activeTimer.WriteSummary(os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "snowball: %v\n", err)
	}
	activeTimer = nil
}
