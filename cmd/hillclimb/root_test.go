package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	test "testing"

	"nickandperla.net/hillclimb"
)

func TestProfileWrittenWhenCommandFails(t *test.T) {
	dir := t.TempDir()

	cmd, stopProfile := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	// history without --db fails inside RunE
	cmd.SetArgs([]string{"--profile", dir, "history"})

	err := cmd.ExecuteContext(context.Background())
	stopProfile()

	if !errors.Is(err, hillclimb.ErrInvalidConfig) {
		t.Fatalf("Expected history to fail with ErrInvalidConfig, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("CPU profile not written after a failed command: %v", err)
	}

	// stopping twice is harmless
	stopProfile()
}

func TestStopProfileWithoutFlag(t *test.T) {
	cmd, stopProfile := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"history"})

	_ = cmd.ExecuteContext(context.Background())
	stopProfile()
}
