package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/navs13/pkg/navs13"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Validate(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{
			name:   "valid",
			args:   []string{"756.2465.8935.64"},
			code:   0,
			stdout: "756.2465.8935.64 is valid.\n",
		},
		{
			name:   "valid split by the shell",
			args:   []string{"756", "2465", "8935", "64"},
			code:   0,
			stdout: "756.2465.8935.64 is valid.\n",
		},
		{
			name:   "too short",
			args:   []string{"756.246.8935.64"},
			code:   64,
			stderr: "756.246.8935.64 is invalid. Error code 64, description number of digits should be 13, found: 12",
		},
		{
			name:   "too long",
			args:   []string{"756.246.8935.64789"},
			code:   64,
			stderr: "found: 15",
		},
		{
			name:   "empty argument",
			args:   []string{""},
			code:   64,
			stderr: " is invalid. Error code 64, description number of digits should be 13, found: 0",
		},
		{
			name:   "country code",
			args:   []string{"471.9512.0028.88"},
			code:   65,
			stderr: "471.9512.0028.88 is invalid. Error code 65, description 471 isn't iso-3166 for Switzerland",
		},
		{
			name:   "checksum",
			args:   []string{"756.2465.8935.65"},
			code:   66,
			stderr: "756.2465.8935.65 is invalid. Error code 66, description 5 is an invalid EAN-13 check digit",
		},
		{
			name:   "strict layout",
			args:   []string{"-strict", "7562465893564"},
			code:   67,
			stderr: "Error code 67",
		},
		{
			name:   "strict canonical",
			args:   []string{"-strict", "756.2465.8935.64"},
			code:   0,
			stdout: "756.2465.8935.64 is valid.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)

			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.stdout, stdout)
			if tt.stderr != "" {
				assert.Contains(t, stderr, tt.stderr)
			}
		})
	}
}

func TestRun_ValidateQuietHasNoHints(t *testing.T) {
	code, _, stderr := runCLI(t, "-quiet", "471.9512.0028.88")

	assert.Equal(t, 65, code)
	assert.Equal(t, "471.9512.0028.88 is invalid. Error code 65, description 471 isn't iso-3166 for Switzerland\n", stderr)
}

func TestRun_ValidateVerbose(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-verbose", "756.2465.8935.65")

	assert.Equal(t, 66, code)
	assert.Contains(t, stderr, "Type: Invalid Checksum (exit code 66)")
	assert.Contains(t, stdout, "Rejected: 1")
}

func TestRun_WarnsAboutIgnoredFlags(t *testing.T) {
	code, stdout, stderr := runCLI(t, "-seed", "7", "756.2465.8935.64")

	assert.Equal(t, 0, code)
	assert.Equal(t, "756.2465.8935.64 is valid.\n", stdout)
	assert.Equal(t, "[WARN] -seed has no effect when validating\n", stderr)

	code, _, stderr = runCLI(t, "-quiet", "-seed", "7", "756.2465.8935.64")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
}

func TestRun_Create(t *testing.T) {
	code, stdout, _ := runCLI(t, "-create", "-number", "5")

	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		n, err := navs13.ParseCanonical(line)
		require.NoError(t, err, line)
		assert.Equal(t, line, n.String())
	}
}

func TestRun_CreateShorthandDefaultsToOne(t *testing.T) {
	code, stdout, _ := runCLI(t, "-c")

	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 1)
}

func TestRun_CreateSeeded(t *testing.T) {
	_, first, _ := runCLI(t, "-c", "-n", "3", "-seed", "2024")
	_, second, _ := runCLI(t, "-c", "-n", "3", "-seed", "2024")

	assert.Equal(t, first, second)
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"no arguments", nil, "Usage: navs13"},
		{"number too large", []string{"-c", "-n", "256"}, "expected a value between 1 and 255, got 256"},
		{"number zero", []string{"-c", "-n", "0"}, "expected a value between 1 and 255, got 0"},
		{"number without create", []string{"-n", "3"}, "hint: add -create to generate numbers"},
		{"input with create", []string{"-c", "756.2465.8935.64"}, "navs13 cannot be used together with -create"},
		{"unknown engine", []string{"-serve", ":0", "-engine", "chi"}, "expected one of echo, fiber, gin, got chi"},
		{"unknown flag", []string{"-bogus"}, "flag provided but not defined: -bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.stderr)
		})
	}
}

func TestRun_Help(t *testing.T) {
	for _, arg := range []string{"-help", "-h"} {
		code, _, stderr := runCLI(t, arg)

		assert.Equal(t, 0, code, arg)
		assert.Contains(t, stderr, "Only the structure is validated")
		assert.Contains(t, stderr, "-create")
		assert.Contains(t, stderr, "66  check digit mismatch")
	}
}

func TestRun_ServeStopsOnCancel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctx, cancel := context.WithCancel(context.Background())

	var stdout, stderr bytes.Buffer
	done := make(chan int, 1)
	go func() {
		done <- run(ctx, []string{"-serve", "127.0.0.1:0", "-engine", "gin", "-quiet"}, &stdout, &stderr)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case code := <-done:
		assert.Equal(t, 0, code, stderr.String())
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
