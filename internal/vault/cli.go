// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/opsforge/secretsync/internal/config"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/models"
)

// commandRunner executes one vault CLI invocation. It exists so tests can
// substitute a fake without spawning subprocesses.
type commandRunner interface {
	run(ctx context.Context, stdin []byte, args ...string) (stdout, stderr string, err error)
}

type cliSecretStore struct {
	runner         commandRunner
	account        string
	conflictMarker string
	timeout        time.Duration

	logger *logger.Logger
}

// NewCLISecretStore constructs a [SecretStore] backed by the external vault
// CLI configured in cfg. Every invocation is bounded by cfg.CLITimeout so a
// hung CLI cannot wedge the caller.
func NewCLISecretStore(cfg config.Vault, logger *logger.Logger) SecretStore {
	return &cliSecretStore{
		runner:         &execRunner{binary: cfg.Binary},
		account:        cfg.Account,
		conflictMarker: strings.ToLower(cfg.ConflictMarker),
		timeout:        cfg.CLITimeout,
		logger:         logger,
	}
}

// Resolve implements [SecretStore]. It maps the reference to the CLI's read
// command using the "op://vault/item/field" addressing form.
func (s *cliSecretStore) Resolve(ctx context.Context, ref models.SecretReference) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stdout, stderr, err := s.runner.run(ctx, nil, "read", "op://"+ref.String())
	if err != nil {
		s.logger.Debug().Str("ref", ref.String()).Str("stderr", stderr).Msg("vault read failed")
		return "", fmt.Errorf("%w: %s: %s", ErrSecretNotFound, ref.String(), firstLine(stderr))
	}

	value := strings.TrimSpace(stdout)
	if value == "" {
		return "", fmt.Errorf("%w: %s: empty output", ErrSecretNotFound, ref.String())
	}

	return value, nil
}

// Store implements [SecretStore]. Create is attempted first; a create
// failure whose stderr carries the configured conflict marker falls back to
// an in-place edit of the same document, which makes repeated stores of
// identical content converge on a single vault item.
func (s *cliSecretStore) Store(ctx context.Context, ref models.SecretReference, content []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, stderr, err := s.runner.run(ctx, content,
		"document", "create", "-", "--vault", ref.Vault, "--title", ref.Item)
	if err == nil {
		return nil
	}

	if !s.isConflict(stderr) {
		return fmt.Errorf("%w: create %s: %s", ErrSecretWriteFailed, ref.Item, firstLine(stderr))
	}

	s.logger.Debug().Str("item", ref.Item).Msg("document exists, editing in place")

	_, stderr, err = s.runner.run(ctx, content,
		"document", "edit", ref.Item, "-", "--vault", ref.Vault)
	if err != nil {
		return fmt.Errorf("%w: edit %s: %s", ErrSecretWriteFailed, ref.Item, firstLine(stderr))
	}

	return nil
}

// IsAuthenticated implements [SecretStore]. It lists the CLI's accounts and
// checks that the configured account name appears in the output. When no
// account is configured, any successful listing counts as authenticated.
func (s *cliSecretStore) IsAuthenticated(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stdout, stderr, err := s.runner.run(ctx, nil, "account", "list")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotAuthenticated, firstLine(stderr))
	}

	if s.account != "" && !strings.Contains(stdout, s.account) {
		return fmt.Errorf("%w: account %q is not signed in", ErrNotAuthenticated, s.account)
	}

	return nil
}

// isConflict decides whether a create failure means "already exists" (safe
// to fall back to edit) rather than a genuine write failure. The marker is
// matched case-insensitively against stderr; detection is empirical since
// the CLI does not expose distinct exit codes for conflicts.
func (s *cliSecretStore) isConflict(stderr string) bool {
	return s.conflictMarker != "" && strings.Contains(strings.ToLower(stderr), s.conflictMarker)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// execRunner is the production commandRunner; it spawns the configured
// binary via exec.CommandContext so context expiry kills the subprocess.
type execRunner struct {
	binary string
}

func (r *execRunner) run(ctx context.Context, stdin []byte, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
