package vault

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/models"
)

type recordedCall struct {
	args  []string
	stdin []byte
}

type fakeRunner struct {
	calls []recordedCall

	// responses are consumed in call order
	responses []fakeResponse
}

type fakeResponse struct {
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) run(ctx context.Context, stdin []byte, args ...string) (string, string, error) {
	f.calls = append(f.calls, recordedCall{args: args, stdin: stdin})

	if len(f.responses) == 0 {
		return "", "", nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp.stdout, resp.stderr, resp.err
}

func newTestStore(runner *fakeRunner) *cliSecretStore {
	return &cliSecretStore{
		runner:         runner,
		account:        "ops@example.com",
		conflictMarker: "already exists",
		timeout:        5 * time.Second,
		logger:         logger.Nop(),
	}
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{{stdout: "  s3cret\n"}}}
	s := newTestStore(runner)

	value, err := s.Resolve(context.Background(), models.SecretReference{
		Vault: "secrets", Item: "api", Field: "token",
	})

	require.NoError(t, err)
	assert.Equal(t, "s3cret", value)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"read", "op://secrets/api/token"}, runner.calls[0].args)
}

func TestResolve_EmptyOutputIsNotFound(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{{stdout: "   \n"}}}
	s := newTestStore(runner)

	_, err := s.Resolve(context.Background(), models.SecretReference{
		Vault: "secrets", Item: "api", Field: "token",
	})

	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestResolve_CLIFailureIsNotFound(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{stderr: "item not found in vault secrets\n", err: errors.New("exit status 1")},
	}}
	s := newTestStore(runner)

	_, err := s.Resolve(context.Background(), models.SecretReference{
		Vault: "secrets", Item: "missing", Field: "token",
	})

	require.ErrorIs(t, err, ErrSecretNotFound)
	assert.Contains(t, err.Error(), "item not found")
}

func TestStore_CreateSucceedsWithoutEdit(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestStore(runner)

	err := s.Store(context.Background(), models.SecretReference{
		Vault: "secrets", Item: "env-file", Field: "content",
	}, []byte("KEY=value"))

	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t,
		[]string{"document", "create", "-", "--vault", "secrets", "--title", "env-file"},
		runner.calls[0].args)
	assert.Equal(t, []byte("KEY=value"), runner.calls[0].stdin)
}

func TestStore_ConflictFallsBackToEdit(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{stderr: "a document named \"env-file\" Already Exists", err: errors.New("exit status 1")},
		{},
	}}
	s := newTestStore(runner)

	err := s.Store(context.Background(), models.SecretReference{
		Vault: "secrets", Item: "env-file", Field: "content",
	}, []byte("KEY=value"))

	require.NoError(t, err)
	require.Len(t, runner.calls, 2)
	assert.Equal(t,
		[]string{"document", "edit", "env-file", "-", "--vault", "secrets"},
		runner.calls[1].args)
	assert.Equal(t, []byte("KEY=value"), runner.calls[1].stdin)
}

func TestStore_GenuineCreateFailureDoesNotEdit(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{stderr: "network unreachable", err: errors.New("exit status 6")},
	}}
	s := newTestStore(runner)

	err := s.Store(context.Background(), models.SecretReference{
		Vault: "secrets", Item: "env-file", Field: "content",
	}, []byte("KEY=value"))

	require.ErrorIs(t, err, ErrSecretWriteFailed)
	assert.Len(t, runner.calls, 1)
}

func TestStore_EditFailureIsWriteFailed(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{stderr: "already exists", err: errors.New("exit status 1")},
		{stderr: "permission denied", err: errors.New("exit status 1")},
	}}
	s := newTestStore(runner)

	err := s.Store(context.Background(), models.SecretReference{
		Vault: "secrets", Item: "env-file", Field: "content",
	}, []byte("KEY=value"))

	require.ErrorIs(t, err, ErrSecretWriteFailed)
	assert.Len(t, runner.calls, 2)
}

func TestIsAuthenticated_AccountListed(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{stdout: "URL              EMAIL\nexample.1password.com  ops@example.com\n"},
	}}
	s := newTestStore(runner)

	require.NoError(t, s.IsAuthenticated(context.Background()))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"account", "list"}, runner.calls[0].args)
}

func TestIsAuthenticated_AccountMissing(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{stdout: "URL  EMAIL\nexample.1password.com  other@example.com\n"},
	}}
	s := newTestStore(runner)

	assert.ErrorIs(t, s.IsAuthenticated(context.Background()), ErrNotAuthenticated)
}

func TestIsAuthenticated_CLIFailure(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{stderr: "no active session", err: errors.New("exit status 1")},
	}}
	s := newTestStore(runner)

	assert.ErrorIs(t, s.IsAuthenticated(context.Background()), ErrNotAuthenticated)
}

func TestIsAuthenticated_NoAccountConfigured(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{{stdout: "whatever"}}}
	s := newTestStore(runner)
	s.account = ""

	assert.NoError(t, s.IsAuthenticated(context.Background()))
}
