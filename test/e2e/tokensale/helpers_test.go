package tokensale_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/blockbite/tokensale/pkg/jwtx"
	"github.com/blockbite/tokensale/pkg/salesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for token sale service end-to-end
 * tests. This includes container setup, admin token minting, and assertions.
 */

const (
	testImageName = "blockbite-tokensale-test:latest"

	adminSecret = "test-admin-secret-1234567890"
	issuer      = "blockbite-tokensale"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Token Sale Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Token Sale Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/tokensale/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupSaleContainer starts the service in a container configured for the
// given program and returns the base URL. Outgoing mail points at a dead
// SMTP port; delivery failures are logged by the service, not surfaced, so
// the API flows stay testable without a relay.
func setupSaleContainer(t *testing.T, program string, maxApplicants int) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"SALE_PROGRAM":        program,
			"SALE_MAX_APPLICANTS": fmt.Sprintf("%d", maxApplicants),
			"SALE_ADMIN_SECRET":   adminSecret,
			"SALE_ISSUER":         issuer,
			"SALE_DATABASE_FILE":  "/tokensale.db",
			"SMTP_HOST":           "127.0.0.1",
			"SMTP_PORT":           "2525",
			"ENV":                 "test",
			"LOG_LEVEL":           "info",
			"LOG_FORMAT":          "json",
			// Increase rate limits for E2E tests to prevent test failures
			// Tests often make many rapid requests which would otherwise hit the strict production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
			"RATELIMIT_LENIENT_REQUESTS":  "1000",
			"RATELIMIT_LENIENT_BURST":     "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// newAdminClient returns a client carrying a freshly minted admin token.
func newAdminClient(t *testing.T, baseURL string, scopes ...string) *salesdk.Client {
	t.Helper()

	token, err := jwtx.Mint(adminSecret, issuer, "e2e-admin", scopes, time.Hour)
	require.NoError(t, err)

	client := salesdk.NewClient(baseURL)
	client.AdminToken = token
	return client
}

// createGenesis seeds the referral graph and returns the genesis public id.
func createGenesis(t *testing.T, admin *salesdk.Client, email string) salesdk.ApplicationView {
	t.Helper()

	view, err := admin.CreateGenesis(t.Context(), salesdk.GenesisRequest{Email: email})
	require.NoError(t, err)
	require.NotEmpty(t, view.PublicID)
	return view
}

// assertAPIError checks that err is an *APIError with the given status and code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*salesdk.APIError)
	require.True(t, ok, "expected *salesdk.APIError, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
