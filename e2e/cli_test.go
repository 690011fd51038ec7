package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snakesocial/snakesocial-go/internal/api"
	"github.com/snakesocial/snakesocial-go/internal/factory"
	"github.com/snakesocial/snakesocial-go/internal/jobs"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "snakectl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/snakectl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr      string
	simulator *jobs.Simulator
	shutdown  func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	simulator := jobs.NewSimulator(app.SpectateService, app.Clock, app.Random, jobs.SimulatorConfig{
		TickInterval: 50 * time.Millisecond,
		Games:        2,
	}, logger)
	require.NoError(t, simulator.Start(context.Background()))

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		LeaderboardService: app.LeaderboardService,
		HighscoreService:   app.HighscoreService,
		SpectateService:    app.SpectateService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/health")

	return &testServer{
		addr:      serverURL,
		simulator: simulator,
		shutdown: func() {
			simulator.Stop()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type leaderboardEntryResponse struct {
	ID       string `json:"id"`
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Mode     string `json:"mode"`
	Date     string `json:"date"`
}

type highScoreResponse struct {
	Score int `json:"score"`
}

type activePlayerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Mode     string `json:"mode"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AuthCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Signup
	output, err := cli.run("auth", "signup",
		"--username", "SnakeMaster",
		"--email", "master@snake.io",
		"--password", "password123")
	require.NoError(t, err, "output: %s", output)

	var signupResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &signupResp))
	assert.Equal(t, "SnakeMaster", signupResp.User.Username)
	assert.NotEmpty(t, signupResp.Token)

	// Me (token should be saved in token file)
	output, err = cli.run("auth", "me")
	require.NoError(t, err, "output: %s", output)

	var meResp userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &meResp))
	assert.Equal(t, "SnakeMaster", meResp.Username)
	assert.Equal(t, signupResp.User.ID, meResp.ID)

	// Logout
	output, err = cli.run("auth", "logout")
	require.NoError(t, err, "output: %s", output)

	// Me now fails; the session is revoked and the token file cleared
	_, err = cli.run("auth", "me")
	require.Error(t, err)

	// Login restores access
	output, err = cli.run("auth", "login",
		"--email", "master@snake.io",
		"--password", "password123")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("auth", "me")
	require.NoError(t, err, "output: %s", output)
}

func TestCLI_LeaderboardCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "signup",
		"--username", "PixelViper",
		"--email", "viper@snake.io",
		"--password", "password123")
	require.NoError(t, err, "output: %s", output)

	// Submit a score
	output, err = cli.run("leaderboard", "submit", "--score", "2100", "--mode", "pass-through")
	require.NoError(t, err, "output: %s", output)

	var entry leaderboardEntryResponse
	require.NoError(t, json.Unmarshal([]byte(output), &entry))
	assert.Equal(t, 1, entry.Rank)
	assert.Equal(t, 2100, entry.Score)
	assert.Equal(t, "PixelViper", entry.Username)

	// Read it back
	output, err = cli.run("leaderboard", "get")
	require.NoError(t, err, "output: %s", output)

	var entries []leaderboardEntryResponse
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "pass-through", entries[0].Mode)

	// Mode filter excludes it
	output, err = cli.run("leaderboard", "get", "--mode", "walls")
	require.NoError(t, err, "output: %s", output)

	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	assert.Empty(t, entries)
}

func TestCLI_HighscoreCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "signup",
		"--username", "NeonNoodle",
		"--email", "noodle@snake.io",
		"--password", "password123")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("highscore", "save", "--score", "150", "--mode", "walls")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("highscore", "get", "--mode", "walls")
	require.NoError(t, err, "output: %s", output)

	var hs highScoreResponse
	require.NoError(t, json.Unmarshal([]byte(output), &hs))
	assert.Equal(t, 150, hs.Score)
}

func TestCLI_SpectateCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("spectate", "list")
	require.NoError(t, err, "output: %s", output)

	var players []activePlayerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &players))
	require.Len(t, players, 2)

	output, err = cli.run("spectate", "get", players[0].ID)
	require.NoError(t, err, "output: %s", output)

	var player activePlayerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, players[0].ID, player.ID)
	assert.NotEmpty(t, player.Username)
}
