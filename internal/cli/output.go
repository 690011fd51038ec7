package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case *LeaderboardEntry:
		o.printSubmitResult(v)
	case HighScoreResult:
		fmt.Printf("High score: %d\n", v.Score)
	case []ActivePlayer:
		o.printActivePlayers(v)
	case ActivePlayer:
		o.printActivePlayer(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUser(u User) {
	fmt.Printf("ID:       %s\n", u.ID)
	fmt.Printf("Username: %s\n", u.Username)
	fmt.Printf("Email:    %s\n", u.Email)
	fmt.Printf("Created:  %s\n", u.CreatedAt)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token:    %s\n", a.Token)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("Leaderboard is empty")
		return
	}
	fmt.Printf("%-5s %-20s %-8s %-14s %s\n", "RANK", "USERNAME", "SCORE", "MODE", "DATE")
	for _, e := range entries {
		fmt.Printf("%-5d %-20s %-8d %-14s %s\n", e.Rank, e.Username, e.Score, e.Mode, e.Date)
	}
}

func (o *Output) printSubmitResult(e *LeaderboardEntry) {
	if e == nil {
		fmt.Println("Score submitted but not ranked (below the top 100)")
		return
	}
	fmt.Printf("Ranked #%d with %d points (%s)\n", e.Rank, e.Score, e.Mode)
}

func (o *Output) printActivePlayers(players []ActivePlayer) {
	if len(players) == 0 {
		fmt.Println("No active games")
		return
	}
	fmt.Printf("%-28s %-20s %-8s %-14s %s\n", "ID", "USERNAME", "SCORE", "MODE", "STARTED")
	for _, p := range players {
		fmt.Printf("%-28s %-20s %-8d %-14s %s\n", p.ID, p.Username, p.Score, p.Mode, p.StartedAt)
	}
}

func (o *Output) printActivePlayer(p ActivePlayer) {
	fmt.Printf("ID:        %s\n", p.ID)
	fmt.Printf("Username:  %s\n", p.Username)
	fmt.Printf("Score:     %d\n", p.Score)
	fmt.Printf("Mode:      %s\n", p.Mode)
	fmt.Printf("Direction: %s\n", p.Direction)
	fmt.Printf("Food:      (%d, %d)\n", p.Food.X, p.Food.Y)

	segments := make([]string, len(p.Snake))
	for i, pos := range p.Snake {
		segments[i] = fmt.Sprintf("(%d,%d)", pos.X, pos.Y)
	}
	fmt.Printf("Snake:     %s\n", strings.Join(segments, " "))
	fmt.Printf("Started:   %s\n", p.StartedAt)
}

// User response type (matches API)
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// AuthResult combines user and token
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	ID       string `json:"id"`
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Mode     string `json:"mode"`
	Date     string `json:"date"`
}

// HighScoreResult response type
type HighScoreResult struct {
	Score int `json:"score"`
}

// Position response type
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActivePlayer response type
type ActivePlayer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Score     int        `json:"score"`
	Mode      string     `json:"mode"`
	Snake     []Position `json:"snake"`
	Food      Position   `json:"food"`
	Direction string     `json:"direction"`
	StartedAt string     `json:"startedAt"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}
