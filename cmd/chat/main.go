// Interactive dialog CLI for exploring datasets and building charts.
//
// Configuration (env vars):
//
//	VIZIER_ENGINE=sqlite|postgres|mysql  (optional, prompted if absent)
//	DATABASE_URL=<dsn>                   (optional, auto-connects if set)
//
// Usage:
//
//	go run ./cmd/chat
package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
)

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "[Config] ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	engine := loadEngine(rl)
	chat := NewChat(engine, rl)

	// Set up the completer now that we have a session.
	comp := &chatCompleter{chat: chat}
	_ = rl.SetConfig(&readline.Config{
		Prompt:          "you> ",
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    comp,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		fmt.Printf("[Config] Connecting via DATABASE_URL...\n")
		if err := chat.Execute("connect " + dsn); err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: DATABASE_URL connect failed: %v\n", err)
		}
	} else {
		loadConnection(rl, chat)
	}

	fmt.Println()
	chat.Greet()
	fmt.Println()

	rl.SetPrompt("you> ")
	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := chat.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	if chat.conn != nil {
		_ = chat.conn.close()
	}
	fmt.Println("Goodbye!")
}

func loadEngine(rl *readline.Instance) string {
	engine := strings.TrimSpace(strings.ToLower(os.Getenv("VIZIER_ENGINE")))
	if engine != "" {
		if _, ok := driverName[engine]; !ok {
			fmt.Fprintf(os.Stderr, "Warning: invalid VIZIER_ENGINE=%q, defaulting to sqlite\n", engine)
			return "sqlite"
		}
		fmt.Printf("[Config] Engine: %s (from VIZIER_ENGINE)\n", engine)
		return engine
	}

	choice := prompt(rl, "Select engine (sqlite, postgres, mysql)", "sqlite")
	choice = strings.TrimSpace(strings.ToLower(choice))
	if choice != "" {
		if _, ok := driverName[choice]; !ok {
			fmt.Fprintf(os.Stderr, "Warning: unknown engine %q, defaulting to sqlite\n", choice)
			return "sqlite"
		}
		fmt.Printf("[Config] Engine: %s\n", choice)
		return choice
	}
	fmt.Println("[Config] Engine: sqlite")
	return "sqlite"
}

func loadConnection(rl *readline.Instance, chat *Chat) {
	var dsn string
	switch chat.engine {
	case "sqlite":
		dsn = buildSQLiteDSN(rl)
	case "mysql":
		dsn = buildMySQLDSN(rl)
	default:
		dsn = buildPostgresDSN(rl)
	}

	if dsn == "" {
		fmt.Println("[Config] No connection configured — use 'connect <dsn>' later")
		return
	}

	fmt.Printf("[Config] DSN: %s\n", sanitizeDSN(dsn))
	if err := chat.Execute("connect " + dsn); err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: connect failed: %v\n", err)
		fmt.Println("[Config] Use 'connect <dsn>' later to retry")
	}
}

// prompt prints a label with an optional default and returns the user's input
// (or the default if they press enter).
func prompt(rl *readline.Instance, label, defaultVal string) string {
	if rl == nil {
		return defaultVal
	}
	if defaultVal != "" {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s [%s]: ", label, defaultVal))
	} else {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s: ", label))
	}
	defer rl.SetPrompt("you> ")
	line, err := rl.ReadLine()
	if err != nil {
		return defaultVal
	}
	val := strings.TrimSpace(line)
	if val == "" {
		return defaultVal
	}
	return val
}

func buildSQLiteDSN(rl *readline.Instance) string {
	fmt.Println("[Config] SQLite connection setup (the demo schema is seeded automatically):")
	return prompt(rl, "Database path", "viz.db")
}

func buildPostgresDSN(rl *readline.Instance) string {
	fmt.Println("[Config] PostgreSQL connection setup:")

	defaultUser := "postgres"
	if u, err := user.Current(); err == nil && u.Username != "" {
		defaultUser = u.Username
	}

	dbUser := prompt(rl, "User", defaultUser)
	dbPass := prompt(rl, "Password", "")
	host := prompt(rl, "Host", "localhost")
	port := prompt(rl, "Port", "5432")
	dbName := prompt(rl, "Database", dbUser)
	sslMode := prompt(rl, "SSL mode (disable/require/verify-full)", "disable")

	var userInfo *url.Userinfo
	if dbPass != "" {
		userInfo = url.UserPassword(dbUser, dbPass)
	} else {
		userInfo = url.User(dbUser)
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     host + ":" + port,
		Path:     "/" + dbName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func buildMySQLDSN(rl *readline.Instance) string {
	fmt.Println("[Config] MySQL connection setup:")

	dbUser := prompt(rl, "User", "root")
	dbPass := prompt(rl, "Password", "")
	host := prompt(rl, "Host", "localhost")
	port := prompt(rl, "Port", "3306")
	dbName := prompt(rl, "Database", "")

	if dbName == "" {
		return ""
	}

	// Format: user:pass@tcp(host:port)/dbname
	var auth string
	if dbPass != "" {
		auth = dbUser + ":" + dbPass
	} else {
		auth = dbUser
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s", auth, host, port, dbName)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vizier_history")
}
