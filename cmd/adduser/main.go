// Command adduser creates a user record directly in the directory, bypassing
// the HTTP surface. Useful for seeding an environment before the API is
// reachable. The password is read from the terminal without echo.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/pixgate/internal/server"
	"github.com/dmitrijs2005/pixgate/internal/server/config"
	"github.com/dmitrijs2005/pixgate/internal/server/shared/db"
	"github.com/dmitrijs2005/pixgate/internal/server/users"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	cfg := config.LoadConfig()
	if cfg.DatabaseDSN == "" {
		log.Fatal("adduser requires a database DSN (-d flag or DATABASE_DSN)")
	}

	email, err := getSimpleText(bufio.NewReader(os.Stdin), "Enter email:", os.Stdout)
	if err != nil {
		log.Fatalf("error reading email: %v", err)
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Fatalf("error reading password: %v", err)
	}
	if len(password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	m, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer m.Close()

	svc := users.NewService(m.Users(), server.NewTokenCodec(cfg))

	user, err := svc.Register(context.Background(), email, string(password))
	if err != nil {
		log.Fatalf("error creating user: %v", err)
	}

	fmt.Printf("created user %s (%s)\n", user.Email, user.ID)
}

// getSimpleText prints a prompt to w and reads a single line of input from
// reader, trimming the trailing newline.
func getSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// getPassword prompts for a password and reads it from the terminal
// without echo.
func getPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
