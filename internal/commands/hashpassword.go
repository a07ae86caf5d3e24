package commands

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/klabast/wb-services/sprint-kalender/internal/app"
	"golang.org/x/term"
)

// HashPassword handles the hash-password subcommand: it prompts for
// credentials and writes the auth.secret file used by protected mode.
func HashPassword(args []string) {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)
	overwrite := fs.Bool("overwrite", false, "Overwrite existing auth file without asking")
	insecureUnmask := fs.Bool("insecure-unmask-password", false, "Show password as plain text (INSECURE!)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sprint-kalender hash-password [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Creates an auth.secret file with hashed password (Argon2id).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  AUTH_FILE    Path to auth file (default: ./auth.secret)\n")
	}
	fs.Parse(args)

	fmt.Print("Enter username: ")
	var username string
	if _, err := fmt.Scanln(&username); err != nil {
		fatalf("Error reading username: %v", err)
	}
	if username == "" {
		fatalf("Username cannot be empty")
	}

	var password, passwordConfirm string
	if *insecureUnmask {
		fmt.Fprintf(os.Stderr, "⚠️  WARNING: Password will be visible on screen!\n")
		fmt.Print("Enter password:   ")
		if _, err := fmt.Scanln(&password); err != nil {
			fatalf("Error reading password: %v", err)
		}
		fmt.Print("Confirm password: ")
		if _, err := fmt.Scanln(&passwordConfirm); err != nil {
			fatalf("Error reading password confirmation: %v", err)
		}
	} else {
		password = readPasswordWithMask("Enter password:   ")
		passwordConfirm = readPasswordWithMask("Confirm password: ")
	}

	if password == "" {
		fatalf("Password cannot be empty")
	}
	if password != passwordConfirm {
		fatalf("Passwords do not match")
	}

	if err := app.CreateAuthFile(username, password, *overwrite); err != nil {
		fatalf("Error: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// readPasswordWithMask reads password input and echoes asterisks. When
// the terminal cannot be put into raw mode, input is read hidden instead.
func readPasswordWithMask(prompt string) string {
	fmt.Print(prompt)

	oldState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		password, _ := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		return string(password)
	}
	defer term.Restore(int(syscall.Stdin), oldState)

	if _, err := term.MakeRaw(int(syscall.Stdin)); err != nil {
		password, _ := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		return string(password)
	}

	var password []byte
	reader := bufio.NewReader(os.Stdin)

	for {
		char, _, err := reader.ReadRune()
		if err != nil {
			break
		}

		switch char {
		case '\n', '\r': // Enter
			fmt.Println()
			return string(password)
		case 127, 8: // Backspace or Delete
			if len(password) > 0 {
				password = password[:len(password)-1]
				// Clear the echoed asterisk
				fmt.Print("\b \b")
			}
		case 3: // Ctrl+C
			fmt.Println()
			os.Exit(1)
		default:
			// Only accept printable characters
			if char >= 32 && char <= 126 {
				password = append(password, byte(char))
				fmt.Print("*")
			}
		}
	}

	fmt.Println()
	return string(password)
}
