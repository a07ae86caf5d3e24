package app

import (
	"bufio"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Auth state, loaded once at startup in protected mode
var (
	AuthUser     string
	authFilePath string
	authHash     []byte
)

const DefaultAuthFile = "auth.secret"

// Argon2id parameters (OWASP recommended)
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// resolveAuthFile returns the auth file path: AUTH_FILE env var, or
// auth.secret next to the binary.
func resolveAuthFile() (string, error) {
	if path := os.Getenv("AUTH_FILE"); path != "" {
		return path, nil
	}
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(execPath), DefaultAuthFile), nil
}

// LoadAuthCredentials loads the username and password hash from the auth
// file. A missing file is not an error: protected mode then runs without
// auth, which is only acceptable for local development.
func LoadAuthCredentials() error {
	path, err := resolveAuthFile()
	if err != nil {
		return err
	}
	authFilePath = path

	data, err := os.ReadFile(authFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("⚠️  ═══════════════════════════════════════════════════")
			log.Println("⚠️  NO AUTH FILE FOUND - PROTECTED MODE IS UNPROTECTED!")
			log.Println("⚠️  This is for LOCAL DEVELOPMENT ONLY.")
			log.Printf("⚠️  Expected file: %s", authFilePath)
			log.Println("⚠️  Create one with: ./sprint-kalender hash-password")
			log.Println("⚠️  ═══════════════════════════════════════════════════")
			return nil
		}
		return fmt.Errorf("failed to read auth file: %w", err)
	}

	// Auth file format: username:hash
	line := strings.TrimSpace(string(data))
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid auth file format (expected: username:hash)")
	}

	AuthUser = parts[0]
	authHash = []byte(parts[1])

	log.Printf("✅ Basic Auth enabled (user: %s, file: %s)", AuthUser, authFilePath)
	return nil
}

// HashPassword creates an Argon2id hash of the password, encoded as
// $argon2id$v=19$m=65536,t=1,p=4$salt$hash.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

// VerifyPassword verifies a password against an encoded Argon2id hash
func VerifyPassword(password, hash string) (bool, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format")
	}
	if parts[1] != "argon2id" {
		return false, fmt.Errorf("not an argon2id hash")
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("failed to parse hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}
	decodedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	computedHash := argon2.IDKey([]byte(password), salt, time, memory, uint8(threads), uint32(len(decodedHash)))

	return subtle.ConstantTimeCompare(decodedHash, computedHash) == 1, nil
}

// RequireAuth is a middleware that enforces Basic Auth with Argon2id.
// Both the username check and the password check run in constant time.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// No auth file loaded: dev mode, everything passes
		if authHash == nil {
			next(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(AuthUser)) == 1

		passMatch := false
		if ok && userMatch {
			var err error
			passMatch, err = VerifyPassword(pass, string(authHash))
			if err != nil {
				log.Printf("Error verifying password: %v", err)
				passMatch = false
			}
		}

		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="Sprintkalender"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			log.Printf("⚠️  Failed auth attempt from %s (user: %s)", r.RemoteAddr, user)
			return
		}

		next(w, r)
	}
}

// CreateAuthFile writes an auth.secret file holding username and hashed
// password. The file is created read-only (0400); an existing file is
// replaced only with the overwrite flag or interactive confirmation.
func CreateAuthFile(username, password string, overwrite bool) error {
	authFile, err := resolveAuthFile()
	if err != nil {
		return err
	}

	if _, err := os.Stat(authFile); err == nil {
		if !overwrite {
			fmt.Printf("Auth file already exists: %s\n", authFile)
			fmt.Print("Overwrite? (y/N): ")
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				return fmt.Errorf("aborted")
			}
		}
		// A 0400 file cannot be overwritten in place
		if err := os.Remove(authFile); err != nil {
			return fmt.Errorf("failed to remove existing auth file: %w", err)
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	content := fmt.Sprintf("%s:%s\n", username, hash)
	if err := os.WriteFile(authFile, []byte(content), 0400); err != nil {
		return fmt.Errorf("failed to write auth file: %w", err)
	}

	fmt.Printf("✅ Auth file created: %s (mode: 0400 read-only)\n", authFile)
	fmt.Printf("   Username: %s\n", username)
	return nil
}
