package weread

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// LoadCookieFile reads a Netscape-format cookie export (the format
// browser extensions produce) and returns a Cookie header value.
func LoadCookieFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open cookie file: %w", err)
	}
	defer f.Close()

	var pairs []string
	scanner := bufio.NewScanner(f)
	// Cookie values can be long; the default token limit is too small.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Netscape format: domain, flag, path, secure, expiry, name, value.
		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			continue
		}
		name := strings.TrimSpace(fields[5])
		value := strings.TrimSpace(fields[6])
		if name != "" && value != "" {
			pairs = append(pairs, name+"="+value)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read cookie file: %w", err)
	}

	if len(pairs) == 0 {
		return "", fmt.Errorf("cookie file %s: %w: no cookies found", path, domain.ErrInvalidInput)
	}
	return strings.Join(pairs, "; "), nil
}
