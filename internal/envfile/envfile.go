package envfile

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rogue-scan/rogue-setup/internal/messages"
)

// Parse reads .env content into a key-value map.
// content is the raw file content; returns parsed key/value pairs or an error.
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	if content == "" {
		return env, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if !ok {
			continue
		}
		env[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}

	return env, nil
}

// parseLine parses a single KEY=VALUE line. ok is false for blank lines and
// comments. An optional "export " prefix is tolerated so files written for
// shell sourcing still load.
func parseLine(line string) (key, value string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	trimmed = strings.TrimPrefix(trimmed, "export ")

	eq := strings.Index(trimmed, "=")
	if eq < 0 {
		return "", "", false, fmt.Errorf(messages.EnvfileMissingEquals)
	}
	key = strings.TrimSpace(trimmed[:eq])
	if key == "" {
		return "", "", false, fmt.Errorf(messages.EnvfileMissingKey)
	}

	value = strings.TrimSpace(trimmed[eq+1:])
	value, err = decodeValue(value)
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}

// decodeValue strips matching single or double quotes and trailing comments
// from an unquoted value.
func decodeValue(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if raw[0] == '"' || raw[0] == '\'' {
		quote := raw[0]
		if len(raw) < 2 || raw[len(raw)-1] != quote {
			return "", fmt.Errorf(messages.EnvfileUnterminated)
		}
		return raw[1 : len(raw)-1], nil
	}
	if idx := strings.Index(raw, " #"); idx >= 0 {
		raw = strings.TrimSpace(raw[:idx])
	}
	return raw, nil
}
