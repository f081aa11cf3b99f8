// Package input loads a log file into memory and verifies it actually is
// a Huorong custom-protection log before the engine sees it.
package input

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hexwatch/acelens/internal/engine"
)

// ErrNotHuorongLog reports a readable file that fails the format
// signature check.
var ErrNotHuorongLog = errors.New("not a Huorong security log (SGuard and file-operation markers required)")

// Load reads the whole file. The parser works on one in-memory blob;
// inputs larger than memory are out of scope.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	return string(data), nil
}

// DetectFormat is a cheap signature check, not a format validation: the
// text must mention one of the SGuard scanner binaries, the file-operation
// field, and the custom protection rule marker.
func DetectFormat(text string) error {
	hasScanner := strings.Contains(text, "SGuard64") || strings.Contains(text, "SGuardSvc64")
	if hasScanner &&
		strings.Contains(text, engine.MarkerFileOp) &&
		strings.Contains(text, engine.MarkerRuleSignature) {
		return nil
	}
	return ErrNotHuorongLog
}
