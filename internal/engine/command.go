package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultBinary is the verifier executable name used when none is given.
const DefaultBinary = "esbmc"

// ErrUnsupportedFile is returned for files esbmc cannot verify.
var ErrUnsupportedFile = errors.New("unsupported source file")

// supportedExtensions lists the source languages esbmc accepts.
var supportedExtensions = []string{"c", "cpp", "sol", "jimple"}

// SupportedExtensions returns the accepted file extensions, without dots.
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}

// CommandLine renders "<binary> <file> <flags>" for a source file. It only
// builds the string; nothing is executed.
func CommandLine(binary, file, flags string) (string, error) {
	if strings.TrimSpace(file) == "" {
		return "", fmt.Errorf("%w: no file given", ErrUnsupportedFile)
	}

	ext := strings.TrimPrefix(filepath.Ext(file), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: '%s' has no extension", ErrUnsupportedFile, file)
	}
	if !isSupported(ext) {
		return "", fmt.Errorf("%w: '.%s' is not one of .%s", ErrUnsupportedFile, ext, strings.Join(supportedExtensions, ", ."))
	}

	if binary == "" {
		binary = DefaultBinary
	}

	parts := []string{quote(binary), quote(file)}
	if flags = strings.TrimSpace(flags); flags != "" {
		parts = append(parts, flags)
	}
	return strings.Join(parts, " "), nil
}

func isSupported(ext string) bool {
	for _, s := range supportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// quote wraps s in single quotes when it contains shell-significant characters.
func quote(s string) string {
	if !strings.ContainsAny(s, " \t\n'\"$`\\") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
