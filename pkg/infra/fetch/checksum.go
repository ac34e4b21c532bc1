package fetch

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ComputeSHA256 returns the lowercase hex SHA-256 digest of the file at path
func ComputeSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open file for hashing", goerr.V("path", path))
	}
	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", goerr.Wrap(err, "failed to hash file", goerr.V("path", path))
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifySHA256 reports whether the file at path has the expected digest
// (case-insensitive). It also returns the computed digest.
func VerifySHA256(path, expected string) (bool, string, error) {
	got, err := ComputeSHA256(path)
	if err != nil {
		return false, "", err
	}
	return strings.EqualFold(got, strings.TrimSpace(expected)), got, nil
}
