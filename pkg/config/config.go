// Package config resolves the Figma credentials and file key from the environment,
// an optional .env file and the project's package.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kataras/figma-icons/pkg/figma"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvToken   = "FIGMA_TOKEN"
	EnvFileKey = "FIGMA_FILE_KEY"
	// EnvAPIURL optionally points the client at another API root, e.g. a proxy.
	EnvAPIURL = "FIGMA_API_URL"
)

// DefaultEnvFile is loaded when present; its absence is not an error.
const DefaultEnvFile = ".env"

// PackageFile holds the fallback file key under "figma.fileKey".
const PackageFile = "package.json"

var (
	ErrMissingToken   = errors.New(EnvToken + " is not set")
	ErrMissingFileKey = errors.New("no Figma file key: set " + EnvFileKey + " or figma.fileKey in " + PackageFile)
)

// Config is what an export run needs to talk to Figma.
type Config struct {
	AccessToken string
	FileKey     string
	// FileKeySource tells where FileKey came from: the environment or package.json.
	FileKeySource string
	// APIURL overrides the Figma API root when set.
	APIURL string
}

// LoadEnvFile loads variables from path without overriding ones already set.
// An empty path loads .env if it exists.
func LoadEnvFile(path string) error {
	if path == "" {
		err := godotenv.Load(DefaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", DefaultEnvFile, err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// Load reads the token and file key from the environment. When FIGMA_FILE_KEY is unset the
// key is taken from dir/package.json. The key may be given as a full Figma file URL.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		AccessToken: strings.TrimSpace(os.Getenv(EnvToken)),
		APIURL:      strings.TrimSpace(os.Getenv(EnvAPIURL)),
	}
	if cfg.AccessToken == "" {
		return nil, ErrMissingToken
	}

	key := strings.TrimSpace(os.Getenv(EnvFileKey))
	cfg.FileKeySource = EnvFileKey
	if key == "" {
		pkgKey, err := PackageFileKey(filepath.Join(dir, PackageFile))
		if err != nil {
			return nil, err
		}
		key = pkgKey
		cfg.FileKeySource = PackageFile
	}
	if key == "" {
		return nil, ErrMissingFileKey
	}

	fileKey, err := NormalizeFileKey(key)
	if err != nil {
		return nil, err
	}
	cfg.FileKey = fileKey

	return cfg, nil
}

// NormalizeFileKey accepts either a bare file key or a Figma file URL.
func NormalizeFileKey(v string) (string, error) {
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return figma.ExtractFileKey(v)
	}
	return v, nil
}

type packageJSON struct {
	Figma struct {
		FileKey string `json:"fileKey"`
	} `json:"figma"`
}

// PackageFileKey returns figma.fileKey from a package.json. A missing file yields an empty key.
func PackageFileKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}

	return strings.TrimSpace(pkg.Figma.FileKey), nil
}
