package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// SourceGit reads descriptors from a git history.
	SourceGit = "git"
	// SourceArchive reads descriptors from a directory of archived builds.
	SourceArchive = "archive"

	// DefaultDescriptor is used when a job configures no descriptor path.
	DefaultDescriptor = "pom.xml"
	// DefaultServerAddr is the listen address of the HTTP server.
	DefaultServerAddr = ":8080"
)

// Settings is the top-level configuration for depdiff.
type Settings struct {
	Jobs   []Job        `yaml:"jobs"`
	Server ServerConfig `yaml:"server"`
}

// Job describes a build job whose descriptor history can be compared.
type Job struct {
	Name       string         `yaml:"name"`
	Source     string         `yaml:"source"`      // "git" or "archive"
	Repository string         `yaml:"repository"`  // git only: local path or clone URL
	Token      string         `yaml:"token"`       // git only: inline, ${ENV_VAR}, or file path
	ArchiveDir string         `yaml:"archive_dir"` // archive only: job directory
	Descriptor string         `yaml:"descriptor"`  // path of the descriptor inside a snapshot
	ConfigFile string         `yaml:"config_file"` // job configuration holding <rootPOM>
	Builds     map[int]string `yaml:"builds"`      // git only: build number -> revision
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DescriptorPath returns the configured descriptor path or the default one.
func (it Job) DescriptorPath() string {
	if it.Descriptor != "" {
		return it.Descriptor
	}
	return DefaultDescriptor
}

// FindJob returns the job with the given name.
func (it *Settings) FindJob(name string) (Job, error) {
	for _, job := range it.Jobs {
		if job.Name == name {
			return job, nil
		}
	}
	return Job{}, fmt.Errorf("%w: %q", ErrJobNotFound, name)
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment
// variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return ParseSettings(data)
}

// ParseSettings parses configuration content already loaded in memory.
func ParseSettings(data []byte) (*Settings, error) {
	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for i := range settings.Jobs {
		job := &settings.Jobs[i]
		job.Repository = expandEnv(job.Repository)
		job.ArchiveDir = expandEnv(job.ArchiveDir)
		job.ConfigFile = expandEnv(job.ConfigFile)
		job.Token = resolveToken(job.Token)
	}

	if settings.Server.Addr == "" {
		settings.Server.Addr = DefaultServerAddr
	}

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depdiff.yaml",
		".depdiff.yml",
		"depdiff.yaml",
		"depdiff.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	resolved := expandEnv(raw)
	if resolved == "" {
		return resolved
	}

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if len(settings.Jobs) == 0 {
		return errors.New("at least one job must be configured")
	}

	seen := make(map[string]bool, len(settings.Jobs))
	for i, job := range settings.Jobs {
		if job.Name == "" {
			return fmt.Errorf("jobs[%d].name is required", i)
		}
		if seen[job.Name] {
			return fmt.Errorf("jobs[%d].name %q is duplicated", i, job.Name)
		}
		seen[job.Name] = true

		switch job.Source {
		case SourceGit:
			if job.Repository == "" {
				return fmt.Errorf("jobs[%d].repository is required for git jobs", i)
			}
		case SourceArchive:
			if job.ArchiveDir == "" {
				return fmt.Errorf("jobs[%d].archive_dir is required for archive jobs", i)
			}
		case "":
			return fmt.Errorf("jobs[%d].source is required", i)
		default:
			return fmt.Errorf(
				"jobs[%d].source %q is not supported (expected %s or %s)",
				i, job.Source, SourceGit, SourceArchive,
			)
		}
	}

	return nil
}
