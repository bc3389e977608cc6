package config

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

const fallbackVersion = "0.1.0"

// GetVersion returns version from environment variable or calculates from git
func GetVersion() string {
	// CI/CD sets APP_VERSION
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	baseVersion := getBaseVersion("VERSION")
	if commitCount := getGitCommitCount(); commitCount > 0 {
		return baseVersion + "." + strconv.Itoa(commitCount)
	}
	return baseVersion
}

// getBaseVersion reads the base version from a VERSION file
func getBaseVersion(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return fallbackVersion
	}
	if v := strings.TrimSpace(string(content)); v != "" {
		return v
	}
	return fallbackVersion
}

// getGitCommitCount gets the commit count of HEAD, zero outside a repository
func getGitCommitCount() int {
	output, err := exec.Command("git", "rev-list", "--count", "HEAD").Output()
	if err != nil {
		return 0
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0
	}
	return count
}
