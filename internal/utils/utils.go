package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var repoNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// NormalizeRepoName trims whitespace and ".git" and lower-cases owner/repo,
// since GitHub names are case-insensitive.
func NormalizeRepoName(name string) (string, bool) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".git")
	if !repoNamePattern.MatchString(name) {
		return "", false
	}
	return strings.ToLower(name), true
}

// RepoNameFromURL takes owner/repo from the first two path segments.
func RepoNameFromURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return "", false
	}
	return NormalizeRepoName(parts[0] + "/" + parts[1])
}
