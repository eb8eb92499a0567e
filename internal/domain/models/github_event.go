package models

import "strings"

const readyKeyword = "ready"

func IsReadySignal(body string) bool {
	return strings.Contains(strings.ToLower(body), readyKeyword)
}

type ReviewState string

const (
	ReviewStateApproved         ReviewState = "approved"
	ReviewStateChangesRequested ReviewState = "changes_requested"
	ReviewStateCommented        ReviewState = "commented"
)

const (
	PRActionOpened      = "opened"
	PRActionEdited      = "edited"
	PRActionSynchronize = "synchronize"
	PRActionReopened    = "reopened"
	PRActionClosed      = "closed"
)

type Actor struct {
	Login string
	ID    string
}

type CommentEvent struct {
	RepoName       string
	RepoURL        string
	Number         int
	Title          string
	Body           string
	URL            string
	AuthorGitHubID string
	IsPullRequest  bool
	CommentBody    string
	Commenter      Actor
}

type PullRequestEvent struct {
	Action         string
	RepoName       string
	RepoURL        string
	Number         int
	Title          string
	Body           string
	URL            string
	HeadRef        string
	Merged         bool
	AuthorGitHubID string
	Sender         Actor
}

type ReviewEvent struct {
	RepoName string
	Number   int
	State    ReviewState
	Body     string
	URL      string
	Reviewer Actor
}

type IdentitySubject struct {
	Body    string
	HeadRef string
	Title   string
	Actor   Actor
}
