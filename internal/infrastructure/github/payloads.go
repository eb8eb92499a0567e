package github

type ghUser struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
}

type ghRepository struct {
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

type ghBranch struct {
	Ref string `json:"ref"`
}

type ghPullRequest struct {
	Number  int      `json:"number"`
	Title   string   `json:"title"`
	Body    *string  `json:"body"`
	HTMLURL string   `json:"html_url"`
	Merged  bool     `json:"merged"`
	User    ghUser   `json:"user"`
	Head    ghBranch `json:"head"`
}

type ghPullRequestPayload struct {
	Action      string        `json:"action"`
	Number      int           `json:"number"`
	PullRequest ghPullRequest `json:"pull_request"`
	Repository  ghRepository  `json:"repository"`
	Sender      ghUser        `json:"sender"`
}

// ghIssueLink is present on an issue only when the issue is a pull request.
type ghIssueLink struct {
	HTMLURL string `json:"html_url"`
}

type ghIssue struct {
	Number      int          `json:"number"`
	Title       string       `json:"title"`
	Body        *string      `json:"body"`
	HTMLURL     string       `json:"html_url"`
	User        ghUser       `json:"user"`
	PullRequest *ghIssueLink `json:"pull_request"`
}

type ghComment struct {
	Body string `json:"body"`
	User ghUser `json:"user"`
}

type ghIssueCommentPayload struct {
	Action     string       `json:"action"`
	Issue      ghIssue      `json:"issue"`
	Comment    ghComment    `json:"comment"`
	Repository ghRepository `json:"repository"`
	Sender     ghUser       `json:"sender"`
}

type ghReview struct {
	State   string  `json:"state"`
	Body    *string `json:"body"`
	HTMLURL string  `json:"html_url"`
	User    ghUser  `json:"user"`
}

type ghPullRequestReviewPayload struct {
	Action      string        `json:"action"`
	Review      ghReview      `json:"review"`
	PullRequest ghPullRequest `json:"pull_request"`
	Repository  ghRepository  `json:"repository"`
	Sender      ghUser        `json:"sender"`
}
