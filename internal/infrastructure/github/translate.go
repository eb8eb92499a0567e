package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"training-hub/internal/domain/models"
)

const (
	EventPullRequest       = "pull_request"
	EventIssueComment      = "issue_comment"
	EventPullRequestReview = "pull_request_review"
	EventPing              = "ping"
)

var ErrMalformedPayload = errors.New("malformed webhook payload")

type Event struct {
	PullRequest *models.PullRequestEvent
	Comment     *models.CommentEvent
	Review      *models.ReviewEvent
}

func Translate(eventType string, body []byte) (*Event, error) {
	switch eventType {
	case EventPullRequest:
		var p ghPullRequestPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		return &Event{PullRequest: pullRequestEvent(&p)}, nil
	case EventIssueComment:
		var p ghIssueCommentPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if p.Action != "created" {
			return nil, nil
		}
		return &Event{Comment: commentEvent(&p)}, nil
	case EventPullRequestReview:
		var p ghPullRequestReviewPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if p.Action != "submitted" {
			return nil, nil
		}
		return &Event{Review: reviewEvent(&p)}, nil
	default:
		return nil, nil
	}
}

func actor(u ghUser) models.Actor {
	a := models.Actor{Login: u.Login}
	if u.ID != 0 {
		a.ID = strconv.FormatInt(u.ID, 10)
	}
	return a
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func pullRequestEvent(p *ghPullRequestPayload) *models.PullRequestEvent {
	number := p.PullRequest.Number
	if number == 0 {
		number = p.Number
	}
	return &models.PullRequestEvent{
		Action:         p.Action,
		RepoName:       p.Repository.FullName,
		RepoURL:        p.Repository.HTMLURL,
		Number:         number,
		Title:          p.PullRequest.Title,
		Body:           text(p.PullRequest.Body),
		URL:            p.PullRequest.HTMLURL,
		HeadRef:        p.PullRequest.Head.Ref,
		Merged:         p.PullRequest.Merged,
		AuthorGitHubID: actor(p.PullRequest.User).ID,
		Sender:         actor(p.Sender),
	}
}

func commentEvent(p *ghIssueCommentPayload) *models.CommentEvent {
	url := p.Issue.HTMLURL
	if p.Issue.PullRequest != nil && p.Issue.PullRequest.HTMLURL != "" {
		url = p.Issue.PullRequest.HTMLURL
	}
	commenter := actor(p.Comment.User)
	if commenter.Login == "" {
		commenter = actor(p.Sender)
	}
	return &models.CommentEvent{
		RepoName:       p.Repository.FullName,
		RepoURL:        p.Repository.HTMLURL,
		Number:         p.Issue.Number,
		Title:          p.Issue.Title,
		Body:           text(p.Issue.Body),
		URL:            url,
		AuthorGitHubID: actor(p.Issue.User).ID,
		IsPullRequest:  p.Issue.PullRequest != nil,
		CommentBody:    p.Comment.Body,
		Commenter:      commenter,
	}
}

func reviewEvent(p *ghPullRequestReviewPayload) *models.ReviewEvent {
	return &models.ReviewEvent{
		RepoName: p.Repository.FullName,
		Number:   p.PullRequest.Number,
		State:    models.ReviewState(strings.ToLower(p.Review.State)),
		Body:     text(p.Review.Body),
		URL:      p.Review.HTMLURL,
		Reviewer: actor(p.Review.User),
	}
}
