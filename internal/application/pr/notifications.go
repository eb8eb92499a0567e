package pr

import (
	"fmt"
	"training-hub/internal/domain/models"
	"training-hub/internal/utils"
)

const (
	titleReadyForReview   = "New Pull Request Ready for Review"
	titleUpdated          = "Pull Request Updated"
	titleMerged           = "Pull Request Merged"
	titleClosed           = "Pull Request Closed"
	titleApproved         = "Pull Request Approved"
	titleChangesRequested = "Changes Requested"
	titleRejected         = "Pull Request Rejected"
)

func prLink(pr *models.PullRequest) *string {
	link := fmt.Sprintf("/pull-requests/%s", pr.ID)
	return &link
}

func prRef(pr *models.PullRequest) string {
	return fmt.Sprintf("%s#%d", pr.RepoName, pr.PRNumber)
}

func draftsFor(recipients []int64, title, message string, link *string) []*models.Notification {
	recipients = utils.UniqueInt64s(recipients)
	res := make([]*models.Notification, 0, len(recipients))
	for _, id := range recipients {
		res = append(res, &models.Notification{
			UserID:  id,
			Type:    models.NotificationTypePR,
			Title:   title,
			Message: message,
			LinkTo:  link,
		})
	}
	return res
}

func readyDrafts(pr *models.PullRequest, trainerIDs []int64) []*models.Notification {
	msg := fmt.Sprintf("%q (%s) is ready for review.", pr.Title, prRef(pr))
	return draftsFor(trainerIDs, titleReadyForReview, msg, prLink(pr))
}

func updatedDrafts(pr *models.PullRequest, trainerIDs []int64) []*models.Notification {
	msg := fmt.Sprintf("%q (%s) has new changes.", pr.Title, prRef(pr))
	return draftsFor(trainerIDs, titleUpdated, msg, prLink(pr))
}

func closedDrafts(pr *models.PullRequest, merged bool) []*models.Notification {
	if merged {
		msg := fmt.Sprintf("Your pull request %q (%s) was merged.", pr.Title, prRef(pr))
		return draftsFor([]int64{pr.TraineeID}, titleMerged, msg, prLink(pr))
	}
	msg := fmt.Sprintf("Your pull request %q (%s) was closed without merging.", pr.Title, prRef(pr))
	return draftsFor([]int64{pr.TraineeID}, titleClosed, msg, prLink(pr))
}

func reviewDrafts(pr *models.PullRequest, state models.ReviewState) []*models.Notification {
	switch state {
	case models.ReviewStateApproved:
		msg := fmt.Sprintf("Your pull request %q (%s) was approved.", pr.Title, prRef(pr))
		return draftsFor([]int64{pr.TraineeID}, titleApproved, msg, prLink(pr))
	default:
		msg := fmt.Sprintf("A reviewer requested changes on %q (%s).", pr.Title, prRef(pr))
		return draftsFor([]int64{pr.TraineeID}, titleChangesRequested, msg, prLink(pr))
	}
}

func decisionDrafts(pr *models.PullRequest) []*models.Notification {
	if pr.Status == models.PRStatusApproved {
		return reviewDrafts(pr, models.ReviewStateApproved)
	}
	msg := fmt.Sprintf("Your pull request %q (%s) was rejected.", pr.Title, prRef(pr))
	return draftsFor([]int64{pr.TraineeID}, titleRejected, msg, prLink(pr))
}
