package resolver

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"training-hub/internal/domain/models"
	ports "training-hub/internal/domain/ports/output"
	user "training-hub/internal/domain/ports/output/user"
	"training-hub/internal/domain/services"
	"training-hub/internal/utils"
)

var (
	bodyTraineePattern = regexp.MustCompile(`trainee_id:(\d+)`)
	refTraineePattern  = regexp.MustCompile(`trainee-(\d+)`)
)

type Extractor func(subject models.IdentitySubject) (int64, bool)

func matchID(re *regexp.Regexp, text string) (int64, bool) {
	if text == "" {
		return 0, false
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func FromBody(s models.IdentitySubject) (int64, bool) {
	return matchID(bodyTraineePattern, s.Body)
}

func FromHeadRef(s models.IdentitySubject) (int64, bool) {
	return matchID(refTraineePattern, s.HeadRef)
}

func FromTitle(s models.IdentitySubject) (int64, bool) {
	return matchID(refTraineePattern, s.Title)
}

func DefaultExtractors() []Extractor {
	return []Extractor{FromBody, FromHeadRef, FromTitle}
}

type IdentityResolver struct {
	extractors []Extractor
	log        ports.Logger
}

func NewIdentityResolver(log ports.Logger, extractors ...Extractor) services.IdentityResolver {
	if len(extractors) == 0 {
		extractors = DefaultExtractors()
	}
	return &IdentityResolver{extractors: extractors, log: log}
}

func (r *IdentityResolver) ResolveTrainee(ctx context.Context, users user.UserRepository, subject models.IdentitySubject) (int64, error) {
	for i, extract := range r.extractors {
		if id, ok := extract(subject); ok {
			r.log.Debug("trainee resolved from text", "strategy", i, "trainee_id", id)
			return id, nil
		}
	}

	if subject.Actor.Login == "" && subject.Actor.ID == "" {
		return 0, utils.ErrTraineeUnresolved
	}
	u, err := users.FindByGitHubIdentity(ctx, subject.Actor.Login, subject.Actor.ID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return 0, utils.ErrTraineeUnresolved
		}
		return 0, err
	}
	r.log.Debug("trainee resolved from github account", "login", subject.Actor.Login, "trainee_id", u.ID)
	return u.ID, nil
}
