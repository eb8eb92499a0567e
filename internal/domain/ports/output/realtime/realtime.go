package realtime

import "context"

//go:generate mockery --name Publisher --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Publisher.go

// Publisher pushes an event to every live session of a user. Implementations
// must not block; an offline user is not an error.
type Publisher interface {
	PublishToUser(userID int64, event string, payload any) error
}

type NoopPublisher struct{}

func (NoopPublisher) PublishToUser(int64, string, any) error { return nil }

//go:generate mockery --name RoomAuthorizer --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename RoomAuthorizer.go

type RoomAuthorizer interface {
	IsParticipant(ctx context.Context, roomID string, userID int64) (bool, error)
}
