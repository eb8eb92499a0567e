package chat_repository

import (
	"context"
	ports "training-hub/internal/domain/ports/output"
	"training-hub/internal/domain/ports/output/realtime"
	"training-hub/internal/infrastructure/persistence/postgres"

	"github.com/jackc/pgx/v5"
)

type ParticipantRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewParticipantRepository(querier postgres.Querier, log ports.Logger) realtime.RoomAuthorizer {
	return &ParticipantRepository{querier: querier, log: log}
}

func (r *ParticipantRepository) IsParticipant(ctx context.Context, roomID string, userID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM chat_participants WHERE room_id = @room_id AND user_id = @user_id
		);
	`
	var ok bool
	if err := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"room_id": roomID, "user_id": userID}).Scan(&ok); err != nil {
		r.log.Error("IsParticipant failed", "room_id", roomID, "user_id", userID, "err", err)
		return false, err
	}
	return ok, nil
}
