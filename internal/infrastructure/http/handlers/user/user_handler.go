package user

import (
	input "training-hub/internal/domain/ports/input"
	ports "training-hub/internal/domain/ports/output"
)

type UserHandler struct {
	userService input.UserInputPort
	log         ports.Logger
}

func NewUserHandler(userSvc input.UserInputPort, log ports.Logger) *UserHandler {
	return &UserHandler{userService: userSvc, log: log}
}
