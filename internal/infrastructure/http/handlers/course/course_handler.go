package course

import (
	input "training-hub/internal/domain/ports/input"
	ports "training-hub/internal/domain/ports/output"
)

type CourseHandler struct {
	courseService input.CourseInputPort
	log           ports.Logger
}

func NewCourseHandler(s input.CourseInputPort, log ports.Logger) *CourseHandler {
	return &CourseHandler{courseService: s, log: log}
}
