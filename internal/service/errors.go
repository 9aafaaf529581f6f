package service

// ErrorKind classifies service errors so the API layer can map them to HTTP
// status codes by category instead of matching message text.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindExternal   ErrorKind = "external"
	KindInternal   ErrorKind = "internal"
)

// Error is a domain error with a kind. Sentinel values below are compared
// with errors.Is (pointer identity), while the API boundary switches on Kind.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// --- Error Definitions ---
var (
	ErrUserNotFound            = &Error{KindNotFound, "user not found"}
	ErrWorkoutNotFound         = &Error{KindNotFound, "workout not found"}
	ErrExerciseNotFound        = &Error{KindNotFound, "exercise not found"}
	ErrSessionNotFound         = &Error{KindNotFound, "workout session not found"}
	ErrSessionExerciseNotFound = &Error{KindNotFound, "exercise not part of this session"}

	ErrNoExercises       = &Error{KindValidation, "workout must contain at least one exercise"}
	ErrInvalidName       = &Error{KindValidation, "workout name must be between 3 and 255 characters"}
	ErrInvalidSeries     = &Error{KindValidation, "series must be a string of digits"}
	ErrInvalidVideoURL   = &Error{KindValidation, "video URL must be a valid URL"}
	ErrInvalidVisibility = &Error{KindValidation, "visibility must be PUBLIC or PRIVATE"}

	ErrSessionCompleted  = &Error{KindConflict, "workout session is already completed"}
	ErrSessionIncomplete = &Error{KindConflict, "workout session still has unmarked exercises"}

	ErrPlanGeneration  = &Error{KindExternal, "workout plan generation failed"}
	ErrTokenGeneration = &Error{KindInternal, "failed to generate authentication token"}
)
