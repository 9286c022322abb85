package util

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrAlreadySubmitted    = errors.New("assessment already submitted")
	ErrNotSubmitted        = errors.New("assessment not submitted yet")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
	ErrAnswerOutOfRange    = errors.New("answer value out of range")
	ErrIncompleteResponses = errors.New("responses incomplete")
	ErrScoreOutOfRange     = errors.New("score outside the 0-5 scale")
	ErrEmptyScores         = errors.New("no category scores supplied")
	ErrWorkbookBuildFailed = errors.New("failed to build workbook")
)
