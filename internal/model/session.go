package model

import "time"

// ResponseSet maps a category name to its ordered answer slots. A nil entry
// means the question has not been answered yet.
type ResponseSet map[string][]*int

// Clone deep-copies the response set so callers can read it without holding
// the session store lock.
func (r ResponseSet) Clone() ResponseSet {
	if r == nil {
		return nil
	}
	out := make(ResponseSet, len(r))
	for cat, answers := range r {
		copied := make([]*int, len(answers))
		for i, a := range answers {
			if a != nil {
				v := *a
				copied[i] = &v
			}
		}
		out[cat] = copied
	}
	return out
}

// AssessmentSession is the per-user in-memory state of one assessment run.
// It is replaced wholesale on reset, never partially mutated mid-computation.
// swagger:model AssessmentSession
type AssessmentSession struct {
	ID         string      `json:"id"`
	Responses  ResponseSet `json:"responses"`
	Submitted  bool        `json:"submitted"`
	CreatedAt  time.Time   `json:"createdAt"`
	LastActive time.Time   `json:"lastActive"`
}
