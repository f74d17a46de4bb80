// Package gate implements the password-and-quiz sequence guarding the
// secret gallery as an explicit state machine with pure transitions.
//
// The flow is Locked -> PasswordChecked -> Q1 -> Q2 -> Q3 -> Unlocked,
// with a terminal Failed state after too many full-quiz mismatches.
// A transition never mutates its input; Apply returns the next session.
package gate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// State is one step of the gated reveal sequence.
type State int

const (
	Locked State = iota
	PasswordChecked
	Q1
	Q2
	Q3
	Unlocked
	Failed
)

var stateNames = map[State]string{
	Locked:          "locked",
	PasswordChecked: "password_checked",
	Q1:              "question_1",
	Q2:              "question_2",
	Q3:              "question_3",
	Unlocked:        "unlocked",
	Failed:          "failed",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Secrets holds the expected password and quiz answers. Free-text answers
// are compared case-insensitively after trimming; the rating is an exact
// numeric-string match.
type Secrets struct {
	Password    string
	Answer1     string
	Answer2     string // rating, "1".."10"
	Answer3     string
	MaxAttempts int
}

// DefaultSecrets returns the stock gate configuration.
func DefaultSecrets() Secrets {
	return Secrets{
		Password:    "lalleee",
		Answer1:     "Kappooo",
		Answer2:     "10",
		Answer3:     "Everything",
		MaxAttempts: 5,
	}
}

// Session is the in-memory state of one visitor's progress through the
// gates. The attempt counter only moves on a completed quiz submission
// that fails validation, or on an explicit reset.
type Session struct {
	State    State
	Answers  [3]string
	Attempts int
}

// New returns a fresh session at the first gate.
func New() Session {
	return Session{State: Locked}
}

// Event is an input to the state machine.
type Event interface{ isEvent() }

// SubmitPassword attempts the password gate.
type SubmitPassword struct{ Value string }

// Begin moves from the post-password intro screen to the first question.
type Begin struct{}

// SubmitAnswer answers the current question.
type SubmitAnswer struct{ Value string }

// Reset restarts the quiz from the Failed state with a cleared counter.
type Reset struct{}

func (SubmitPassword) isEvent() {}
func (Begin) isEvent()          {}
func (SubmitAnswer) isEvent()   {}
func (Reset) isEvent()          {}

// Validation errors. The session state is unchanged whenever one of these
// is returned.
var (
	ErrWrongPassword = errors.New("incorrect password")
	ErrEmptyAnswer   = errors.New("answer must not be empty")
	ErrRatingRange   = errors.New("rating must be a number between 1 and 10")
)

// MismatchError reports a completed quiz submission whose answers did not
// all match. The session has already looped back to the first question.
type MismatchError struct {
	Attempts    int
	MaxAttempts int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("incorrect answers: attempt %d of %d", e.Attempts, e.MaxAttempts)
}

// InvalidEventError reports an event that has no transition from the
// current state, e.g. answering before the password gate is passed.
type InvalidEventError struct {
	State State
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("event not valid in state %s", e.State)
}

// Apply runs one transition. It returns the next session and, when the
// event is rejected, an error; on error the returned session equals the
// input except where documented (a quiz mismatch resets to Q1 or lands in
// Failed while still returning an error).
func Apply(secrets Secrets, s Session, ev Event) (Session, error) {
	switch ev := ev.(type) {
	case SubmitPassword:
		return applyPassword(secrets, s, ev.Value)
	case Begin:
		if s.State != PasswordChecked {
			return s, &InvalidEventError{State: s.State}
		}
		s.State = Q1
		return s, nil
	case SubmitAnswer:
		return applyAnswer(secrets, s, ev.Value)
	case Reset:
		if s.State != Failed {
			return s, &InvalidEventError{State: s.State}
		}
		s.State = Q1
		s.Answers = [3]string{}
		s.Attempts = 0
		return s, nil
	default:
		return s, &InvalidEventError{State: s.State}
	}
}

func applyPassword(secrets Secrets, s Session, value string) (Session, error) {
	if s.State != Locked {
		return s, &InvalidEventError{State: s.State}
	}
	if !strings.EqualFold(value, secrets.Password) {
		return s, ErrWrongPassword
	}
	s.State = PasswordChecked
	return s, nil
}

func applyAnswer(secrets Secrets, s Session, value string) (Session, error) {
	switch s.State {
	case Q1:
		if strings.TrimSpace(value) == "" {
			return s, ErrEmptyAnswer
		}
		s.Answers[0] = value
		s.State = Q2
		return s, nil
	case Q2:
		rating, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || rating < 1 || rating > 10 {
			return s, ErrRatingRange
		}
		s.Answers[1] = strings.TrimSpace(value)
		s.State = Q3
		return s, nil
	case Q3:
		if strings.TrimSpace(value) == "" {
			return s, ErrEmptyAnswer
		}
		s.Answers[2] = value
		if answersMatch(secrets, s.Answers) {
			s.State = Unlocked
			return s, nil
		}
		s.Attempts++
		s.Answers = [3]string{}
		if s.Attempts >= secrets.MaxAttempts {
			s.State = Failed
		} else {
			s.State = Q1
		}
		return s, &MismatchError{Attempts: s.Attempts, MaxAttempts: secrets.MaxAttempts}
	default:
		return s, &InvalidEventError{State: s.State}
	}
}

func answersMatch(secrets Secrets, answers [3]string) bool {
	return textEqual(answers[0], secrets.Answer1) &&
		answers[1] == secrets.Answer2 &&
		textEqual(answers[2], secrets.Answer3)
}

func textEqual(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}
