package service

import (
	"sync"

	"github.com/Islam8171-lang/fryutt-bot/internal/domain"
)

// QuestionStore holds unanswered questions keyed by user id.
// One entry per user: a new question overwrites the previous one.
// Entries with no operator reply stay forever, there is no TTL.
type QuestionStore struct {
	mux       sync.RWMutex
	questions map[int64]domain.PendingQuestion
}

// NewQuestionStore creates an empty question store
func NewQuestionStore() *QuestionStore {
	return &QuestionStore{questions: make(map[int64]domain.PendingQuestion)}
}

// Put upserts the pending question for a user
func (s *QuestionStore) Put(q domain.PendingQuestion) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.questions[q.UserID] = q
}

// Get returns the pending question for a user, if any
func (s *QuestionStore) Get(userID int64) (domain.PendingQuestion, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	q, exists := s.questions[userID]
	return q, exists
}

// Take removes and returns the pending question for a user.
// A second Take for the same user fails until a new question arrives.
func (s *QuestionStore) Take(userID int64) (domain.PendingQuestion, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()

	q, exists := s.questions[userID]
	if exists {
		delete(s.questions, userID)
	}
	return q, exists
}

// Len returns the number of pending questions
func (s *QuestionStore) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.questions)
}
