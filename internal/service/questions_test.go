package service

import (
	"testing"

	"github.com/Islam8171-lang/fryutt-bot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestQuestionStore_PutAndGet(t *testing.T) {
	store := NewQuestionStore()

	store.Put(domain.PendingQuestion{
		UserID:      123,
		DisplayName: "Иван Тестов",
		Question:    "Когда привоз?",
	})

	q, exists := store.Get(123)
	assert.True(t, exists)
	assert.Equal(t, "Когда привоз?", q.Question)
	assert.Equal(t, "Иван Тестов", q.DisplayName)
	assert.Equal(t, 1, store.Len())
}

func TestQuestionStore_PutOverwrites(t *testing.T) {
	store := NewQuestionStore()

	store.Put(domain.PendingQuestion{UserID: 123, Question: "первый вопрос"})
	store.Put(domain.PendingQuestion{UserID: 123, Question: "второй вопрос"})

	q, exists := store.Get(123)
	assert.True(t, exists)
	assert.Equal(t, "второй вопрос", q.Question)
	assert.Equal(t, 1, store.Len())
}

func TestQuestionStore_TakeIsExactlyOnce(t *testing.T) {
	store := NewQuestionStore()

	store.Put(domain.PendingQuestion{UserID: 123, Question: "вопрос"})

	q, exists := store.Take(123)
	assert.True(t, exists)
	assert.Equal(t, "вопрос", q.Question)

	// Second take fails until a new question arrives
	_, exists = store.Take(123)
	assert.False(t, exists)
	assert.Equal(t, 0, store.Len())
}

func TestQuestionStore_TakeUnknownUser(t *testing.T) {
	store := NewQuestionStore()

	_, exists := store.Take(999)

	assert.False(t, exists)
}
