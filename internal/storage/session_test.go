package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

func TestSessionStorage_GetOrCreate(t *testing.T) {
	s := NewSessionStorage()

	first := s.GetOrCreate(10)
	first.MenuOpen = true

	second := s.GetOrCreate(10)
	assert.Same(t, first, second)
	assert.True(t, second.MenuOpen)
	assert.Equal(t, int64(10), second.ChatID)
}

func TestSessionStorage_Delete(t *testing.T) {
	s := NewSessionStorage()
	old := s.GetOrCreate(1)
	old.MenuOpen = true

	s.Delete(1)

	fresh := s.GetOrCreate(1)
	assert.NotSame(t, old, fresh)
	assert.False(t, fresh.MenuOpen)
}

func TestSessionStorage_Range(t *testing.T) {
	s := NewSessionStorage()
	for id := int64(1); id <= 3; id++ {
		s.GetOrCreate(id)
	}

	seen := map[int64]bool{}
	s.Range(func(sess *entities.PageSession) bool {
		seen[sess.ChatID] = true
		s.Delete(sess.ChatID)
		return true
	})

	assert.Len(t, seen, 3)
	remaining := 0
	s.Range(func(*entities.PageSession) bool {
		remaining++
		return true
	})
	assert.Zero(t, remaining)

	s.GetOrCreate(4)
	s.GetOrCreate(5)
	calls := 0
	s.Range(func(*entities.PageSession) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestSessionStorage_ConcurrentCreateReturnsOneSession(t *testing.T) {
	s := NewSessionStorage()

	var wg sync.WaitGroup
	results := make([]*entities.PageSession, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.GetOrCreate(99)
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
