package tg

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 24 * time.Hour
	cleanupInterval   = 30 * time.Minute
)

// DialogueCache хранит состояние диалога каждого чата в памяти.
// Протухшие диалоги вычищаются и откатываются к Idle.
type DialogueCache struct {
	cache *cache.Cache
}

func NewDialogueCache() *DialogueCache {
	return &DialogueCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func keyToString(key int64) string {
	return fmt.Sprintf("%d", key)
}

// Get возвращает состояние чата. Если записи нет — Idle.
func (dc *DialogueCache) Get(chatID int64) DialogueState {
	value, exists := dc.cache.Get(keyToString(chatID))
	if !exists {
		return DialogueState{Name: StateIdle}
	}

	state, ok := value.(DialogueState)
	if !ok {
		return DialogueState{Name: StateIdle}
	}
	return state
}

func (dc *DialogueCache) Set(chatID int64, state DialogueState) {
	dc.cache.Set(keyToString(chatID), state, defaultExpiration)
}

// Delete сбрасывает диалог. Эквивалентно установке Idle.
func (dc *DialogueCache) Delete(chatID int64) {
	dc.cache.Delete(keyToString(chatID))
}
