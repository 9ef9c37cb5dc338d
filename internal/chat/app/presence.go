package app

import (
	"sort"
	"sync"
)

// PresenceRegistry 記錄 user 目前綁定的連線, 只存在本機記憶體
//
// 同一個 user 以最後註冊的連線為準; 一條連線最多只綁一個 user.
type PresenceRegistry struct {
	mu    sync.RWMutex
	users map[string]string // userID -> connectionID
	conns map[string]string // connectionID -> userID
}

// NewPresenceRegistry create an empty PresenceRegistry
func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		users: make(map[string]string),
		conns: make(map[string]string),
	}
}

// Register 綁定 user 與連線, 覆蓋該 user 先前的連線
func (p *PresenceRegistry) Register(userID, connectionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if old, ok := p.users[userID]; ok && old != connectionID {
		delete(p.conns, old)
	}
	if prevUser, ok := p.conns[connectionID]; ok && prevUser != userID {
		if p.users[prevUser] == connectionID {
			delete(p.users, prevUser)
		}
	}

	p.users[userID] = connectionID
	p.conns[connectionID] = userID
}

// Unregister 只依連線移除, 已被新連線覆蓋的 user 不受影響
func (p *PresenceRegistry) Unregister(connectionID string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	userID, ok := p.conns[connectionID]
	if !ok {
		return "", false
	}
	delete(p.conns, connectionID)
	if p.users[userID] == connectionID {
		delete(p.users, userID)
	}
	return userID, true
}

// Lookup user 目前的連線
func (p *PresenceRegistry) Lookup(userID string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	connectionID, ok := p.users[userID]
	return connectionID, ok
}

// ListOnlineUserIDs 線上 user 快照, 已排序, 沒有人時回傳空 slice
func (p *PresenceRegistry) ListOnlineUserIDs() []string {
	p.mu.RLock()
	ids := make([]string, 0, len(p.users))
	for userID := range p.users {
		ids = append(ids, userID)
	}
	p.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Len online user count
func (p *PresenceRegistry) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.users)
}
