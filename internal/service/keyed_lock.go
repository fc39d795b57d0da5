package service

import "sync"

// KeyedLocker 按 key 串行化写操作（店铺 ID 或平台 key）
type KeyedLocker struct {
	mu      sync.Mutex
	entries map[string]*keyedLockEntry
}

type keyedLockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedLocker 创建按 key 加锁器
func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{entries: make(map[string]*keyedLockEntry)}
}

// Lock 获取 key 对应的锁，返回释放函数
func (l *KeyedLocker) Lock(key string) func() {
	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &keyedLockEntry{}
		l.entries[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.entries, key)
		}
		l.mu.Unlock()
	}
}
