package catalog

import (
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Registry — in-memory реестр справочников. Каждая (пере)загрузка получает
// новый ULID-revision, чтобы клиенты могли отличать снапшоты.
type Registry struct {
	mu       sync.RWMutex
	dirs     map[string]Directory // FQN ("group.name") -> справочник
	revision string
	loadedAt time.Time
	entropy  io.Reader
}

// NewRegistry наполняет реестр и готов к работе
func NewRegistry(dirs map[string]Directory) *Registry {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	r := &Registry{
		dirs:    make(map[string]Directory, len(dirs)),
		entropy: ulid.Monotonic(src, 0),
	}
	r.Replace(dirs)
	return r
}

func (r *Registry) newRevision() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), r.entropy).String()
}

// Replace атомарно подменяет весь набор справочников (admin reload, fsnotify).
func (r *Registry) Replace(dirs map[string]Directory) {
	cp := make(map[string]Directory, len(dirs))
	for k, v := range dirs {
		cp[k] = v
	}
	r.mu.Lock()
	r.dirs = cp
	r.revision = r.newRevision()
	r.loadedAt = time.Now().UTC()
	r.mu.Unlock()
}

// Put добавляет/заменяет один справочник (import).
func (r *Registry) Put(d Directory) {
	r.mu.Lock()
	r.dirs[d.FQN()] = d
	r.revision = r.newRevision()
	r.mu.Unlock()
}

func (r *Registry) Revision() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

func (r *Registry) LoadedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadedAt
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.dirs)
}

// Get возвращает справочник по точному FQN.
func (r *Registry) Get(fqn string) (Directory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.dirs[fqn]
	return d, ok
}

// All возвращает копию карты (для линта/экспорта/pg-проекции).
func (r *Registry) All() map[string]Directory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := make(map[string]Directory, len(r.dirs))
	for k, v := range r.dirs {
		cp[k] = v
	}
	return cp
}

// NormalizeName возвращает FQN ("group.name") по паре {group, name}.
// Если group пустой, пытается найти уникальный справочник с таким именем среди всех групп.
func (r *Registry) NormalizeName(group, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	gl := strings.ToLower(strings.TrimSpace(group))
	nl := strings.ToLower(strings.TrimSpace(name))

	r.mu.RLock()
	defer r.mu.RUnlock()

	// 1) есть группа — ищем точное/регистронезависимое совпадение FQN
	if gl != "" {
		// сначала прямой ключ
		if _, ok := r.dirs[group+"."+name]; ok {
			return group + "." + name, true
		}
		// регистронезависимо
		for fqn := range r.dirs {
			dot := strings.IndexByte(fqn, '.')
			if dot <= 0 {
				continue
			}
			fg, fn := fqn[:dot], fqn[dot+1:]
			if strings.ToLower(fg) == gl && strings.ToLower(fn) == nl {
				return fqn, true
			}
		}
		return "", false
	}

	// 2) группы нет — ищем единственное уникальное имя среди всех
	var found string
	for fqn := range r.dirs {
		fn := fqn
		if dot := strings.IndexByte(fqn, '.'); dot > 0 {
			fn = fqn[dot+1:]
		}
		if strings.ToLower(fn) == nl {
			if found != "" { // неуникально
				return "", false
			}
			found = fqn
		}
	}
	if found != "" {
		return found, true
	}
	return "", false
}
