package catalog

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Loader перечитывает справочники с диска (обычно замыкание над enums/dsl-каталогами).
type Loader func() (map[string]Directory, error)

// Watch следит за деревьями каталогов и перегружает реестр при изменениях.
// Неудачная загрузка или линт-ошибки оставляют старый реестр как есть.
// События приходят пачками (редакторы пишут во временные файлы), поэтому
// перезагрузка откладывается на debounce.
func Watch(ctx context.Context, reg *Registry, load Loader, roots []string, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	addTree := func(root string) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return nil // каталог может ещё не существовать
			}
			if d.IsDir() {
				_ = w.Add(path)
			}
			return nil
		})
	}
	for _, root := range roots {
		addTree(root)
	}

	go func() {
		defer w.Close()
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				// новые подкаталоги тоже берём под наблюдение
				if ev.Op.Has(fsnotify.Create) {
					addTree(ev.Name)
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("catalog watch: %v", err)
			case <-fire:
				fire = nil
				dirs, err := load()
				if err != nil {
					log.Printf("catalog reload failed, keeping old registry: %v", err)
					continue
				}
				if issues := Lint(dirs); len(issues) > 0 {
					log.Printf("catalog reload blocked by %d lint issue(s), keeping old registry", len(issues))
					continue
				}
				reg.Replace(dirs)
				log.Printf("catalog reloaded: %d directories, revision %s", reg.Len(), reg.Revision())
			}
		}
	}()
	return nil
}
