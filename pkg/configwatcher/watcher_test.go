package configwatcher_test

import (
	"course_studio_backend/internal/config"
	"course_studio_backend/pkg/configwatcher"
	"course_studio_backend/pkg/logger"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

const baseConfig = `server:
  port: "8080"
  mode: debug
preview:
  session_ttl_minutes: 120
`

const updatedConfig = `server:
  port: "9090"
  mode: debug
preview:
  session_ttl_minutes: 120
`

// 首个写事件就要能穿过防抖触发重载；连续两次写只合并成一次
func TestWatchConfigReloadsAfterWrite(t *testing.T) {
	logger.Log = zap.NewNop()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(baseConfig), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	reloaded := make(chan interface{}, 4)
	go configwatcher.WatchConfig(path, &config.Config{}, func(cfg interface{}) {
		reloaded <- cfg
	})

	// 等 watcher 挂上监听再触发写事件
	time.Sleep(300 * time.Millisecond)
	if err := os.WriteFile(path, []byte(updatedConfig), 0644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte(updatedConfig), 0644); err != nil {
		t.Fatalf("rewrite config again: %v", err)
	}

	select {
	case raw := <-reloaded:
		cfg, ok := raw.(*config.Config)
		if !ok {
			t.Fatalf("reloader got %T, want *config.Config", raw)
		}
		if cfg.Server.Port != "9090" {
			t.Errorf("reloaded port = %q, want 9090", cfg.Server.Port)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config write never triggered a reload")
	}
}
