package testtool

import (
	"net/http"
	_ "net/http/pprof" // 匯入後會自動註冊 pprof endpoint

	"social_chat_service/pkg/config"
	"social_chat_service/pkg/logger"

	"go.uber.org/zap"
)

// StartPprof 依設定啟動 pprof 監控伺服器, production 一律不啟動
func StartPprof(cfg config.PprofConfig) bool {
	if config.IsProduction() || !cfg.Enabled {
		logger.Log.Info("pprof is disabled")
		return false
	}

	// 只聽 127.0.0.1, 不對外開放
	go func() {
		logger.Log.Info("Starting pprof server", zap.String("addr", cfg.Addr))
		if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
			logger.Log.Error("pprof server failed", zap.Error(err))
		}
	}()
	return true
}

// pprof 提供以下分析端點：
// 	•	/debug/pprof/ → 顯示所有可用的分析數據
// 	•	/debug/pprof/goroutine → 顯示所有 Goroutines, 檢查連線 goroutine 是否洩漏
// 	•	/debug/pprof/heap → 顯示記憶體分配
// 	•	/debug/pprof/profile → 執行 30 秒 CPU 分析
//
// go tool pprof http://localhost:6060/debug/pprof/goroutine
