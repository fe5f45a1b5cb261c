package main

import (
	"log/slog"
	"os"

	"ai-planner-backend/config"
	"ai-planner-backend/controller"
	"ai-planner-backend/dao"
	"ai-planner-backend/router"
	"ai-planner-backend/service/chat"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	plans := dao.NewPlanStore(config.Cfg.Data.PlansFile)
	history := dao.NewHistoryStore(config.Cfg.Data.HistoryFile)

	llm := chat.NewQwenClient(config.Cfg.Model.Name, config.Cfg.Model.APIKey)
	svc := chat.NewService(llm, plans, chat.NewFileChatMessageHistory(history))
	controller.Init(svc, plans, history)

	r := router.Register()
	addr := ":" + config.Cfg.Server.Port
	slog.Info("backend server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}
