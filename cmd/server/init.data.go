package main

import (
	"context"

	systemsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/system/service"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/logger"
)

// InitDefaultData seed user mặc định và dữ liệu mẫu khi server chạy ở InitMode.
// Seed là idempotent nên chạy lại nhiều lần không tạo bản ghi trùng.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("InitMode disabled, skipping default data seed")
		return
	}

	initService, err := systemsvc.NewSystemService()
	if err != nil {
		log.Fatalf("Failed to initialize system service: %v", err)
	}

	result, err := initService.Initialize(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}
	log.WithFields(map[string]interface{}{
		"result": result,
	}).Info("Default data seeded successfully")
}
