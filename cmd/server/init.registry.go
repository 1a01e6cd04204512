package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dailongmedia2603/CRM-DAILONG/config"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
)

// InitRegistry đăng ký các collection vào registry dùng chung
func InitRegistry() {
	if err := InitCollections(mongoSession, global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collection MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	names := global.MongoDB_ColNames
	colNames := []string{
		names.Users,
		names.Customers,
		names.Interactions,
		names.Clients,
		names.ClientDocuments,
		names.Projects,
		names.Tasks,
		names.TaskComments,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}
