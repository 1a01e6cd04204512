package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dailongmedia2603/CRM-DAILONG/config"
	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	clientmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/models"
	crmmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/models"
	projectmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/project/models"
	taskmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/task/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/database"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
)

// mongoSession là client MongoDB do composition root sở hữu:
// connect lúc khởi động, disconnect khi shutdown. Các service không
// chạm vào client thô mà chỉ lấy collection qua registry.
var mongoSession *mongo.Client

// InitGlobal khởi tạo các biến toàn cục theo thứ tự phụ thuộc
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initValidator đăng ký các custom validator (no_xss, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig đọc cấu hình server từ env
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối MongoDB, đảm bảo collections và tạo index
func initDatabase_MongoDB() {
	var err error
	mongoSession, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	if err := database.EnsureDatabaseAndCollections(mongoSession, dbName); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Tạo index cho các collection từ tag `index` trên model
	db := mongoSession.Database(dbName)
	names := global.MongoDB_ColNames
	database.CreateIndexes(context.TODO(), db.Collection(names.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Customers), crmmodels.Customer{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Interactions), crmmodels.Interaction{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Clients), clientmodels.Client{})
	database.CreateIndexes(context.TODO(), db.Collection(names.ClientDocuments), clientmodels.ClientDocument{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Projects), projectmodels.Project{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Tasks), taskmodels.Task{})
	database.CreateIndexes(context.TODO(), db.Collection(names.TaskComments), taskmodels.TaskComment{})
}
