package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dailongmedia2603/CRM-DAILONG/config"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users           string // Tên collection cho người dùng
	Customers       string // Tên collection cho khách hàng tiềm năng (lead)
	Interactions    string // Tên collection cho lịch sử tương tác với khách hàng
	Clients         string // Tên collection cho khách hàng đã ký hợp đồng
	ClientDocuments string // Tên collection cho tài liệu của client
	Projects        string // Tên collection cho dự án
	Tasks           string // Tên collection cho công việc
	TaskComments    string // Tên collection cho bình luận công việc
}

// Các biến toàn cục
var Validate *validator.Validate // Biến để xác thực dữ liệu

// MongoDB_ColNames là tên các collection, gán giá trị khi khởi tạo server
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:           "auth_users",
	Customers:       "crm_customers",
	Interactions:    "crm_interactions",
	Clients:         "crm_clients",
	ClientDocuments: "crm_client_documents",
	Projects:        "crm_projects",
	Tasks:           "crm_tasks",
	TaskComments:    "crm_task_comments",
}

// RegistryCollections chứa các collections đã khởi tạo, dùng cho validator "exists"
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()

// MongoDB_ServerConfig là cấu hình của server, gán giá trị khi khởi tạo.
// Client MongoDB không nằm ở đây: composition root (cmd/server) sở hữu client
// và lifecycle của nó, các service chỉ nhìn thấy collection qua registry.
var MongoDB_ServerConfig *config.Configuration
