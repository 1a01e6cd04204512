// Package dashboardsvc - service phân tích sales và dashboard tổng quan.
package dashboardsvc

import (
	"context"
	"fmt"
	"time"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	authsvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/service"
	basesvc "github.com/dailongmedia2603/CRM-DAILONG/internal/api/base/service"
	crmmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/crm/models"
	dashboarddto "github.com/dailongmedia2603/CRM-DAILONG/internal/api/dashboard/dto"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/global"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/query"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// DashboardService tổng hợp số liệu từ khách hàng, tương tác và user.
type DashboardService struct {
	customerCRUD    *basesvc.BaseServiceMongoImpl[crmmodels.Customer]
	interactionCRUD *basesvc.BaseServiceMongoImpl[crmmodels.Interaction]
	userCRUD        *authsvc.UserService
}

// NewDashboardService tạo DashboardService mới.
func NewDashboardService() (*DashboardService, error) {
	customerColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	interactionColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Interactions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Interactions, common.ErrNotFound)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &DashboardService{
		customerCRUD:    basesvc.NewBaseServiceMongo[crmmodels.Customer](customerColl),
		interactionCRUD: basesvc.NewBaseServiceMongo[crmmodels.Interaction](interactionColl),
		userCRUD:        userService,
	}, nil
}

// SalesAnalytics tính số liệu của một nhân viên sales:
// tổng khách, tổng doanh thu, phân bố status, tương tác theo tháng,
// 10 tương tác gần nhất. Sales chỉ xem được số liệu của chính mình.
func (s *DashboardService) SalesAnalytics(ctx context.Context, actor *authmodels.User, salesID string) (*dashboarddto.SalesAnalyticsResult, error) {
	isManagement := actor.Role == authmodels.RoleAdmin || actor.Role == authmodels.RoleManager
	if !isManagement && actor.ID != salesID {
		return nil, common.ErrPermissionDenied
	}

	result := &dashboarddto.SalesAnalyticsResult{SalesID: salesID}
	customerFilter := query.Eq("assigned_sales_id", salesID)

	total, revenue, distribution, err := s.customerSummary(ctx, customerFilter)
	if err != nil {
		return nil, err
	}
	result.TotalCustomers = total
	result.TotalRevenue = revenue
	result.StatusDistribution = distribution

	byMonth, err := s.interactionsByMonth(ctx, salesID)
	if err != nil {
		return nil, err
	}
	result.InteractionsByMonth = byMonth

	recentOpts := mongoopts.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}).
		SetLimit(10)
	recent, err := s.interactionCRUD.Find(ctx, query.Eq("sales_id", salesID), recentOpts)
	if err != nil {
		return nil, err
	}
	result.RecentInteractions = recent

	return result, nil
}

// DashboardAnalytics tính số liệu tổng quan theo vai trò của actor:
// sales chỉ thấy dữ liệu của mình, admin/manager thấy toàn bộ kèm
// hiệu suất đội sales trong tháng hiện tại.
func (s *DashboardService) DashboardAnalytics(ctx context.Context, actor *authmodels.User) (*dashboarddto.DashboardResult, error) {
	isManagement := actor.Role == authmodels.RoleAdmin || actor.Role == authmodels.RoleManager

	customerFilter := bson.M{}
	if !isManagement {
		customerFilter = query.Eq("assigned_sales_id", actor.ID)
	}

	total, revenue, distribution, err := s.customerSummary(ctx, customerFilter)
	if err != nil {
		return nil, err
	}

	result := &dashboarddto.DashboardResult{
		TotalCustomers:     total,
		TotalRevenue:       revenue,
		StatusDistribution: distribution,
	}

	if isManagement {
		performance, err := s.teamPerformance(ctx)
		if err != nil {
			return nil, err
		}
		result.TeamPerformance = performance
	}

	return result, nil
}

// customerSummary đếm khách, tổng total_revenue và phân bố status khớp filter.
func (s *DashboardService) customerSummary(ctx context.Context, filter bson.M) (int64, float64, map[string]int64, error) {
	pipeline := []bson.M{
		{"$match": filter},
		{"$group": bson.M{
			"_id":     "$status",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total_revenue"},
		}},
	}

	rows, err := s.customerCRUD.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, nil, err
	}

	var total int64
	var revenue float64
	distribution := map[string]int64{}
	for _, row := range rows {
		status, _ := row["_id"].(string)
		count := utility.ToInt64(row["count"])
		distribution[status] = count
		total += count
		revenue += utility.ToFloat64(row["revenue"])
	}
	return total, revenue, distribution, nil
}

// interactionsByMonth đếm tương tác của một sales theo tháng "YYYY-MM", cũ trước.
func (s *DashboardService) interactionsByMonth(ctx context.Context, salesID string) ([]dashboarddto.MonthCount, error) {
	pipeline := []bson.M{
		{"$match": query.Eq("sales_id", salesID)},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   bson.M{"$toDate": "$date"},
			}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	rows, err := s.interactionCRUD.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	byMonth := make([]dashboarddto.MonthCount, 0, len(rows))
	for _, row := range rows {
		month, _ := row["_id"].(string)
		byMonth = append(byMonth, dashboarddto.MonthCount{
			Month: month,
			Count: utility.ToInt64(row["count"]),
		})
	}
	return byMonth, nil
}

// teamPerformance tính doanh thu tháng hiện tại của từng sales đang active
// so với target_monthly của họ.
func (s *DashboardService) teamPerformance(ctx context.Context) ([]dashboarddto.TeamMemberPerformance, error) {
	salesUsers, err := s.userCRUD.ActiveSalesUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(salesUsers) == 0 {
		return []dashboarddto.TeamMemberPerformance{}, nil
	}

	salesIDs := make([]string, 0, len(salesUsers))
	for _, u := range salesUsers {
		salesIDs = append(salesIDs, u.ID)
	}

	monthRange := utility.ResolveTimeRange("month", time.Now().UTC().Format("2006-01"))
	pipeline := []bson.M{
		{"$match": query.And(
			query.In("sales_id", salesIDs),
			query.Range("date", monthRange.StartMilli(), monthRange.EndMilli()),
		)},
		{"$group": bson.M{
			"_id":     "$sales_id",
			"revenue": bson.M{"$sum": "$revenue_generated"},
		}},
	}

	rows, err := s.interactionCRUD.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	revenueBySales := map[string]float64{}
	for _, row := range rows {
		salesID, _ := row["_id"].(string)
		revenueBySales[salesID] = utility.ToFloat64(row["revenue"])
	}

	performance := make([]dashboarddto.TeamMemberPerformance, 0, len(salesUsers))
	for _, u := range salesUsers {
		monthRevenue := revenueBySales[u.ID]
		achieved := float64(0)
		if u.TargetMonthly > 0 {
			achieved = monthRevenue / u.TargetMonthly * 100
		}
		performance = append(performance, dashboarddto.TeamMemberPerformance{
			UserID:          u.ID,
			FullName:        u.FullName,
			TargetMonthly:   u.TargetMonthly,
			MonthRevenue:    monthRevenue,
			AchievedPercent: achieved,
		})
	}
	return performance, nil
}
