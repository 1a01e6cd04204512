package clientsvc

import (
	"testing"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	clientmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/client/models"
)

func TestCanAccessClient(t *testing.T) {
	client := &clientmodels.Client{
		CreatedBy:       "creator-1",
		AssignedSalesID: "sales-1",
	}

	cases := []struct {
		name  string
		actor *authmodels.User
		want  bool
	}{
		{"admin luôn truy cập được", &authmodels.User{ID: "bất kỳ", Role: authmodels.RoleAdmin}, true},
		{"người tạo truy cập được", &authmodels.User{ID: "creator-1", Role: authmodels.RoleManager}, true},
		{"sales được gán truy cập được", &authmodels.User{ID: "sales-1", Role: authmodels.RoleSales}, true},
		{"role sale cũ được gán truy cập được", &authmodels.User{ID: "sales-1", Role: authmodels.RoleSale}, true},
		{"account được gán nhưng không phải sales thì không", &authmodels.User{ID: "sales-1", Role: authmodels.RoleAccount}, false},
		{"sales khác không truy cập được", &authmodels.User{ID: "sales-2", Role: authmodels.RoleSales}, false},
		{"manager không tạo không truy cập được", &authmodels.User{ID: "manager-1", Role: authmodels.RoleManager}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canAccessClient(tc.actor, client); got != tc.want {
				t.Errorf("canAccessClient() = %v, muốn %v", got, tc.want)
			}
		})
	}
}
