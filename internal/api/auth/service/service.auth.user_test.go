package authsvc

import (
	"errors"
	"testing"

	authmodels "github.com/dailongmedia2603/CRM-DAILONG/internal/api/auth/models"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
	"github.com/dailongmedia2603/CRM-DAILONG/internal/utility"
)

func TestVerifyCredentials(t *testing.T) {
	hashed, err := utility.HashPassword("mật-khẩu-đúng")
	if err != nil {
		t.Fatalf("HashPassword() lỗi: %v", err)
	}

	activeUser := &authmodels.User{
		Username: "sales1",
		Password: hashed,
		Role:     authmodels.RoleSales,
		IsActive: true,
	}
	inactiveUser := &authmodels.User{
		Username: "sales2",
		Password: hashed,
		Role:     authmodels.RoleSales,
		IsActive: false,
	}

	cases := []struct {
		name     string
		user     *authmodels.User
		password string
		wantOK   bool
	}{
		{"đúng mật khẩu thì đăng nhập được", activeUser, "mật-khẩu-đúng", true},
		{"sai mật khẩu trả về 401", activeUser, "mật-khẩu-sai", false},
		{"không tìm thấy user trả về 401", nil, "mật-khẩu-đúng", false},
		{"user bị vô hiệu hóa trả về 401", inactiveUser, "mật-khẩu-đúng", false},
		{"mật khẩu rỗng trả về 401", activeUser, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := verifyCredentials(tc.user, tc.password)
			if tc.wantOK {
				if err != nil {
					t.Errorf("verifyCredentials() = %v, muốn nil", err)
				}
				return
			}
			// Mọi trường hợp sai trả về cùng một lỗi để không lộ tài khoản tồn tại
			if !errors.Is(err, common.ErrInvalidCredentials) {
				t.Errorf("verifyCredentials() = %v, muốn ErrInvalidCredentials", err)
			}
		})
	}
}
