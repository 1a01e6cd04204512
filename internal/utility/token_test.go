package utility

import (
	"errors"
	"testing"

	"github.com/dailongmedia2603/CRM-DAILONG/internal/common"
)

const testSecret = "test-secret-key"

func TestCreateAndParseToken(t *testing.T) {
	token, err := CreateToken(testSecret, "user-123", "admin")
	if err != nil {
		t.Fatalf("Tạo token thất bại: %v", err)
	}
	if token == "" {
		t.Fatal("Token không được rỗng")
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("Parse token thất bại: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID sai: got %q, want %q", claims.UserID, "user-123")
	}
	if claims.Role != "admin" {
		t.Errorf("Role sai: got %q, want %q", claims.Role, "admin")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := CreateToken(testSecret, "user-123", "sales")
	if err != nil {
		t.Fatalf("Tạo token thất bại: %v", err)
	}

	_, err = ParseToken("wrong-secret", token)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Token sai secret phải trả về ErrTokenInvalid, got %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Token rác phải trả về ErrTokenInvalid, got %v", err)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("Hash mật khẩu thất bại: %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatal("Hash không được trùng mật khẩu gốc")
	}

	if !CheckPassword("S3cret!pass", hash) {
		t.Error("Mật khẩu đúng phải khớp với hash")
	}
	if CheckPassword("wrong-pass", hash) {
		t.Error("Mật khẩu sai không được khớp với hash")
	}
}
