package query

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAndSkipsEmptyConditions(t *testing.T) {
	got := And(Eq("status", "active"), nil, bson.M{})
	want := bson.M{"status": "active"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("And phải bỏ điều kiện rỗng và không bọc $and thừa: got %v, want %v", got, want)
	}
}

func TestAndEmptyMatchesAll(t *testing.T) {
	got := And(nil, bson.M{})
	if len(got) != 0 {
		t.Errorf("And không có điều kiện phải trả về filter rỗng, got %v", got)
	}
}

// Hai nhóm $or độc lập phải được gộp qua $and, không bị trộn phẳng vào nhau
func TestAndKeepsOrGroupsSeparate(t *testing.T) {
	visibility := Or(Eq("created_by", "u1"), Eq("assigned_to", "u1"))
	search := Or(Contains("name", "acme"), Contains("contact", "acme"))

	got := And(visibility, search)

	andClauses, ok := got["$and"].([]bson.M)
	if !ok {
		t.Fatalf("Kết quả phải là $and của hai nhóm, got %v", got)
	}
	if len(andClauses) != 2 {
		t.Fatalf("$and phải chứa đúng 2 nhóm, got %d", len(andClauses))
	}

	visOr, ok := andClauses[0]["$or"].([]bson.M)
	if !ok || len(visOr) != 2 {
		t.Errorf("Nhóm phân quyền phải giữ nguyên $or của nó: %v", andClauses[0])
	}
	searchOr, ok := andClauses[1]["$or"].([]bson.M)
	if !ok || len(searchOr) != 2 {
		t.Errorf("Nhóm tìm kiếm phải giữ nguyên $or của nó: %v", andClauses[1])
	}
}

func TestOrSingleConditionUnwrapped(t *testing.T) {
	got := Or(Eq("role", "admin"))
	want := bson.M{"role": "admin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Or một điều kiện phải trả về chính nó: got %v, want %v", got, want)
	}
}

func TestInBuildsOperator(t *testing.T) {
	got := In("status", []string{"todo", "in_progress"})
	inner, ok := got["status"].(bson.M)
	if !ok {
		t.Fatalf("In phải tạo operator $in: %v", got)
	}
	values, ok := inner["$in"].([]string)
	if !ok || len(values) != 2 {
		t.Errorf("$in phải giữ nguyên danh sách giá trị: %v", inner)
	}
}

// Chuỗi tìm kiếm chứa ký tự đặc biệt regex không được đổi ngữ nghĩa
func TestContainsEscapesRegex(t *testing.T) {
	got := Contains("name", "a.b(c)")
	re, ok := got["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("Contains phải tạo primitive.Regex: %v", got)
	}
	if re.Pattern != `a\.b\(c\)` {
		t.Errorf("Ký tự đặc biệt phải được escape: got %q", re.Pattern)
	}
	if re.Options != "i" {
		t.Errorf("Tìm kiếm phải không phân biệt hoa thường, got options %q", re.Options)
	}
}

func TestRangeHalfOpen(t *testing.T) {
	got := Range("created_at", int64(100), int64(200))
	inner, ok := got["created_at"].(bson.M)
	if !ok {
		t.Fatalf("Range phải tạo operator khoảng: %v", got)
	}
	if inner["$gte"] != int64(100) || inner["$lt"] != int64(200) {
		t.Errorf("Khoảng phải là nửa-mở [start, end): %v", inner)
	}
}
