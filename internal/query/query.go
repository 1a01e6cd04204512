// Package query cung cấp các combinator dựng filter MongoDB có cấu trúc.
// Các nhóm điều kiện $or độc lập (phân quyền, tìm kiếm) luôn được gộp qua $and,
// không bao giờ bị trộn phẳng vào nhau.
package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Eq tạo điều kiện field == value
func Eq(field string, value interface{}) bson.M {
	return bson.M{field: value}
}

// Ne tạo điều kiện field != value
func Ne(field string, value interface{}) bson.M {
	return bson.M{field: bson.M{"$ne": value}}
}

// In tạo điều kiện field nằm trong danh sách values
func In[T any](field string, values []T) bson.M {
	return bson.M{field: bson.M{"$in": values}}
}

// Gte tạo điều kiện field >= value
func Gte(field string, value interface{}) bson.M {
	return bson.M{field: bson.M{"$gte": value}}
}

// Lt tạo điều kiện field < value
func Lt(field string, value interface{}) bson.M {
	return bson.M{field: bson.M{"$lt": value}}
}

// Range tạo điều kiện field thuộc khoảng nửa-mở [start, end)
func Range(field string, start, end interface{}) bson.M {
	return bson.M{field: bson.M{"$gte": start, "$lt": end}}
}

// Contains tạo điều kiện field chứa chuỗi con, không phân biệt hoa thường.
// Giá trị tìm kiếm được escape để không bị hiểu là regex pattern.
func Contains(field, value string) bson.M {
	return bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}}
}

// Exists tạo điều kiện field tồn tại hoặc không tồn tại
func Exists(field string, exists bool) bson.M {
	return bson.M{field: bson.M{"$exists": exists}}
}

// And gộp các điều kiện bằng $and, bỏ qua điều kiện nil/rỗng.
// Không có điều kiện nào trả về filter rỗng (match tất cả);
// một điều kiện duy nhất trả về chính nó, không bọc $and thừa.
func And(conditions ...bson.M) bson.M {
	kept := compact(conditions)
	switch len(kept) {
	case 0:
		return bson.M{}
	case 1:
		return kept[0]
	default:
		return bson.M{"$and": kept}
	}
}

// Or gộp các điều kiện bằng $or, bỏ qua điều kiện nil/rỗng.
// Nhóm $or trả về luôn là một bson.M độc lập: kết hợp với nhóm khác phải qua And.
func Or(conditions ...bson.M) bson.M {
	kept := compact(conditions)
	switch len(kept) {
	case 0:
		return bson.M{}
	case 1:
		return kept[0]
	default:
		return bson.M{"$or": kept}
	}
}

func compact(conditions []bson.M) []bson.M {
	kept := make([]bson.M, 0, len(conditions))
	for _, c := range conditions {
		if len(c) == 0 {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
