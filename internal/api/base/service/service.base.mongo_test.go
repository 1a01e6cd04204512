package basesvc

import (
	"testing"
)

type sampleUpdate struct {
	Name  string `bson:"name,omitempty"`
	Phone string `bson:"phone,omitempty"`
}

// Struct thường phải được wrap trong $set để update là partial
func TestToUpdateDataWrapsPlainStruct(t *testing.T) {
	update, err := ToUpdateData(sampleUpdate{Name: "Ngọc"})
	if err != nil {
		t.Fatalf("ToUpdateData thất bại: %v", err)
	}

	if update.Set == nil {
		t.Fatal("Struct thường phải được wrap trong $set")
	}
	if update.Set["name"] != "Ngọc" {
		t.Errorf("$set phải chứa field name: %v", update.Set)
	}
	if _, hasPhone := update.Set["phone"]; hasPhone {
		t.Errorf("Field omitempty không được xuất hiện trong $set: %v", update.Set)
	}
}

func TestToUpdateDataPassThrough(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"status": "completed"}}
	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData thất bại: %v", err)
	}
	if update != original {
		t.Error("UpdateData có sẵn phải được trả về nguyên vẹn")
	}
}

func TestToUpdateDataWithOperators(t *testing.T) {
	data := map[string]interface{}{
		"$set":   map[string]interface{}{"name": "A"},
		"$unset": map[string]interface{}{"note": ""},
	}
	update, err := ToUpdateData(data)
	if err != nil {
		t.Fatalf("ToUpdateData thất bại: %v", err)
	}
	if update.Set["name"] != "A" {
		t.Errorf("$set phải được giữ nguyên: %v", update.Set)
	}
	if _, ok := update.Unset["note"]; !ok {
		t.Errorf("$unset phải được giữ nguyên: %v", update.Unset)
	}
}
