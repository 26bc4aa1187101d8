package types

import "testing"

// TestDoorKeys 测试门标识的往返查找
func TestDoorKeys(t *testing.T) {
	for _, d := range AllDoors {
		got, ok := DoorFromKey(d.Key())
		if !ok || got != d {
			t.Errorf("DoorFromKey(%q) = %v, %v; want %v", d.Key(), got, ok, d)
		}
	}

	if _, ok := DoorFromKey("kitchen"); ok {
		t.Error("unknown key should not resolve to a door")
	}
}

// TestDoorIndex 测试门下标覆盖 AllDoors 的全部位置
func TestDoorIndex(t *testing.T) {
	for i, d := range AllDoors {
		if d.Index() != i {
			t.Errorf("%v.Index() = %d, want %d", d, d.Index(), i)
		}
	}
	if DoorNone.Index() != -1 {
		t.Errorf("DoorNone.Index() = %d, want -1", DoorNone.Index())
	}
	if DoorNone.Valid() {
		t.Error("DoorNone should not be valid")
	}
}

// TestMotionStateRequiresTarget 测试需要目标的状态
func TestMotionStateRequiresTarget(t *testing.T) {
	tests := []struct {
		state MotionState
		want  bool
	}{
		{MotionIdle, false},
		{MotionWalking, true},
		{MotionArriving, true},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.RequiresTarget(); got != tt.want {
				t.Errorf("RequiresTarget() = %v, want %v", got, tt.want)
			}
		})
	}
}
