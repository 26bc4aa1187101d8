// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Door 定义店面上可导航的门（封闭集合）
// 零值 DoorNone 表示"没有门"（无悬停 / 无导航目标）
type Door int

const (
	// DoorNone 没有门
	DoorNone Door = iota
	// DoorVCs 左侧投资人之门
	DoorVCs
	// DoorFounders 右侧创始人之门
	DoorFounders
)

// DoorCount 真实门的数量（不含 DoorNone）
const DoorCount = 2

// AllDoors 按固定顺序列出所有真实的门
var AllDoors = [DoorCount]Door{DoorVCs, DoorFounders}

// String 返回门的字符串表示
func (d Door) String() string {
	switch d {
	case DoorVCs:
		return "VCs"
	case DoorFounders:
		return "Founders"
	default:
		return "None"
	}
}

// Key 返回配置文件 / 路由中使用的小写标识
func (d Door) Key() string {
	switch d {
	case DoorVCs:
		return "vcs"
	case DoorFounders:
		return "founders"
	default:
		return ""
	}
}

// Valid 判断是否为真实的门
func (d Door) Valid() bool {
	return d == DoorVCs || d == DoorFounders
}

// Index 返回门在 AllDoors 中的下标
// DoorNone 返回 -1
func (d Door) Index() int {
	if !d.Valid() {
		return -1
	}
	return int(d) - 1
}

// DoorFromKey 根据配置标识查找门
func DoorFromKey(key string) (Door, bool) {
	for _, d := range AllDoors {
		if d.Key() == key {
			return d, true
		}
	}
	return DoorNone, false
}
