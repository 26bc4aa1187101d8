package game

import (
	"sort"
	"sync"

	"github.com/decker502/storefront/pkg/types"
	"github.com/decker502/storefront/pkg/utils"
)

// UIState 店面场景共享 UI 状态的快照
//
// 字段归属（避免丢失更新）：
//   - Hover / Target / 点击时的 Motion：热区控制器
//   - 运动过程中的 Motion / Position：吉祥物系统
//   - Ready：资源加载器
type UIState struct {
	Hover    types.Door        // 指针下方的门，DoorNone 表示没有
	Target   types.Door        // 吉祥物正在走向的门，DoorNone 表示没有
	Motion   types.MotionState // 吉祥物运动状态
	Position utils.Point       // 吉祥物当前位置（场景坐标，脚底）
	Ready    bool              // 背景资源是否加载完成
}

// UIListener 状态变化回调，参数为写入后的完整快照
type UIListener func(UIState)

// UIStore 场景级的共享 UI 状态
//
// 每个店面场景在挂载时创建一个实例，并通过构造函数注入给需要它的系统，
// 不使用全局单例。场景销毁时随引用一起释放。
//
// Setter 都是纯赋值，不校验字段间的一致性（例如没有目标时设置 Walking 是合法的，
// 由吉祥物系统负责兜底）。写入相同值时仍然会通知订阅者。
type UIStore struct {
	mu    sync.RWMutex
	state UIState

	listenerMu sync.Mutex
	listeners  map[int]UIListener
	nextID     int
}

// NewUIStore 创建带默认值的状态：无悬停、无目标、Idle、原点、未就绪
func NewUIStore() *UIStore {
	return &UIStore{
		state: UIState{
			Hover:  types.DoorNone,
			Target: types.DoorNone,
			Motion: types.MotionIdle,
		},
		listeners: make(map[int]UIListener),
	}
}

// Snapshot 返回当前状态的一致快照
func (s *UIStore) Snapshot() UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe 注册状态变化回调，返回取消订阅函数
// 回调在写入方的 goroutine 中、锁释放之后同步调用，回调内可以再次读写 store
func (s *UIStore) Subscribe(fn UIListener) (unsubscribe func()) {
	s.listenerMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenerMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenerMu.Lock()
			delete(s.listeners, id)
			s.listenerMu.Unlock()
		})
	}
}

// SetHover 设置悬停的门
func (s *UIStore) SetHover(door types.Door) {
	s.update(func(st *UIState) { st.Hover = door })
}

// SetTargetDoor 设置导航目标
func (s *UIStore) SetTargetDoor(door types.Door) {
	s.update(func(st *UIState) { st.Target = door })
}

// SetMotionState 设置吉祥物运动状态
func (s *UIStore) SetMotionState(motion types.MotionState) {
	s.update(func(st *UIState) { st.Motion = motion })
}

// SetMascotPosition 设置吉祥物位置
func (s *UIStore) SetMascotPosition(pos utils.Point) {
	s.update(func(st *UIState) { st.Position = pos })
}

// SetReady 设置资源就绪标志
func (s *UIStore) SetReady(ready bool) {
	s.update(func(st *UIState) { st.Ready = ready })
}

// Navigate 在一次写入中设置导航目标并切换到 Walking
// 订阅者只会收到一次通知，观察不到"目标已设置但仍是 Idle"之类的中间状态
func (s *UIStore) Navigate(door types.Door) {
	s.update(func(st *UIState) {
		st.Target = door
		st.Motion = types.MotionWalking
	})
}

func (s *UIStore) update(mutate func(*UIState)) {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state
	s.mu.Unlock()

	s.notify(snapshot)
}

func (s *UIStore) notify(snapshot UIState) {
	s.listenerMu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	listeners := make([]UIListener, 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.listenerMu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
