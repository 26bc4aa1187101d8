package systems

import (
	"log"

	"github.com/decker502/storefront/pkg/game"
	"github.com/decker502/storefront/pkg/types"
)

// Navigator 执行页面切换的协作者
type Navigator interface {
	NavigateTo(door types.Door)
}

// NavigatorFunc 函数适配器
type NavigatorFunc func(door types.Door)

// NavigateTo 实现 Navigator
func (f NavigatorFunc) NavigateTo(door types.Door) { f(door) }

// NavigationSystem 导航协作者
//
// 订阅 store：观察到 Arriving 且有目标时开始计时，停顿 delay 秒后调用 Navigator，
// 每次到达只触发一次。状态机本身从不调用导航。
// store 回调和 Update 都在帧回调所在的 goroutine 中执行。
type NavigationSystem struct {
	navigator Navigator
	delay     float64

	pending     bool
	pendingDoor types.Door
	waited      float64
	fired       bool

	unsubscribe func()
}

// NewNavigationSystem 创建导航系统并订阅 store
func NewNavigationSystem(store *game.UIStore, navigator Navigator, delay float64) *NavigationSystem {
	ns := &NavigationSystem{
		navigator: navigator,
		delay:     delay,
	}
	ns.unsubscribe = store.Subscribe(ns.onStateChanged)
	return ns
}

func (ns *NavigationSystem) onStateChanged(st game.UIState) {
	if st.Motion != types.MotionArriving || !st.Target.Valid() {
		// 离开 Arriving（例如再次点击）后允许下一次到达重新触发
		ns.pending = false
		ns.fired = false
		return
	}

	if ns.fired {
		return
	}
	if !ns.pending || ns.pendingDoor != st.Target {
		ns.pending = true
		ns.pendingDoor = st.Target
		ns.waited = 0
	}
}

// Update 推进停顿计时，到时执行导航
func (ns *NavigationSystem) Update(dt float64) {
	if !ns.pending || ns.fired {
		return
	}

	ns.waited += dt
	if ns.waited < ns.delay {
		return
	}

	ns.fired = true
	ns.pending = false
	log.Printf("[NavigationSystem] 到达 %v，切换页面", ns.pendingDoor)
	ns.navigator.NavigateTo(ns.pendingDoor)
}

// Pending 是否有等待中的导航
func (ns *NavigationSystem) Pending() (types.Door, bool) {
	return ns.pendingDoor, ns.pending
}

// Close 取消订阅
func (ns *NavigationSystem) Close() {
	if ns.unsubscribe != nil {
		ns.unsubscribe()
	}
}
