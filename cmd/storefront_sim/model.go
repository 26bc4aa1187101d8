package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/storefront/pkg/components"
	"github.com/decker502/storefront/pkg/config"
	"github.com/decker502/storefront/pkg/ecs"
	"github.com/decker502/storefront/pkg/game"
	"github.com/decker502/storefront/pkg/inspect"
	"github.com/decker502/storefront/pkg/systems"
	"github.com/decker502/storefront/pkg/types"
)

const (
	tickRate   = 60
	trackWidth = 64
)

// tickMsg 一帧模拟（固定 1/60 秒）
type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second/tickRate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd166"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a99")).Width(10)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#ff6b9d")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#8a8a99"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c5c70"))
)

// world 一次挂载的店面状态（与场景中的系统相同，只是没有渲染）
type world struct {
	store      *game.UIStore
	hotspots   *systems.HotspotSystem
	mascot     *systems.MascotSystem
	navigation *systems.NavigationSystem
}

// model 终端模拟器
// 以 60 Hz 驱动共享 UI 状态、热区控制器事件和吉祥物状态机
type model struct {
	cfg    *config.StorefrontConfig
	layout config.ResolvedLayout
	copy   func(string) error

	w *world
	t float64

	navigated []types.Door
	status    string
}

func newModel(cfg *config.StorefrontConfig, copyFn func(string) error) *model {
	m := &model{
		cfg:    cfg,
		layout: cfg.Layout(config.GameWindowWidth, config.GameWindowHeight),
		copy:   copyFn,
	}
	m.mount()
	return m
}

// mount 创建新的 store 和系统（相当于重新挂载店面场景）
func (m *model) mount() {
	if m.w != nil {
		m.w.navigation.Close()
	}

	em := ecs.NewEntityManager()
	store := game.NewUIStore()
	for _, door := range types.AllDoors {
		id := em.CreateEntity()
		rect, _ := m.layout.HotspotRect(door)
		ecs.AddComponent(em, id, &components.HotspotComponent{Door: door, Rect: rect})
	}
	mascotID := em.CreateEntity()
	ecs.AddComponent(em, mascotID, &components.MascotComponent{Position: m.layout.Offscreen})

	machine := systems.NewMascotMachine(m.cfg.Mascot, false)
	m.w = &world{
		store:      store,
		hotspots:   systems.NewHotspotSystem(em, store, m.cfg.Hotspot),
		mascot:     systems.NewMascotSystem(em, store, machine, mascotID, m.layout),
		navigation: systems.NewNavigationSystem(store, systems.NavigatorFunc(m.navigate), m.cfg.Navigation.Delay),
	}
	store.SetReady(true)
	m.t = 0
}

func (m *model) navigate(door types.Door) {
	m.navigated = append(m.navigated, door)
	m.status = fmt.Sprintf("navigate -> %s", m.cfg.Door(door).Route)
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.step()
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1":
			m.w.hotspots.Click(types.DoorVCs)
		case "2":
			m.w.hotspots.Click(types.DoorFounders)
		case "h":
			m.cycleHover()
		case "r":
			m.mount()
			m.status = "remounted"
		case "c":
			m.copySnapshot()
		}
	}
	return m, nil
}

// step 推进一帧
func (m *model) step() {
	dt := 1.0 / tickRate
	m.t += dt
	m.w.mascot.Update(m.t)
	m.w.navigation.Update(dt)
}

// cycleHover 悬停依次切换：无 → VCs → Founders → 无
func (m *model) cycleHover() {
	current := m.w.store.Snapshot().Hover
	if current.Valid() {
		m.w.hotspots.PointerLeave(current)
	}
	switch current {
	case types.DoorNone:
		m.w.hotspots.PointerEnter(types.DoorVCs)
	case types.DoorVCs:
		m.w.hotspots.PointerEnter(types.DoorFounders)
	}
}

func (m *model) copySnapshot() {
	data, err := json.Marshal(inspect.FromState(0, m.w.store.Snapshot()))
	if err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	if err := m.copy(string(data)); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = "snapshot copied"
}

// track 把场景 X 坐标映射成一行字符：门落脚点和吉祥物
func (m *model) track(x float64) string {
	cells := []rune(strings.Repeat("·", trackWidth))
	col := func(sceneX float64) int {
		c := int(math.Round((sceneX/m.layout.ViewW + 0.5) * float64(trackWidth-1)))
		return max(0, min(trackWidth-1, c))
	}
	for _, door := range types.AllDoors {
		dest, _ := m.layout.Destination(door)
		cells[col(dest.X)] = rune(door.String()[0])
	}
	cells[col(x)] = 'Z'
	return string(cells)
}

func (m *model) View() string {
	snap := m.w.store.Snapshot()

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}
	rows := []string{
		row("t", fmt.Sprintf("%.2fs", m.t)),
		row("hover", snap.Hover.String()),
		row("target", snap.Target.String()),
		row("motion", snap.Motion.String()),
		row("position", fmt.Sprintf("(%.1f, %.1f)", snap.Position.X, snap.Position.Y)),
		row("ready", fmt.Sprintf("%v", snap.Ready)),
		"",
		m.track(snap.Position.X),
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Zebra Storefront simulator"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("1/2 click door  h cycle hover  r remount  c copy  q quit"))
	b.WriteString("\n")
	return b.String()
}
