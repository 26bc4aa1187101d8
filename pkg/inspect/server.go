// Package inspect 提供店面共享 UI 状态的 websocket 查看器
//
// 每次 store 写入都会把完整快照编码为 JSON 推送给所有已连接的客户端。
// 推送在帧循环中执行，绝不阻塞：客户端的发送队列满时直接丢弃该帧。
package inspect

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/decker502/storefront/pkg/game"
)

const (
	// clientQueueSize 每个客户端最多缓存的快照数
	clientQueueSize = 16
	writeTimeout    = 2 * time.Second
)

// Snapshot 推送给客户端的 JSON 快照
type Snapshot struct {
	Seq      uint64   `json:"seq"`
	Hover    string   `json:"hover"`
	Target   string   `json:"target"`
	Motion   string   `json:"motion"`
	Position Position `json:"position"`
	Ready    bool     `json:"ready"`
}

// Position 场景坐标
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FromState 把 store 状态转换为 JSON 快照
func FromState(seq uint64, st game.UIState) Snapshot {
	return Snapshot{
		Seq:      seq,
		Hover:    st.Hover.String(),
		Target:   st.Target.String(),
		Motion:   st.Motion.String(),
		Position: Position{X: st.Position.X, Y: st.Position.Y},
		Ready:    st.Ready,
	}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Server 状态查看器
type Server struct {
	upgrader websocket.Upgrader

	mu          sync.Mutex
	clients     map[*client]struct{}
	latest      []byte
	seq         uint64
	unsubscribe func()

	dropped atomic.Uint64

	httpServer *http.Server
}

// NewServer 创建查看器（尚未监听端口）
func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// Attach 订阅新的 store，并立即推送它的当前状态
// 场景切换时调用；之前订阅的 store 会被取消订阅
func (s *Server) Attach(store *game.UIStore) {
	s.mu.Lock()
	prev := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()
	if prev != nil {
		prev()
	}
	if store == nil {
		return
	}

	unsubscribe := store.Subscribe(s.Publish)
	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	s.Publish(store.Snapshot())
}

// Publish 把一个状态推送给所有客户端
func (s *Server) Publish(st game.UIState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	data, err := json.Marshal(FromState(s.seq, st))
	if err != nil {
		log.Printf("[inspect] 编码快照失败: %v", err)
		return
	}
	s.latest = data

	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			s.dropped.Add(1)
		}
	}
}

// Dropped 返回因客户端过慢而丢弃的快照数
func (s *Server) Dropped() uint64 {
	return s.dropped.Load()
}

// Clients 返回当前连接数
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Handle 处理 websocket 连接
// 新客户端先收到最近一次快照，之后收到每一次 store 写入
func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[inspect] upgrade 失败: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientQueueSize)}
	s.register(c)

	go s.writeLoop(c)

	// 只读取控制帧，连接断开时退出
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.unregister(c)
}

func (s *Server) register(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c] = struct{}{}
	if s.latest != nil {
		c.send <- s.latest
	}
	log.Printf("[inspect] 客户端连接 %s (共 %d 个)", c.conn.RemoteAddr(), len(s.clients))
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.send)
	log.Printf("[inspect] 客户端断开 %s", c.conn.RemoteAddr())
}

func (s *Server) writeLoop(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[inspect] 写入失败: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Start 在 addr 上监听 /ws，返回实际监听的地址
func (s *Server) Start(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.Handle)
	s.httpServer = &http.Server{Handler: mux}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[inspect] 服务退出: %v", err)
		}
	}()

	log.Printf("[inspect] 监听 ws://%s/ws", ln.Addr())
	return ln.Addr().String(), nil
}

// Close 取消订阅并关闭所有连接
func (s *Server) Close() error {
	s.Attach(nil)

	s.mu.Lock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Close()
	}
	return nil
}
