package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Publisher 是即時推播的抽象介面
// 變更服務在建構時注入，測試時可以用攔截事件的替身取代真實連線
type Publisher interface {
	Publish(topic string, payload interface{})
}

// ConversationTopic 回傳指定對話的推播主題
// 編輯與刪除共用同一個主題，客戶端對每個對話只需訂閱一次
func ConversationTopic(conversationID uint) string {
	return fmt.Sprintf("conversation:%d:messages:update", conversationID)
}

// RealtimeEvent 是推播給客戶端的事件封裝
type RealtimeEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Subscriber 代表一個訂閱了某主題的 WebSocket 客戶端連接
type Subscriber struct {
	Conn      *websocket.Conn     // WebSocket 連接
	ProfileID uint                // 用戶 ID
	Topic     string              // 訂閱的主題
	SendChan  chan *RealtimeEvent // 事件發送通道，用於異步傳送
}

// WebSocketManager 管理所有的 WebSocket 連接並按主題分發事件
// 投遞是盡力而為：斷線的客戶端收不到事件，需靠重新載入來補齊狀態
type WebSocketManager struct {
	subscribers map[string]map[*Subscriber]bool // 兩層 map: topic -> subscriber -> bool
	mux         sync.RWMutex                    // 用於保護 subscribers map 的讀寫鎖
}

// NewWebSocketManager 創建並初始化新的 WebSocket 管理器
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		subscribers: make(map[string]map[*Subscriber]bool),
	}
}

// HandleSubscriber 處理新的訂閱連接，阻塞直到連接關閉
func (m *WebSocketManager) HandleSubscriber(conn *websocket.Conn, topic string, profileID uint) {
	sub := &Subscriber{
		Conn:      conn,
		ProfileID: profileID,
		Topic:     topic,
		SendChan:  make(chan *RealtimeEvent, 256), // 設置緩衝大小為 256 的事件通道
	}

	m.addSubscriber(sub)

	// 確保連接關閉時清理資源
	defer func() {
		m.removeSubscriber(sub)
		conn.Close()
		close(sub.SendChan)
	}()

	go m.writePump(sub)
	m.readPump(sub)
}

// readPump 持續讀取客戶端的消息以維持連接
// 訂閱者不需要發送任何內容，讀取只是為了偵測斷線與處理 pong
func (m *WebSocketManager) readPump(sub *Subscriber) {
	sub.Conn.SetReadLimit(4096)
	sub.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	sub.Conn.SetPongHandler(func(string) error {
		sub.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}
	}
}

// writePump 處理向客戶端發送事件的邏輯
func (m *WebSocketManager) writePump(sub *Subscriber) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-sub.SendChan:
			sub.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				sub.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			eventBytes, err := json.Marshal(event)
			if err != nil {
				log.Printf("event encoding error: %v", err)
				continue
			}

			if err := sub.Conn.WriteMessage(websocket.TextMessage, eventBytes); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			sub.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := sub.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Publish 向主題的所有訂閱者廣播事件，每個訂閱者至多收到一次
func (m *WebSocketManager) Publish(topic string, payload interface{}) {
	event := &RealtimeEvent{
		Event:   topic,
		Payload: payload,
	}

	m.mux.RLock()
	subs := make([]*Subscriber, 0, len(m.subscribers[topic]))
	for sub := range m.subscribers[topic] {
		subs = append(subs, sub)
	}
	m.mux.RUnlock()

	for _, sub := range subs {
		select {
		case sub.SendChan <- event:
			// 事件成功加入發送隊列
		default:
			// 客戶端事件隊列已滿，關閉連接
			m.removeSubscriber(sub)
			sub.Conn.Close()
		}
	}
}

// addSubscriber 安全地添加新的訂閱者
func (m *WebSocketManager) addSubscriber(sub *Subscriber) {
	m.mux.Lock()
	defer m.mux.Unlock()

	if m.subscribers[sub.Topic] == nil {
		m.subscribers[sub.Topic] = make(map[*Subscriber]bool)
	}
	m.subscribers[sub.Topic][sub] = true
}

// removeSubscriber 安全地移除訂閱者
func (m *WebSocketManager) removeSubscriber(sub *Subscriber) {
	m.mux.Lock()
	defer m.mux.Unlock()

	if subs, ok := m.subscribers[sub.Topic]; ok {
		delete(subs, sub)
		// 如果主題沒有任何訂閱者，刪除該主題
		if len(subs) == 0 {
			delete(m.subscribers, sub.Topic)
		}
	}
}

// TopicSubscribers 獲取指定主題目前的訂閱者數量
func (m *WebSocketManager) TopicSubscribers(topic string) int {
	m.mux.RLock()
	defer m.mux.RUnlock()

	return len(m.subscribers[topic])
}
