package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"social_chat_service/internal/chat/domain"

	"github.com/cucumber/godog"
	gws "github.com/gorilla/websocket"
	"github.com/samber/lo"
)

type chatWorld struct {
	server *testServer
	conns  map[string]*gws.Conn
}

func (w *chatWorld) conn(user string) (*gws.Conn, error) {
	conn, ok := w.conns[user]
	if !ok {
		return nil, fmt.Errorf("%s is not connected", user)
	}
	return conn, nil
}

func (w *chatWorld) connectAndIdentify(user string) error {
	conn, err := w.server.dial()
	if err != nil {
		return err
	}
	w.conns[user] = conn
	if err := conn.WriteJSON(domain.WSRequest{Action: domain.Identify, UserID: user}); err != nil {
		return err
	}

	// 等到自己出現在線上名單
	for {
		evt, err := readEvent(conn, domain.OnlineUsers, waitTimeout)
		if err != nil {
			return err
		}
		var ids []string
		if err := json.Unmarshal(evt.Payload, &ids); err != nil {
			return err
		}
		if lo.Contains(ids, user) {
			return nil
		}
	}
}

func (w *chatWorld) sendMessage(sender, conversationID, text, receiver string) error {
	conn, err := w.conn(sender)
	if err != nil {
		return err
	}
	return conn.WriteJSON(domain.WSRequest{
		Action:         domain.SendMessage,
		ConversationID: conversationID,
		Sender:         sender,
		ReceiverID:     receiver,
		Text:           text,
	})
}

func (w *chatWorld) shouldReceiveMessage(user, text string) error {
	conn, err := w.conn(user)
	if err != nil {
		return err
	}
	evt, err := readEvent(conn, domain.MessageDelivered, waitTimeout)
	if err != nil {
		return err
	}
	var msg wireMessage
	if err := json.Unmarshal(evt.Payload, &msg); err != nil {
		return err
	}
	if msg.Text != text || msg.ID == "" {
		return fmt.Errorf("%s got message %+v, want text %q", user, msg, text)
	}
	return nil
}

func (w *chatWorld) historyHasSingleMessage(conversationID, text string) error {
	status, body, err := w.server.request(http.MethodGet, "/messages/"+conversationID, "A", nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("history status %d: %s", status, body)
	}
	var history []wireMessage
	if err := json.Unmarshal(body, &history); err != nil {
		return err
	}
	if len(history) != 1 || history[0].Text != text {
		return fmt.Errorf("history %+v, want one message %q", history, text)
	}
	return nil
}

func (w *chatWorld) typing(action domain.Action) func(sender, receiver string) error {
	return func(sender, receiver string) error {
		conn, err := w.conn(sender)
		if err != nil {
			return err
		}
		return conn.WriteJSON(domain.WSRequest{Action: action, ReceiverID: receiver})
	}
}

func (w *chatWorld) shouldSeeTyping(user, action string) error {
	conn, err := w.conn(user)
	if err != nil {
		return err
	}
	_, err = readEvent(conn, domain.Action(action), waitTimeout)
	return err
}

func (w *chatWorld) disconnect(user string) error {
	conn, err := w.conn(user)
	if err != nil {
		return err
	}
	delete(w.conns, user)
	return conn.Close()
}

func (w *chatWorld) shouldSeeOnline(user, list string) error {
	conn, err := w.conn(user)
	if err != nil {
		return err
	}
	return waitOnlineUsers(conn, strings.Split(list, ","), waitTimeout)
}

func InitializeChatScenario(ctx *godog.ScenarioContext) {
	w := &chatWorld{}

	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		s, err := startTestServer()
		if err != nil {
			return c, err
		}
		w.server = s
		w.conns = map[string]*gws.Conn{}
		return c, nil
	})
	ctx.After(func(c context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		for _, conn := range w.conns {
			_ = conn.Close()
		}
		w.server.close()
		return c, nil
	})

	ctx.Step(`^"([^"]*)" 已連線並 identify$`, w.connectAndIdentify)
	ctx.Step(`^"([^"]*)" 在對話 "([^"]*)" 傳送 "([^"]*)" 給 "([^"]*)"$`, w.sendMessage)
	ctx.Step(`^"([^"]*)" 應該收到訊息 "([^"]*)"$`, w.shouldReceiveMessage)
	ctx.Step(`^"([^"]*)" 應該收到自己的訊息 "([^"]*)"$`, w.shouldReceiveMessage)
	ctx.Step(`^對話 "([^"]*)" 的歷史只有一則訊息 "([^"]*)"$`, w.historyHasSingleMessage)
	ctx.Step(`^"([^"]*)" 對 "([^"]*)" 開始打字$`, w.typing(domain.TypingStart))
	ctx.Step(`^"([^"]*)" 對 "([^"]*)" 停止打字$`, w.typing(domain.TypingStop))
	ctx.Step(`^"([^"]*)" 應該看到打字提示 "([^"]*)"$`, w.shouldSeeTyping)
	ctx.Step(`^"([^"]*)" 斷線$`, w.disconnect)
	ctx.Step(`^"([^"]*)" 看到線上名單為 "([^"]*)"$`, w.shouldSeeOnline)
}

func TestChatFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeChatScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
