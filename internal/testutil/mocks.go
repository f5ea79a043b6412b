package testutil

import (
	"fmt"

	"printbot/internal/document"

	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

// MockCounter is a mock for document.Counter
type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) CountPages(path string, kind document.Kind) (int, error) {
	args := m.Called(path, kind)
	return args.Int(0), args.Error(1)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyOwner(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

// FakeNotifier records owner notifications for handler tests
type FakeNotifier struct {
	Sent []string
	Err  error
}

func (n *FakeNotifier) Notifyf(format string, args ...interface{}) error {
	if n.Err != nil {
		return n.Err
	}
	n.Sent = append(n.Sent, fmt.Sprintf(format, args...))
	return nil
}

// FakeContext is a recording stand-in for tele.Context. Only the methods the
// handlers touch are implemented; anything else panics via the embedded nil
// interface.
type FakeContext struct {
	tele.Context

	User *tele.User
	Msg  *tele.Message

	Sent []string
}

func (c *FakeContext) Sender() *tele.User {
	return c.User
}

func (c *FakeContext) Message() *tele.Message {
	return c.Msg
}

func (c *FakeContext) Text() string {
	if c.Msg == nil {
		return ""
	}
	return c.Msg.Text
}

func (c *FakeContext) Send(what interface{}, _ ...interface{}) error {
	c.Sent = append(c.Sent, fmt.Sprint(what))
	return nil
}

// LastSent returns the most recent reply, or empty
func (c *FakeContext) LastSent() string {
	if len(c.Sent) == 0 {
		return ""
	}
	return c.Sent[len(c.Sent)-1]
}
