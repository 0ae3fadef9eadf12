package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// StubContext is a partial tele.Context for handler tests. Only the
// methods the handlers touch are implemented; anything else panics via
// the embedded nil interface.
type StubContext struct {
	tele.Context

	User *tele.User
	Msg  *tele.Message

	// Sent collects everything the handler answered with
	Sent []interface{}
	// Markups collects reply markups passed alongside sends
	Markups []*tele.ReplyMarkup

	Responded bool
}

func (c *StubContext) Sender() *tele.User {
	return c.User
}

func (c *StubContext) Text() string {
	if c.Msg == nil {
		return ""
	}
	return c.Msg.Text
}

func (c *StubContext) Message() *tele.Message {
	return c.Msg
}

func (c *StubContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, what)
	for _, opt := range opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			c.Markups = append(c.Markups, markup)
		}
	}
	return nil
}

func (c *StubContext) Respond(resp ...*tele.CallbackResponse) error {
	c.Responded = true
	return nil
}

// LastSent returns the most recent reply, or nil if nothing was sent
func (c *StubContext) LastSent() interface{} {
	if len(c.Sent) == 0 {
		return nil
	}
	return c.Sent[len(c.Sent)-1]
}
