package bot

import (
	"context"
	"testing"
	"time"
)

func TestPrompterDeliversToWaiter(t *testing.T) {
	p := newPrompter()
	got := make(chan string, 1)
	go func() {
		text, ok := p.wait(context.Background(), 1, 42)
		if ok {
			got <- text
		}
	}()

	deadline := time.Now().Add(time.Second)
	for !p.deliver(1, 42, "确认") {
		if time.Now().After(deadline) {
			t.Fatal("waiter never registered")
		}
		time.Sleep(time.Millisecond)
	}
	select {
	case text := <-got:
		if text != "确认" {
			t.Errorf("wait() = %q", text)
		}
	case <-time.After(time.Second):
		t.Fatal("wait() did not return")
	}
}

func TestPrompterIgnoresOtherChats(t *testing.T) {
	p := newPrompter()
	if p.deliver(1, 42, "hi") {
		t.Error("deliver without a waiter should report false")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	done := make(chan bool, 1)
	go func() {
		_, ok := p.wait(ctx, 1, 42)
		done <- ok
	}()
	time.Sleep(5 * time.Millisecond)
	p.deliver(2, 42, "确认")
	p.deliver(1, 7, "确认")

	if ok := <-done; ok {
		t.Error("wait() should time out when only other chats answer")
	}
	if p.deliver(1, 42, "late") {
		t.Error("expired wait should be unregistered")
	}
}

func TestPrompterListenKeepsEarlyAnswer(t *testing.T) {
	p := newPrompter()
	answers, stop := p.listen(1, 42)
	if !p.deliver(1, 42, "确认") {
		t.Fatal("deliver after listen should be taken")
	}
	text, ok := receive(context.Background(), answers)
	if !ok || text != "确认" {
		t.Errorf("receive() = %q, %v", text, ok)
	}
	stop()

	_, stop = p.listen(1, 42)
	stop()
	if p.deliver(1, 42, "late") {
		t.Error("stopped listener should be unregistered")
	}
}
