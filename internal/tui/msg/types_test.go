package msg

import (
	"errors"
	"testing"
	"time"
)

func TestTickMsg(t *testing.T) {
	now := time.Now()
	tick := TickMsg(now)

	if time.Time(tick) != now {
		t.Errorf("TickMsg(%v) = %v, want %v", now, time.Time(tick), now)
	}
}

func TestErrMsg(t *testing.T) {
	err := errors.New("snapshot unreadable")
	m := ErrMsg{Err: err}

	if !errors.Is(m.Err, err) {
		t.Errorf("ErrMsg.Err = %v, want %v", m.Err, err)
	}
}
