package session

import (
	"testing"

	"github.com/mixelka/tempmailbot/pkg/models"
)

func TestPutGet(t *testing.T) {
	s := NewStore()

	sess := models.Session{
		Address:   "tg0123456789@example.com",
		Password:  "secret",
		Token:     "tok",
		AccountID: "acc-1",
	}
	s.Put(42, sess)

	got, ok := s.Get(42)
	if !ok {
		t.Fatal("session not found after Put")
	}
	if got != sess {
		t.Errorf("Get = %+v, want %+v", got, sess)
	}
}

func TestGetMissing(t *testing.T) {
	s := NewStore()

	if _, ok := s.Get(7); ok {
		t.Fatal("expected no session for unknown user")
	}
}

func TestPutOverwrites(t *testing.T) {
	s := NewStore()

	first := models.Session{Address: "a@example.com", Token: "t1"}
	second := models.Session{Address: "b@example.com", Token: "t2"}
	s.Put(1, first)
	s.Put(1, second)

	got, ok := s.Get(1)
	if !ok {
		t.Fatal("session not found")
	}
	if got != second {
		t.Errorf("Get = %+v, want latest %+v", got, second)
	}
}

func TestSessionsPerUser(t *testing.T) {
	s := NewStore()

	s.Put(1, models.Session{Address: "a@example.com"})
	s.Put(2, models.Session{Address: "b@example.com"})

	a, _ := s.Get(1)
	b, _ := s.Get(2)
	if a.Address == b.Address {
		t.Fatal("sessions must not be shared across users")
	}
}
