package authctx

import (
	"context"
	"testing"

	"github.com/buildflow/client/internal/core/domain"
)

type fakeService struct{}

func (fakeService) CheckAuth(context.Context) domain.Session { return domain.EmptySession() }
func (fakeService) Login(context.Context, domain.Credentials) (domain.Session, string, error) {
	return domain.EmptySession(), "", nil
}
func (fakeService) Logout() (domain.Session, string) { return domain.EmptySession(), domain.LoginRoute }
func (fakeService) Current() domain.Session          { return domain.EmptySession() }

func expectPanic(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: %s", msg)
		}
	}()
	fn()
}

func TestLifecycle(t *testing.T) {
	t.Cleanup(Teardown)

	expectPanic(t, "Use before Init", func() { Use() })

	Init(fakeService{})
	if Use() == nil {
		t.Fatalf("Use returned nil after Init")
	}

	expectPanic(t, "double Init", func() { Init(fakeService{}) })

	Teardown()
	expectPanic(t, "Use after Teardown", func() { Use() })

	// A fresh Init after Teardown is legal.
	Init(fakeService{})
	if Use() == nil {
		t.Fatalf("Use returned nil after re-Init")
	}
}

func TestInitNilPanics(t *testing.T) {
	t.Cleanup(Teardown)
	Teardown()
	expectPanic(t, "Init with nil", func() { Init(nil) })
}
