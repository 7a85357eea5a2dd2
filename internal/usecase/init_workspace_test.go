package usecase

import (
	"errors"
	"testing"

	"github.com/z64/shark-report/internal/domain"
)

type fakeInitializer struct {
	got   domain.WorkspaceSpec
	force bool
	calls int
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.calls++
	f.got = spec
	f.force = force
	return f.err
}

func TestInitWorkspace_PassesRootAndForce(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi, nil).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.calls != 1 || fi.got.Root != "/tmp/ws" || !fi.force {
		t.Fatalf("unexpected call: %+v", fi)
	}
}

func TestInitWorkspace_EmptyRoot(t *testing.T) {
	fi := &fakeInitializer{}
	err := NewInitWorkspace(fi, nil).Execute("  ", false)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
	if fi.calls != 0 {
		t.Fatalf("initializer must not run for an empty root")
	}
}

func TestInitWorkspace_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := NewInitWorkspace(&fakeInitializer{err: boom}, nil).Execute("/tmp/ws", false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
