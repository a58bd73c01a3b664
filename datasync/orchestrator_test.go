package datasync

import (
	"context"
	"errors"
	"testing"

	"github.com/mmdatafocus/jewelvault_backend/utils"
)

func TestProgressReporterNeverDecreases(t *testing.T) {
	var got []int
	p := &progressReporter{fn: func(message string, percent int) {
		got = append(got, percent)
	}}

	p.report("export", 10)
	p.report("export", 40)
	p.report("upload", 25) // out-of-order stage must be clamped up
	p.report("upload", 80)
	p.report("done", 130)

	want := []int{10, 40, 40, 80, 100}
	if len(got) != len(want) {
		t.Fatalf("got %d reports, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("report %d = %d, want %d (full stream %v)", i, got[i], want[i], got)
		}
	}
}

func TestProgressReporterNilCallback(t *testing.T) {
	p := &progressReporter{}
	p.report("quiet", 50)
	if p.last != 50 {
		t.Errorf("last = %d, want 50", p.last)
	}
}

func TestResolveScope(t *testing.T) {
	ctx := context.Background()
	ctx = utils.SetUserIdInContext(ctx, "user-1")
	ctx = utils.SetStoreIdInContext(ctx, "store-1")
	ctx = utils.SetUserMobileInContext(ctx, "9876543210")

	scope, err := resolveScope(ctx)
	if err != nil {
		t.Fatalf("resolveScope: %v", err)
	}
	if scope.UserId != "user-1" || scope.StoreId != "store-1" || scope.UserMobile != "9876543210" {
		t.Fatalf("unexpected scope %+v", scope)
	}
}

func TestResolveScopeRejectsMissingIdentity(t *testing.T) {
	cases := []struct {
		name string
		ctx  context.Context
	}{
		{"empty context", context.Background()},
		{"no store", utils.SetUserIdInContext(context.Background(), "user-1")},
		{
			"no mobile",
			utils.SetStoreIdInContext(utils.SetUserIdInContext(context.Background(), "user-1"), "store-1"),
		},
		{
			"bad mobile",
			utils.SetUserMobileInContext(
				utils.SetStoreIdInContext(utils.SetUserIdInContext(context.Background(), "user-1"), "store-1"),
				"12",
			),
		},
	}
	for _, c := range cases {
		_, err := resolveScope(c.ctx)
		if err == nil {
			t.Errorf("%s: resolveScope accepted an incomplete identity", c.name)
			continue
		}
		var setupErr *SetupError
		if !errors.As(err, &setupErr) {
			t.Errorf("%s: error is %T, want *SetupError", c.name, err)
		}
	}
}
