package app

import (
	"context"
	"errors"
	"testing"
	"time"

	hidev1 "prochide/api/hide/v1"
)

func TestAppAddRequiresPackage(t *testing.T) {
	app := New(Options{})
	err := app.Add(context.Background(), AddParams{TargetParams: TargetParams{Package: "  "}, Timeout: time.Second})
	if err == nil || err.Error() != "package name is required" {
		t.Fatalf("expected package error, got %v", err)
	}
}

func TestAppAddDaemonNotRunning(t *testing.T) {
	stubDaemon(t, false, nil)
	app := New(Options{})
	err := app.Add(context.Background(), AddParams{TargetParams: TargetParams{Package: "com.example.bank"}, Timeout: time.Second})
	if err == nil || err.Error() != "daemon is not running" {
		t.Fatalf("expected daemon not running error, got %v", err)
	}
}

func TestAppAddSuccess(t *testing.T) {
	var captured interface{}
	stubConn(t, replyCode(t, hidev1.Hide_AddHideItem_FullMethodName, hidev1.CodeSuccess, &captured))

	app := New(Options{})
	err := app.Add(context.Background(), AddParams{
		TargetParams: TargetParams{Package: " com.example.bank ", Process: "com.example.bank:remote"},
		Timeout:      time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req, ok := captured.(*hidev1.ItemRequest)
	if !ok {
		t.Fatalf("unexpected args type %T", captured)
	}
	if pkg, proc := hidev1.SplitItem(req); pkg != "com.example.bank" || proc != "com.example.bank:remote" {
		t.Fatalf("request not passed correctly: %q", req.GetValue())
	}
}

func TestAppAddStatusCodes(t *testing.T) {
	for _, code := range []int32{hidev1.CodeItemExists, hidev1.CodeInvalidPkg, hidev1.CodeDaemonError} {
		stubConn(t, replyCode(t, hidev1.Hide_AddHideItem_FullMethodName, code, nil))

		app := New(Options{})
		err := app.Add(context.Background(), AddParams{TargetParams: TargetParams{Package: "com.example.bank"}, Timeout: time.Second})
		var codeErr *CodeError
		if !errors.As(err, &codeErr) || codeErr.Code != code {
			t.Fatalf("expected code %d, got %v", code, err)
		}
		if err.Error() != "add: "+hidev1.CodeText(code) {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}
}

func TestAppRemove(t *testing.T) {
	var captured interface{}
	stubConn(t, replyCode(t, hidev1.Hide_RemoveHideItem_FullMethodName, hidev1.CodeSuccess, &captured))

	app := New(Options{})
	if err := app.Remove(context.Background(), RemoveParams{TargetParams: TargetParams{Package: "com.example.bank"}, Timeout: time.Second}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, proc := hidev1.SplitItem(captured.(*hidev1.ItemRequest)); proc != "" {
		t.Fatalf("expected package-wide removal, got process %q", proc)
	}
}

func TestAppRemoveNotExists(t *testing.T) {
	stubConn(t, replyCode(t, hidev1.Hide_RemoveHideItem_FullMethodName, hidev1.CodeItemNotExists, nil))

	app := New(Options{})
	err := app.Remove(context.Background(), RemoveParams{TargetParams: TargetParams{Package: "com.example.bank"}, Timeout: time.Second})
	var codeErr *CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != hidev1.CodeItemNotExists {
		t.Fatalf("expected item-not-exists, got %v", err)
	}
}

func TestAppList(t *testing.T) {
	stubConn(t, &fakeConn{lines: []string{
		"com.google.android.gms|com.google.android.gms.unstable",
		"isolated|org.chromium.sandboxed_service",
	}})

	app := New(Options{})
	targets, err := app.List(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("unexpected targets: %+v", targets)
	}
	if targets[0].Package != "com.google.android.gms" || targets[0].Process != "com.google.android.gms.unstable" {
		t.Fatalf("unexpected first target: %+v", targets[0])
	}
	if !targets[1].Isolated() {
		t.Fatalf("expected isolated target, got %+v", targets[1])
	}
}

func TestAppListStreamError(t *testing.T) {
	stubConn(t, &fakeConn{lines: []string{"com.example.bank|com.example.bank"}, err: errors.New("reset")})

	app := New(Options{})
	if _, err := app.List(context.Background(), time.Second); err == nil || err.Error() != "daemon list stream failed: reset" {
		t.Fatalf("expected stream error, got %v", err)
	}
}

func TestAppListMalformedLine(t *testing.T) {
	stubConn(t, &fakeConn{lines: []string{"no-separator"}})

	app := New(Options{})
	if _, err := app.List(context.Background(), time.Second); err == nil {
		t.Fatal("expected malformed entry error")
	}
}
