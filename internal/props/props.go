// Package props rewrites system properties that reveal an unlocked or
// debuggable device.
package props

import (
	"context"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Prop is a property name and the value it must read as.
type Prop struct {
	Name  string
	Value string
}

// Sensitive lists properties rewritten when hiding is enabled.
var Sensitive = []Prop{
	{"ro.boot.vbmeta.device_state", "locked"},
	{"ro.boot.verifiedbootstate", "green"},
	{"ro.boot.flash.locked", "1"},
	{"ro.boot.veritymode", "enforcing"},
	{"ro.boot.warranty_bit", "0"},
	{"ro.warranty_bit", "0"},
	{"ro.debuggable", "0"},
	{"ro.secure", "1"},
	{"ro.build.type", "user"},
	{"ro.build.tags", "release-keys"},
	{"ro.vendor.boot.warranty_bit", "0"},
	{"ro.vendor.warranty_bit", "0"},
}

// SensitiveLate lists properties that only exist once the vendor
// partition has finished booting.
var SensitiveLate = []Prop{
	{"vendor.boot.vbmeta.device_state", "locked"},
	{"vendor.boot.verifiedbootstate", "green"},
}

// DefaultResetprop is the property tool shipped with the root daemon.
const DefaultResetprop = "resetprop"

// RunFunc runs a command and returns its stdout.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Resetprop rewrites properties through the resetprop tool. Properties that
// are unset or already hold the wanted value are left alone.
type Resetprop struct {
	bin string
	run RunFunc
	log *zap.Logger
}

// NewResetprop returns a masker invoking bin. A nil run executes the tool.
func NewResetprop(bin string, run RunFunc, log *zap.Logger) *Resetprop {
	if bin == "" {
		bin = DefaultResetprop
	}
	if run == nil {
		run = execRun
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resetprop{bin: bin, run: run, log: log}
}

// Hide rewrites Sensitive.
func (r *Resetprop) Hide(ctx context.Context) {
	r.apply(ctx, Sensitive)
}

// HideLate rewrites SensitiveLate.
func (r *Resetprop) HideLate(ctx context.Context) {
	r.apply(ctx, SensitiveLate)
}

func (r *Resetprop) apply(ctx context.Context, list []Prop) {
	for _, p := range list {
		out, err := r.run(ctx, r.bin, p.Name)
		if err != nil {
			r.log.Debug("getprop failed", zap.String("prop", p.Name), zap.Error(err))
			continue
		}
		cur := strings.TrimSpace(string(out))
		if cur == "" || cur == p.Value {
			continue
		}
		if _, err := r.run(ctx, r.bin, "-n", p.Name, p.Value); err != nil {
			r.log.Warn("setprop failed", zap.String("prop", p.Name), zap.Error(err))
			continue
		}
		r.log.Info("prop rewritten", zap.String("prop", p.Name), zap.String("from", cur), zap.String("to", p.Value))
	}
}
