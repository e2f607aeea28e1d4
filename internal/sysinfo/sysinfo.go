// Package sysinfo answers the platform questions the hide lifecycle asks:
// which Android release is running and whether mount namespaces are usable.
package sysinfo

import (
	"fmt"

	"github.com/go-ini/ini"
	"golang.org/x/sys/unix"
)

const (
	// DefaultBuildProp is where the system image records its build properties.
	DefaultBuildProp = "/system/build.prop"
	// DefaultInitMountNS is the mount namespace handle of init.
	DefaultInitMountNS = "/proc/1/ns/mnt"

	sdkKey = "ro.build.version.sdk"
)

// ReadSDK returns ro.build.version.sdk from a build.prop file.
func ReadSDK(path string) (int, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:      "=",
		AllowBooleanKeys:        true,
		SkipUnrecognizableLines: true,
		IgnoreInlineComment:     true,
	}, path)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", path, err)
	}
	key, err := f.Section(ini.DefaultSection).GetKey(sdkKey)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	sdk, err := key.Int()
	if err != nil {
		return 0, fmt.Errorf("%s: parse %s: %w", path, sdkKey, err)
	}
	return sdk, nil
}

// SDK returns override when positive, otherwise the value read from buildProp.
func SDK(override int, buildProp string) (int, error) {
	if override > 0 {
		return override, nil
	}
	if buildProp == "" {
		buildProp = DefaultBuildProp
	}
	return ReadSDK(buildProp)
}

// NamespaceAccessible reports whether the mount namespace handle at path exists.
func NamespaceAccessible(path string) bool {
	return unix.Access(path, unix.F_OK) == nil
}
