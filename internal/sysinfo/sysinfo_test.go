package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBuildProp = `
# begin common build properties
# autogenerated by buildinfo.sh
ro.build.id=TQ3A.230901.001
ro.build.display.id=TQ3A.230901.001 release-keys
ro.build.version.incremental=10750268
ro.build.version.sdk=33
ro.build.version.release=13
ro.build.fingerprint=google/raven/raven:13/TQ3A.230901.001/10750268:user/release-keys
import /vendor/build.prop
# end common build properties
`

func writeProp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.prop")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSDK(t *testing.T) {
	sdk, err := ReadSDK(writeProp(t, sampleBuildProp))
	require.NoError(t, err)
	assert.Equal(t, 33, sdk)
}

func TestReadSDKMissingKey(t *testing.T) {
	_, err := ReadSDK(writeProp(t, "ro.build.id=X\n"))
	assert.Error(t, err)

	_, err = ReadSDK(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSDKOverride(t *testing.T) {
	sdk, err := SDK(29, "/does/not/matter")
	require.NoError(t, err)
	assert.Equal(t, 29, sdk)
}

func TestNamespaceAccessible(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, NamespaceAccessible(dir))
	assert.False(t, NamespaceAccessible(filepath.Join(dir, "missing")))
}
