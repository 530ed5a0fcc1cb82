package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	p, err := Parse([]byte(`
android_root: android/app/src/main/kotlin
ios_root: ios/Runner
`))

	require.NoError(t, err)
	assert.Equal(t, "1", p.Version)
	assert.Equal(t, "bridgegen", p.Channel)
	assert.Equal(t, "bridgegen/events/", p.EventPrefix)
	assert.Equal(t, "lib/bridge.g.dart", p.Output)
}

func TestParse_EventPrefixFollowsChannel(t *testing.T) {
	p, err := Parse([]byte(`
android_root: android
ios_root: ios
channel: com.example/bridge
`))

	require.NoError(t, err)
	assert.Equal(t, "com.example/bridge", p.Channel)
	assert.Equal(t, "com.example/bridge/events/", p.EventPrefix)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("android_root: [unterminated"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr bool
	}{
		{"both roots", Project{AndroidRoot: "a", IOSRoot: "b"}, false},
		{"missing android", Project{IOSRoot: "b"}, true},
		{"missing ios", Project{AndroidRoot: "a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)

	original := &Project{
		Version:     "1",
		AndroidRoot: "android",
		IOSRoot:     "ios",
		Output:      "lib/out.g.dart",
		Channel:     "demo",
	}

	require.NoError(t, WriteFile(original, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, original.AndroidRoot, loaded.AndroidRoot)
	assert.Equal(t, original.IOSRoot, loaded.IOSRoot)
	assert.Equal(t, "demo", loaded.Channel)
	assert.Equal(t, "demo/events/", loaded.EventPrefix)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
