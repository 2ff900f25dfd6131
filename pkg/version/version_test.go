package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	saved := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = saved[0], saved[1], saved[2] })

	Version, Commit, Date = "dev", unknown, unknown

	apply(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	assert.Equal(t, "weburl v1.2.0 (commit: abc123, built: 2026-01-02T03:04:05Z)", String())

	Version, Commit = "v9", "pinned"
	apply(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.3.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "other"}},
	})

	assert.Equal(t, "v9", Version)
	assert.Equal(t, "pinned", Commit)
}

func TestApplyDevel(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "dev"
	apply(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, "dev", Version)
}
