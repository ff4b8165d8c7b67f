package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fittrack/fittrack/internal/app"
)

func TestNewRootCommand_NoArgs_LaunchesDashboard(t *testing.T) {
	originalFunc := launchDashboardFunc
	defer func() {
		launchDashboardFunc = originalFunc
	}()

	called := false
	launchDashboardFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchDashboardFunc should be called when no arguments are provided")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchDashboardFunc
	defer func() {
		launchDashboardFunc = originalFunc
	}()

	called := false
	launchDashboardFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchDashboardFunc should NOT be called when --help is provided")
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    int
		wantErr bool
	}{
		{name: "plain number", arg: "42", want: 42},
		{name: "hash prefix", arg: "#7", want: 7},
		{name: "not a number", arg: "abc", wantErr: true},
		{name: "empty", arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTaskID(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
