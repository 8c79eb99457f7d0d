package cmd_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/MichalMitros/marketplace-tracker/cmd/trackerctl/cmd"
	"github.com/MichalMitros/marketplace-tracker/cmd/trackerctl/cmd/mocks"
	"github.com/MichalMitros/marketplace-tracker/internal/handler"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/pkg/v1/commander"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, env *cmd.Env, args ...string) (string, error) {
	t.Helper()

	released := false
	root := cmd.NewRootCommand(func(context.Context) (*cmd.Env, func(), error) {
		return env, func() { released = true }, nil
	})

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		assert.True(t, released, "should release connections")
	}

	return out.String(), err
}

func TestUnitUserAdd(t *testing.T) {
	tests := map[string]struct {
		args  []string
		token *string
	}{
		"with token":    {args: []string{"user", "add", "--chat-id", "42", "--seller-token", "secret"}, token: lo.ToPtr("secret")},
		"without token": {args: []string{"user", "add", "--chat-id", "42"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			storage.On("UpsertUser", mock.Anything, int64(42), tt.token).
				Return(models.User{ID: 7, ChatID: 42, SellerToken: tt.token}, nil).
				Once()

			out, err := execute(t, &cmd.Env{Storage: storage}, tt.args...)

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, "user 7 (chat 42)\n", out)
		})
	}
}

func TestUnitImport(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"vendor code", "name", "keywords"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{101, "Mug", "mug", "cup"}))
	path := filepath.Join(t.TempDir(), "items.xlsx")
	require.NoError(t, f.SaveAs(path))

	storage := mocks.NewStorage(t)
	storage.On("ImportItems", mock.Anything, 3, []models.ImportedItem{
		{VendorCode: 101, Name: "Mug", Keywords: []string{"mug", "cup"}},
	}).Return(1, nil).Once()

	out, err := execute(t, &cmd.Env{Storage: storage}, "import", "--user", "3", path)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "imported 1 items\n", out)
}

func TestUnitImportMissingFile(t *testing.T) {
	storage := mocks.NewStorage(t)

	_, err := execute(t, &cmd.Env{Storage: storage}, "import", "--user", "3", filepath.Join(t.TempDir(), "missing.xlsx"))

	assert.ErrorContains(t, err, "can't open")
}

func TestUnitRun(t *testing.T) {
	calls := 0
	env := &cmd.Env{
		Runners: map[commander.RunType]handler.RunFunc{
			commander.RunTypePrice: func(context.Context) error {
				calls++
				return nil
			},
			commander.RunTypePosition: func(context.Context) error {
				return assert.AnError
			},
		},
	}

	out, err := execute(t, env, "run", "price")
	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "price run finished\n", out)
	assert.Equal(t, 1, calls)

	_, err = execute(t, env, "run", "position")
	assert.ErrorIs(t, err, assert.AnError)

	_, err = execute(t, env, "run", "unknown")
	assert.ErrorIs(t, err, commander.ErrUnknownRunType)
}

func TestUnitSend(t *testing.T) {
	runCommander := mocks.NewRunCommander(t)
	runCommander.On("SendRunCommand", mock.Anything, commander.RunTypeSellerAPI).Return(nil).Once()

	out, err := execute(t, &cmd.Env{Commander: runCommander}, "send", "seller-api")

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "seller-api run requested\n", out)
}

func TestUnitSendError(t *testing.T) {
	runCommander := mocks.NewRunCommander(t)
	runCommander.On("SendRunCommand", mock.Anything, commander.RunTypePrepare).Return(assert.AnError).Once()

	_, err := execute(t, &cmd.Env{Commander: runCommander}, "send", "prepare")

	assert.ErrorIs(t, err, assert.AnError)
}
