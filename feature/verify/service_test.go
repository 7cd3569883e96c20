package verify

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"type-extractor/core/output"
	"type-extractor/core/storage/mocks"
	"type-extractor/feature/types"
	"type-extractor/feature/types/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_VerifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.json")
	require.NoError(t, output.WriteJSON(path, []models.TypeRecord{archon()}))

	report, err := NewService(nil, zap.NewNop()).VerifyFile(path)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, path, report.Source)
	assert.Equal(t, 1, report.WithComponents)
}

func TestService_VerifyFile_Errors(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	t.Run("Missing File", func(t *testing.T) {
		_, err := svc.VerifyFile(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, types.ErrSourceUnavailable)
	})

	t.Run("Not An Array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "types.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"archon": {}}`), 0o644))
		_, err := svc.VerifyFile(path)
		assert.ErrorContains(t, err, "failed to decode")
	})
}

func TestService_VerifyObject(t *testing.T) {
	client := new(mocks.Client)
	body := `[{"typeID": 587, "groupID": 25, "typeName": "Rifter", "volume": null, "market": true,
		"components": [{"typeID": 587, "materialTypeID": 34, "quantity": 1}]}]`
	client.On("GetObject", mock.Anything, "gamedata", "data/types.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil)

	report, err := NewService([]int64{547}, zap.NewNop()).VerifyObject(t.Context(), client, "gamedata", "data/types.json")
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "gamedata/data/types.json", report.Source)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, CheckComponentsGroup, report.Violations[0].Check)
	client.AssertExpectations(t)
}

func TestService_VerifyObject_Unavailable(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "gamedata", "data/types.json", mock.Anything).Return(nil, assert.AnError)

	_, err := NewService(nil, zap.NewNop()).VerifyObject(t.Context(), client, "gamedata", "data/types.json")
	assert.ErrorIs(t, err, types.ErrSourceUnavailable)
}
