package checks

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"army-catalog/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestCheckMetadata(t *testing.T) {
	t.Run("Metadata OK", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "army-data").Return(true, nil)
		mockClient.On("GetObject", mock.Anything, "army-data", "data/metadata.json", mock.Anything).
			Return(body(`{"factions": [{"id": 1}], "weapons": [{"id": 1}, {"id": 2}], "skills": [], "equips": [], "ammunitions": []}`), nil)

		report, err := CheckMetadata(context.Background(), mockClient, "army-data", "data")
		require.NoError(t, err)
		assert.True(t, report.Present)
		assert.True(t, report.Parsable)
		assert.Equal(t, 1, report.Factions)
		assert.Equal(t, 2, report.Weapons)
		assert.Equal(t, 0, report.Skills)
	})

	t.Run("Metadata Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "army-data").Return(true, nil)
		mockClient.On("GetObject", mock.Anything, "army-data", "data/metadata.json", mock.Anything).
			Return(nil, errors.New("object not found"))

		report, err := CheckMetadata(context.Background(), mockClient, "army-data", "data")
		require.NoError(t, err)
		assert.False(t, report.Present)
		assert.False(t, report.Parsable)
		assert.Contains(t, report.Error, "not found")
	})

	t.Run("Metadata Unparsable", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "army-data").Return(true, nil)
		mockClient.On("GetObject", mock.Anything, "army-data", "data/metadata.json", mock.Anything).
			Return(body(`{"factions": [`), nil)

		report, err := CheckMetadata(context.Background(), mockClient, "army-data", "data")
		require.NoError(t, err)
		assert.True(t, report.Present)
		assert.False(t, report.Parsable)
		assert.NotEmpty(t, report.Error)
	})

	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "army-data").Return(false, nil)

		_, err := CheckMetadata(context.Background(), mockClient, "army-data", "data")
		assert.Error(t, err)
	})
}
