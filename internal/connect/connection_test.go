package connect

import (
	"context"
	"testing"

	"github.com/joshua-takyi/tzsched/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestIndexModels_ProfileNameIsUnique(t *testing.T) {
	idx := IndexModels()[models.ProfileColName]
	require.Len(t, idx, 1)
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, idx[0].Keys)
	require.NotNil(t, idx[0].Options.Unique)
	assert.True(t, *idx[0].Options.Unique)
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates every collection's indexes", func(mt *mtest.T) {
		for range IndexModels() {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}
		require.NoError(mt, EnsureIndexes(context.Background(), mt.Client, "tzscheduler_test"))
	})

	mt.Run("reports failures", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 85, Name: "IndexOptionsConflict", Message: "conflict"}))
		assert.Error(mt, EnsureIndexes(context.Background(), mt.Client, "tzscheduler_test"))
	})
}
