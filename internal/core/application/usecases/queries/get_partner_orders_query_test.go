package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPartnerOrdersQuery_Success(t *testing.T) {
	partnerID := kernel.NewUUID()

	query, err := queries.NewGetPartnerOrdersQuery(partnerID)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.True(t, query.PartnerID().IsEqual(partnerID))
}

func TestNewGetPartnerOrdersQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetPartnerOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetPartnerOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetPartnerOrdersQuery

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetPartnerOrdersQueryIsNotConstructed)
}
