package domain_test

import (
	"hellofood/pkg/domain"
	"hellofood/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePostcode(t *testing.T) {
	for _, p := range []int{1, 42, 4000, 4170, 9999} {
		require.NoError(t, domain.ValidatePostcode(p), "postcode %d", p)
	}

	for _, p := range []int{-4000, -1, 0, 10000, 99999} {
		err := domain.ValidatePostcode(p)
		require.ErrorIs(t, err, serrors.ErrValidation, "postcode %d", p)
	}
}

func TestAddress_Validate(t *testing.T) {
	a := domain.Address{StreetName: "Wattle", Suburb: "Cannon Hill", Postcode: 4170}
	require.NoError(t, a.Validate())

	a.Postcode = 0
	require.ErrorIs(t, a.Validate(), serrors.ErrValidation)
}
